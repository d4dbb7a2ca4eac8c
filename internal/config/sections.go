package config

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// TabSize is the number of spaces inserted by Tab.
	TabSize int

	// ScrollStep is the number of lines a mouse wheel notch scrolls.
	ScrollStep int

	// MarginTop is the number of rows kept above the cursor.
	MarginTop int

	// MarginBottom is the number of rows kept below the cursor.
	MarginBottom int

	// DefaultFileName names the buffer when no file is given.
	DefaultFileName string

	// SaveOnUnfocus saves the document when the terminal loses focus.
	SaveOnUnfocus bool

	// Highlight enables keyword highlighting.
	Highlight bool

	// Keywords is the list of highlighted words.
	Keywords []string
}

// UIConfig provides type-safe access to UI settings.
type UIConfig struct {
	// Theme is the color theme name.
	Theme string

	// Mouse enables mouse wheel scrolling.
	Mouse bool
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// File is the log file path. Empty disables logging.
	File string
}

// KeysConfig holds the global key bindings as parseable key strings.
type KeysConfig struct {
	Quit       string
	Save       string
	ToggleEdit string
	Menu       string
}

// Editor returns the editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		TabSize:         c.getIntOr("editor.tabSize", 4),
		ScrollStep:      c.getIntOr("editor.scrollStep", 2),
		MarginTop:       c.getIntOr("editor.marginTop", 1),
		MarginBottom:    c.getIntOr("editor.marginBottom", 2),
		DefaultFileName: c.getStringOr("editor.defaultFileName", "new_file.txt"),
		SaveOnUnfocus:   c.getBoolOr("editor.saveOnUnfocus", false),
		Highlight:       c.getBoolOr("editor.highlight", true),
		Keywords:        c.getStringSliceOr("editor.keywords", DefaultKeywords),
	}
}

// UI returns the UI settings.
func (c *Config) UI() UIConfig {
	return UIConfig{
		Theme: c.getStringOr("ui.theme", "theme1"),
		Mouse: c.getBoolOr("ui.mouse", true),
	}
}

// Logging returns the logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", "info"),
		File:  c.getStringOr("logging.file", ""),
	}
}

// Keys returns the global key bindings.
func (c *Config) Keys() KeysConfig {
	return KeysConfig{
		Quit:       c.getStringOr("keys.quit", "Esc"),
		Save:       c.getStringOr("keys.save", "Ctrl+S"),
		ToggleEdit: c.getStringOr("keys.toggleEdit", "Alt+J"),
		Menu:       c.getStringOr("keys.menu", "F2"),
	}
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		return defaultValue
	}
	return v
}

func (c *Config) getStringSliceOr(path string, defaultValue []string) []string {
	v, err := c.GetStringSlice(path)
	if err != nil {
		return append([]string(nil), defaultValue...)
	}
	return v
}
