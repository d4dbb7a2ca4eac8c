package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/picoterm/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read into configuration.
const EnvPrefix = "PICOTERM_"

// Config provides unified access to the picoterm configuration.
type Config struct {
	mu sync.RWMutex

	// merged holds defaults, file and environment values
	merged map[string]any

	// overrides are applied on top of merged and survive reloads
	overrides map[string]any

	fs         loader.FileSystem
	configFile string
	envPrefix  string
	useEnv     bool
}

// Option configures a Config instance.
type Option func(*Config)

// WithConfigFile sets the TOML file to load. An empty path disables the
// user settings layer.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithFileSystem sets the file system used to read the config file.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvironment enables or disables the environment layer.
func WithEnvironment(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// New creates a Config holding only the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		merged:     defaultConfig(),
		overrides:  make(map[string]any),
		fs:         loader.DefaultFS(),
		configFile: DefaultConfigFile(),
		envPrefix:  EnvPrefix,
		useEnv:     true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load loads configuration from all sources. A missing config file is not
// an error.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	merged := defaultConfig()

	if c.configFile != "" {
		file, err := loader.NewTOMLLoaderWithFS(c.fs, c.configFile).Load()
		if err != nil {
			return fmt.Errorf("loading user settings: %w", err)
		}
		merged = loader.DeepMerge(merged, file)
	}

	if c.useEnv {
		env, err := loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	c.mu.Lock()
	c.merged = merged
	c.mu.Unlock()

	return c.Validate()
}

// ConfigFile returns the user settings path.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, ok := c.overrides[path]; ok {
		return v, true
	}
	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetStringSlice returns a string slice at the given path.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}

	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
			}
			result[i] = s
		}
		return result, nil
	case string:
		return strings.Fields(val), nil
	default:
		return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
	}
}

// Set overrides a setting. Overrides take precedence over every loaded
// layer and are kept across Load calls.
func (c *Config) Set(path string, value any) error {
	if len(splitPath(path)) < 2 {
		return ErrInvalidPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides[path] = value
	return nil
}

// Merged returns a copy of the merged configuration including overrides.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := loader.Clone(c.merged)
	for path, v := range c.overrides {
		_ = setPath(result, path, v)
	}
	return result
}

// Validate checks numeric ranges and enumerations.
func (c *Config) Validate() error {
	for _, path := range []string{"editor.tabSize", "editor.scrollStep"} {
		n, err := c.GetInt(path)
		if err != nil {
			return err
		}
		if n < 1 {
			return &ValidationError{Path: path, Message: "must be at least 1", Value: n}
		}
	}
	for _, path := range []string{"editor.marginTop", "editor.marginBottom"} {
		n, err := c.GetInt(path)
		if err != nil {
			return err
		}
		if n < 0 {
			return &ValidationError{Path: path, Message: "must not be negative", Value: n}
		}
	}

	level, err := c.GetString("logging.level")
	if err != nil {
		return err
	}
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Message: "must be debug, info, warn or error", Value: level}
	}
	return nil
}

// DefaultConfigFile returns the default user settings path.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "picoterm", "config.toml")
}

// DefaultKeywords is the keyword list highlighted when none is configured.
var DefaultKeywords = []string{
	"func", "var", "struct", "if", "elseif", "else", "static", "return", "true", "false", "null",
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tabSize":         4,
			"scrollStep":      2,
			"marginTop":       1,
			"marginBottom":    2,
			"defaultFileName": "new_file.txt",
			"saveOnUnfocus":   false,
			"highlight":       true,
			"keywords":        append([]string(nil), DefaultKeywords...),
		},
		"ui": map[string]any{
			"theme": "theme1",
			"mouse": true,
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"keys": map[string]any{
			"quit":       "Esc",
			"save":       "Ctrl+S",
			"toggleEdit": "Alt+J",
			"menu":       "F2",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into non-empty parts.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '.' })
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
