package highlight

import (
	"errors"
	"fmt"

	"github.com/dshills/picoterm/internal/renderer/core"
)

// ErrUnknownTheme is returned for a theme name with no definition.
var ErrUnknownTheme = errors.New("unknown theme")

// Element identifies a styled part of the screen.
type Element uint8

// Screen elements.
const (
	ElementText Element = iota
	ElementKeyword
	ElementGutter
	ElementGutterCurrent
	ElementHeader
	ElementSeparator
	ElementStatus
	ElementHelp
	ElementMenuTitle
	ElementMenuTitleSelected
	ElementMenuItem
	ElementMenuItemSelected
	ElementConsole
	ElementCursorWrite
	ElementCursorEdit
)

// Theme defines the styles of the editor.
type Theme struct {
	// Name is the identifier used in configuration.
	Name string

	styles map[Element]core.Style
}

// Style returns the style for an element. Unknown elements get the text style.
func (t *Theme) Style(e Element) core.Style {
	if s, ok := t.styles[e]; ok {
		return s
	}
	return t.styles[ElementText]
}

// SpanStyle returns the style for a span kind.
func (t *Theme) SpanStyle(kind SpanKind) core.Style {
	if kind == SpanKeyword {
		return t.Style(ElementKeyword)
	}
	return t.Style(ElementText)
}

// palette holds the handful of colors a theme is derived from.
type palette struct {
	main      core.Color
	secondary core.Color
	chrome    core.Color
	text      core.Color
	dim       core.Color
	keyword   core.Color
	accent    core.Color
	edit      core.Color
}

// currentLineTint is how far the current line number's background is
// pulled toward the text color.
const currentLineTint = 0.12

func newTheme(name string, p palette) *Theme {
	return &Theme{
		Name: name,
		styles: map[Element]core.Style{
			ElementText:              core.NewStyle(p.text, p.main),
			ElementKeyword:           core.NewStyle(p.keyword, p.main),
			ElementGutter:            core.NewStyle(p.dim, p.secondary),
			ElementGutterCurrent:     core.NewStyle(p.text, p.secondary.Blend(p.text, currentLineTint)).Bold(),
			ElementHeader:            core.NewStyle(p.dim, p.chrome),
			ElementSeparator:         core.NewStyle(p.dim, p.chrome),
			ElementStatus:            core.NewStyle(p.text, p.secondary),
			ElementHelp:              core.NewStyle(p.dim, p.chrome),
			ElementMenuTitle:         core.NewStyle(p.text, p.chrome),
			ElementMenuTitleSelected: core.NewStyle(p.chrome, p.text),
			ElementMenuItem:          core.NewStyle(p.text, p.secondary),
			ElementMenuItemSelected:  core.NewStyle(p.main, p.accent),
			ElementConsole:           core.NewStyle(p.text, p.secondary),
			ElementCursorWrite:       core.NewStyle(p.main, p.accent),
			ElementCursorEdit:        core.NewStyle(p.main, p.edit),
		},
	}
}

// Theme1 returns the default dark theme.
func Theme1() *Theme {
	return newTheme("theme1", palette{
		main:      core.ColorFromRGB(35, 35, 45),
		secondary: core.ColorFromRGB(47, 47, 56),
		chrome:    core.ColorFromRGB(30, 30, 40),
		text:      core.ColorFromRGB(220, 220, 220),
		dim:       core.ColorDarkGray,
		keyword:   core.ColorFromRGB(180, 105, 184),
		accent:    core.ColorFromRGB(220, 220, 220),
		edit:      core.ColorFromRGB(255, 190, 90),
	})
}

// Theme2 returns a blue-tinted dark theme.
func Theme2() *Theme {
	return newTheme("theme2", palette{
		main:      core.ColorFromRGB(24, 30, 44),
		secondary: core.ColorFromRGB(34, 42, 60),
		chrome:    core.ColorFromRGB(18, 22, 34),
		text:      core.ColorFromRGB(205, 214, 244),
		dim:       core.ColorFromRGB(108, 112, 134),
		keyword:   core.ColorFromRGB(137, 180, 250),
		accent:    core.ColorFromRGB(166, 227, 161),
		edit:      core.ColorFromRGB(250, 179, 135),
	})
}

// Theme3 returns a light theme.
func Theme3() *Theme {
	return newTheme("theme3", palette{
		main:      core.ColorFromRGB(250, 250, 245),
		secondary: core.ColorFromRGB(235, 235, 228),
		chrome:    core.ColorFromRGB(220, 220, 212),
		text:      core.ColorFromRGB(40, 40, 40),
		dim:       core.ColorFromRGB(130, 130, 130),
		keyword:   core.ColorFromRGB(150, 60, 160),
		accent:    core.ColorFromRGB(40, 40, 40),
		edit:      core.ColorFromRGB(200, 100, 20),
	})
}

// ThemeNames lists the built-in theme names in menu order.
func ThemeNames() []string {
	return []string{"theme1", "theme2", "theme3"}
}

// ThemeByName returns the built-in theme with the given name.
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "theme1":
		return Theme1(), nil
	case "theme2":
		return Theme2(), nil
	case "theme3":
		return Theme3(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}
