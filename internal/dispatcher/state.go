package dispatcher

import (
	"fmt"

	"github.com/dshills/picoterm/internal/engine/buffer"
	"github.com/dshills/picoterm/internal/engine/cursor"
	"github.com/dshills/picoterm/internal/engine/grapheme"
	"github.com/dshills/picoterm/internal/input/console"
	"github.com/dshills/picoterm/internal/input/menu"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer/core"
	"github.com/dshills/picoterm/internal/renderer/dirty"
	"github.com/dshills/picoterm/internal/renderer/highlight"
	"github.com/dshills/picoterm/internal/renderer/layout"
	"github.com/dshills/picoterm/internal/renderer/viewport"
)

// Settings holds the runtime options a State starts with.
type Settings struct {
	TabWidth        int
	ScrollStep      int
	Margins         viewport.MarginConfig
	DefaultFileName string
	SaveOnUnfocus   bool
	Highlight       bool
	Theme           *highlight.Theme
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		TabWidth:        buffer.DefaultTabWidth,
		ScrollStep:      2,
		Margins:         viewport.DefaultMargins(),
		DefaultFileName: "new_file.txt",
		Highlight:       true,
		Theme:           highlight.Theme1(),
	}
}

// State is the editor state every handler operates on.
type State struct {
	Buffer   *buffer.Buffer
	Cursor   *cursor.Cursor
	Viewport *viewport.Viewport
	Modes    *mode.Controller
	Menu     *menu.Menu
	Console  *console.Console

	// FileName is the path the document is saved to.
	FileName string

	// Status is a one-line message shown on the status row until the
	// next key press.
	Status string

	Theme           *highlight.Theme
	SaveOnUnfocus   bool
	Highlight       bool
	ScrollStep      int
	TabWidth        int
	DefaultFileName string

	screen        layout.Screen
	savedRevision uint64
}

// NewState creates a state editing buf under fileName. A nil buf starts
// an empty document.
func NewState(buf *buffer.Buffer, fileName string, s Settings) *State {
	if buf == nil {
		buf = buffer.NewBuffer(buffer.WithTabWidth(s.TabWidth))
	}
	if s.Theme == nil {
		s.Theme = highlight.Theme1()
	}
	if s.DefaultFileName == "" {
		s.DefaultFileName = DefaultSettings().DefaultFileName
	}
	if fileName == "" {
		fileName = s.DefaultFileName
	}

	screen := layout.NewScreen(80, 24)
	vp := viewport.NewViewport(screen.TextWidth(buf.LineCount()), screen.TextRows())
	vp.SetMargins(s.Margins)

	return &State{
		Buffer:          buf,
		Cursor:          cursor.New(),
		Viewport:        vp,
		Modes:           mode.NewController(),
		Menu:            menu.New(),
		Console:         console.New(),
		FileName:        fileName,
		Theme:           s.Theme,
		SaveOnUnfocus:   s.SaveOnUnfocus,
		Highlight:       s.Highlight,
		ScrollStep:      max(s.ScrollStep, 1),
		TabWidth:        max(s.TabWidth, 1),
		DefaultFileName: s.DefaultFileName,
		screen:          screen,
		savedRevision:   buf.Revision(),
	}
}

// Screen returns the current screen layout.
func (s *State) Screen() layout.Screen {
	return s.screen
}

// Resize updates the screen size and re-fits the viewport.
func (s *State) Resize(width, height int) {
	s.screen = layout.NewScreen(width, height)
	s.fitViewport()
	s.Viewport.Recompute(s.Cursor.Line())
	s.followColumn()
}

// Modified reports whether the document changed since it was last saved
// or loaded.
func (s *State) Modified() bool {
	return s.Buffer.Revision() != s.savedRevision
}

// MarkSaved records revision as the saved state of the document.
func (s *State) MarkSaved(revision uint64) {
	s.savedRevision = revision
}

// ReplaceDocument swaps in a new document and resets cursor and scroll.
func (s *State) ReplaceDocument(buf *buffer.Buffer, fileName string) {
	s.Buffer = buf
	s.FileName = fileName
	s.savedRevision = buf.Revision()
	s.Cursor = cursor.New()
	s.Viewport.Reset()
	s.fitViewport()
}

// SetStatus sets the status message.
func (s *State) SetStatus(format string, args ...any) {
	s.Status = fmt.Sprintf(format, args...)
}

// fitViewport sizes the viewport to the text area. The text width depends
// on the gutter, which grows with the line count.
func (s *State) fitViewport() bool {
	w := s.screen.TextWidth(s.Buffer.LineCount())
	h := s.screen.TextRows()
	if w == s.Viewport.Width() && h == s.Viewport.Height() {
		return false
	}
	s.Viewport.Resize(w, h)
	return true
}

// follow keeps the viewport on the cursor. Any scroll widens region to
// every text row.
func (s *State) follow(region dirty.Region) dirty.Region {
	scrolled := s.fitViewport()
	if s.Viewport.Recompute(s.Cursor.Line()) {
		scrolled = true
	}
	if s.followColumn() {
		scrolled = true
	}
	if scrolled {
		return region.Merge(dirty.AllLines())
	}
	return region
}

// followColumn scrolls horizontally to the cursor's cells. Past the end
// of the line the cursor takes one cell.
func (s *State) followColumn() bool {
	line := s.Buffer.Line(s.Cursor.Line())
	head, tail := grapheme.SplitAt(line, s.Cursor.Column())
	width := 1
	if clusters := grapheme.Split(tail); len(clusters) > 0 {
		width = core.ClusterWidth(clusters[0])
	}
	return s.Viewport.RecomputeCell(core.TextWidth(head), width)
}

// toBottom covers the rows from line to the bottom of the viewport, which
// all shift when the line count changes.
func (s *State) toBottom(line int) dirty.Region {
	return dirty.LineRange(line, max(line, s.Viewport.BottomLine()))
}
