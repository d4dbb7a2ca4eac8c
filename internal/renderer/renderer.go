package renderer

import (
	"github.com/dshills/picoterm/internal/dispatcher"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer/backend"
	"github.com/dshills/picoterm/internal/renderer/core"
	"github.com/dshills/picoterm/internal/renderer/dirty"
	"github.com/dshills/picoterm/internal/renderer/highlight"
	"github.com/dshills/picoterm/internal/renderer/layout"
	"github.com/dshills/picoterm/internal/renderer/statusline"
)

// Options configures the renderer.
type Options struct {
	// Keywords highlighted when highlighting is enabled.
	// Empty uses highlight.DefaultKeywords.
	Keywords []string

	// Bindings are the global keys listed in the help row.
	Bindings dispatcher.Bindings
}

// DefaultOptions returns the default keywords and bindings.
func DefaultOptions() Options {
	return Options{
		Keywords: highlight.DefaultKeywords,
		Bindings: dispatcher.DefaultBindings(),
	}
}

// Renderer paints a dispatcher.State onto a backend.
type Renderer struct {
	backend   backend.Backend
	tokenizer *highlight.Tokenizer
	status    *statusline.StatusLine
	help      map[mode.Mode]string
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		backend:   b,
		tokenizer: highlight.NewTokenizer(opts.Keywords...),
		status:    statusline.New(),
		help:      HelpText(opts.Bindings),
	}
}

// Render repaints the part of the screen region covers and flushes the
// frame. A None region draws nothing.
func (r *Renderer) Render(st *dispatcher.State, region dirty.Region) {
	if region.IsNone() {
		return
	}

	screen := st.Screen()
	switch region.Kind() {
	case dirty.KindAll:
		r.backend.Clear()
		r.drawTextRows(st, screen, 0, screen.TextRows()-1)
		r.drawChrome(st, screen)
	case dirty.KindSkeleton:
		if st.Modes.Is(mode.Menu) {
			// The dropdown may have moved; repaint what it covered.
			r.drawTextRows(st, screen, 0, menuDepth(st)-1)
		}
		r.drawChrome(st, screen)
	case dirty.KindAllLines:
		r.drawTextRows(st, screen, 0, screen.TextRows()-1)
		r.drawStatus(st, screen)
	default:
		lo, hi, _ := region.Lines()
		r.drawLines(st, screen, lo, hi)
		r.drawStatus(st, screen)
	}

	if st.Modes.Is(mode.Menu) {
		r.drawMenu(st, screen)
	}
	r.placeCursor(st, screen)
	r.backend.Show()
}

// placeCursor shows the terminal cursor in the console prompt and hides
// it otherwise. The text cursor is drawn as a styled cell.
func (r *Renderer) placeCursor(st *dispatcher.State, screen layout.Screen) {
	if !st.Modes.Is(mode.Console) || !st.Console.Active() {
		r.backend.HideCursor()
		return
	}
	head := st.Console.Prompt() + prefixClusters(st.Console.Text(), st.Console.Column())
	x := core.StringWidth(head)
	if x >= screen.Width {
		x = screen.Width - 1
	}
	r.backend.ShowCursor(x, screen.HelpRow())
}
