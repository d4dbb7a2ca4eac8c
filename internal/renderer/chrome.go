package renderer

import (
	"strings"

	"github.com/dshills/picoterm/internal/dispatcher"
	"github.com/dshills/picoterm/internal/input/menu"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer/core"
	"github.com/dshills/picoterm/internal/renderer/highlight"
	"github.com/dshills/picoterm/internal/renderer/layout"
)

const (
	// headerTitle is printed before the menu titles.
	headerTitle = " picoterm  │  "

	// titleGap separates menu titles.
	titleGap = 2

	// dropdownWidth is the width of an open menu column.
	dropdownWidth = 20
)

// drawChrome repaints every non-text row.
func (r *Renderer) drawChrome(st *dispatcher.State, screen layout.Screen) {
	r.drawHeader(st, screen)
	r.drawSeparator(st, screen)
	r.drawStatus(st, screen)
	r.drawHelp(st, screen)
}

// drawHeader paints the title and the menu column titles. The selected
// title is highlighted in Menu mode.
func (r *Renderer) drawHeader(st *dispatcher.State, screen layout.Screen) {
	theme := st.Theme
	y := screen.HeaderRow()
	headerStyle := theme.Style(highlight.ElementHeader)

	x := r.put(0, y, headerTitle, headerStyle, screen.Width)
	inMenu := st.Modes.Is(mode.Menu)
	for i, col := range st.Menu.Columns() {
		style := theme.Style(highlight.ElementMenuTitle)
		if inMenu && i == st.Menu.Column() {
			style = theme.Style(highlight.ElementMenuTitleSelected)
		}
		x = r.put(x, y, col.Title, style, screen.Width)
		x = r.put(x, y, strings.Repeat(" ", titleGap), headerStyle, screen.Width)
	}
	r.fill(x, y, screen.Width, headerStyle)
}

// drawSeparator paints the rule between the text and the status row.
func (r *Renderer) drawSeparator(st *dispatcher.State, screen layout.Screen) {
	y := screen.SeparatorRow()
	style := st.Theme.Style(highlight.ElementSeparator)
	gw := screen.GutterWidth(st.Buffer.LineCount())

	rule := strings.Repeat("─", max(gw-1, 0)) + "┴" + strings.Repeat("─", max(screen.Width-gw, 0))
	x := r.put(0, y, rule, style, screen.Width)
	r.fill(x, y, screen.Width, style)
}

// drawStatus paints the status row.
func (r *Renderer) drawStatus(st *dispatcher.State, screen layout.Screen) {
	s := r.status
	s.Resize(screen.Width)
	s.SetMode(st.Modes.Current().DisplayName())
	s.SetFilename(st.FileName)
	s.SetModified(st.Modified())
	s.SetPosition(st.Cursor.Line(), st.Cursor.Column())
	s.SetTotalLines(st.Buffer.LineCount())
	if st.Status != "" {
		s.SetMessage(st.Status)
	} else {
		s.ClearMessage()
	}
	s.Render(r.backend, screen.StatusRow(), st.Theme.Style(highlight.ElementStatus))
}

// drawHelp paints the help text for the current mode, or the console
// prompt and its input.
func (r *Renderer) drawHelp(st *dispatcher.State, screen layout.Screen) {
	y := screen.HelpRow()
	if st.Modes.Is(mode.Console) {
		style := st.Theme.Style(highlight.ElementConsole)
		x := r.put(0, y, st.Console.Prompt()+st.Console.Text(), style, screen.Width)
		r.fill(x, y, screen.Width, style)
		return
	}

	style := st.Theme.Style(highlight.ElementHelp)
	x := r.put(0, y, r.help[st.Modes.Current()], style, screen.Width)
	r.fill(x, y, screen.Width, style)
}

// drawMenu paints the dropdown of the selected column over the text area.
func (r *Renderer) drawMenu(st *dispatcher.State, screen layout.Screen) {
	columns := st.Menu.Columns()
	if len(columns) == 0 {
		return
	}
	selected := st.Menu.Column()
	theme := st.Theme

	left := titleOffset(columns, selected)
	limit := min(left+dropdownWidth, screen.Width)
	for i, item := range columns[selected].Items {
		if i >= screen.TextRows() {
			break
		}
		style := theme.Style(highlight.ElementMenuItem)
		if i == st.Menu.Item() {
			style = theme.Style(highlight.ElementMenuItemSelected)
		}
		y := screen.TextTop() + i
		x := r.put(left, y, " "+item.Label, style, limit)
		r.fill(x, y, limit, style)
	}
}

// titleOffset returns the screen column of the given menu title.
func titleOffset(columns []menu.Column, index int) int {
	x := core.StringWidth(headerTitle)
	for i := 0; i < index && i < len(columns); i++ {
		x += core.StringWidth(columns[i].Title) + titleGap
	}
	return x
}

// menuDepth returns the number of text rows the tallest dropdown covers.
func menuDepth(st *dispatcher.State) int {
	depth := 0
	for _, col := range st.Menu.Columns() {
		depth = max(depth, len(col.Items))
	}
	return depth
}
