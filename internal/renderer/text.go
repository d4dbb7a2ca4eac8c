package renderer

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/picoterm/internal/dispatcher"
	"github.com/dshills/picoterm/internal/engine/grapheme"
	"github.com/dshills/picoterm/internal/input/mode"
	"github.com/dshills/picoterm/internal/renderer/core"
	"github.com/dshills/picoterm/internal/renderer/gutter"
	"github.com/dshills/picoterm/internal/renderer/highlight"
	"github.com/dshills/picoterm/internal/renderer/layout"
)

// drawTextRows repaints text rows lo..hi, relative to the top of the text
// area.
func (r *Renderer) drawTextRows(st *dispatcher.State, screen layout.Screen, lo, hi int) {
	lo = max(lo, 0)
	hi = min(hi, screen.TextRows()-1)
	scroll := st.Viewport.Scroll()
	for row := lo; row <= hi; row++ {
		r.drawRow(st, screen, row, scroll+row)
	}
}

// drawLines repaints the visible part of document lines lo..hi.
func (r *Renderer) drawLines(st *dispatcher.State, screen layout.Screen, lo, hi int) {
	scroll := st.Viewport.Scroll()
	r.drawTextRows(st, screen, lo-scroll, hi-scroll)
}

// drawRow paints one text row showing document line. Rows past the end
// of the document get a blank gutter.
func (r *Renderer) drawRow(st *dispatcher.State, screen layout.Screen, row, line int) {
	theme := st.Theme
	y := screen.TextTop() + row
	lineCount := st.Buffer.LineCount()
	gw := screen.GutterWidth(lineCount)
	textStyle := theme.Style(highlight.ElementText)

	if line < 0 || line >= lineCount {
		x := r.put(0, y, gutter.Blank(gw), theme.Style(highlight.ElementGutter), screen.Width)
		r.fill(x, y, screen.Width, textStyle)
		return
	}

	gutterStyle := theme.Style(highlight.ElementGutter)
	if line == st.Cursor.Line() {
		gutterStyle = theme.Style(highlight.ElementGutterCurrent)
	}
	x := r.put(0, y, gutter.Format(line, gw), gutterStyle, screen.Width)

	cursorCol, cursorStyle, showCursor := cursorCell(st, line)
	left := st.Viewport.LeftCell()
	col, cell := 0, 0
	full := false
	for _, span := range r.spans(st, st.Buffer.Line(line)) {
		style := theme.SpanStyle(span.Kind)
		for _, cluster := range grapheme.Split(span.Text) {
			cs := style
			if showCursor && col == cursorCol {
				cs = cursorStyle
			}
			w := core.ClusterWidth(printable(cluster))
			switch {
			case full:
			case cell >= left:
				x, full = r.putCluster(x, y, cluster, cs, screen.Width)
			case cell+w > left:
				// Wide cluster cut by the left edge.
				x = r.fill(x, y, min(x+cell+w-left, screen.Width), cs)
			}
			col++
			cell += w
		}
	}

	// Cursor past the last character.
	if showCursor && cursorCol == col && cell >= left && !full {
		x, _ = r.putCluster(x, y, " ", cursorStyle, screen.Width)
	}
	r.fill(x, y, screen.Width, textStyle)
}

// spans splits text into styled runs; without highlighting the whole
// line is one plain span.
func (r *Renderer) spans(st *dispatcher.State, text string) []highlight.Span {
	if st.Highlight {
		return r.tokenizer.Collect(text)
	}
	if text == "" {
		return nil
	}
	return []highlight.Span{{
		Kind:  highlight.SpanPlain,
		Start: 0,
		End:   grapheme.Count(text),
		Text:  text,
	}}
}

// cursorCell returns the cursor column and style when the cursor is
// drawn on line.
func cursorCell(st *dispatcher.State, line int) (col int, style core.Style, ok bool) {
	if line != st.Cursor.Line() {
		return 0, core.Style{}, false
	}
	switch st.Modes.Current() {
	case mode.Write:
		return st.Cursor.Column(), st.Theme.Style(highlight.ElementCursorWrite), true
	case mode.Edit:
		return st.Cursor.Column(), st.Theme.Style(highlight.ElementCursorEdit), true
	default:
		return 0, core.Style{}, false
	}
}

// putCluster draws one grapheme cluster at x. full reports that the
// cluster did not fit before limit.
func (r *Renderer) putCluster(x, y int, cluster string, style core.Style, limit int) (next int, full bool) {
	cell := core.NewCell(printable(cluster), style)
	if x+cell.Width > limit {
		return x, true
	}
	r.backend.SetCell(x, y, cell)
	for i := 1; i < cell.Width; i++ {
		r.backend.SetCell(x+i, y, core.ContinuationCell(style))
	}
	return x + cell.Width, false
}

// put draws s starting at x and returns the column after it.
func (r *Renderer) put(x, y int, s string, style core.Style, limit int) int {
	for _, cluster := range grapheme.Split(s) {
		var full bool
		if x, full = r.putCluster(x, y, cluster, style, limit); full {
			break
		}
	}
	return x
}

// fill blanks the row from x up to limit and returns limit, or x when
// there is nothing to blank.
func (r *Renderer) fill(x, y, limit int, style core.Style) int {
	for ; x < limit; x++ {
		r.backend.SetCell(x, y, core.Cell{Content: " ", Width: 1, Style: style})
	}
	return x
}

// printable replaces control clusters, tabs included, with a space.
func printable(cluster string) string {
	first, _ := utf8.DecodeRuneInString(cluster)
	if unicode.IsControl(first) {
		return " "
	}
	return cluster
}

// prefixClusters returns the first n grapheme clusters of s.
func prefixClusters(s string, n int) string {
	return grapheme.Slice(s, 0, n)
}
