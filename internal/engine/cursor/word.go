package cursor

import (
	"github.com/dshills/picoterm/internal/engine/grapheme"
)

// nextWordStart returns the column of the next word start after col.
// The rest of the current non-whitespace run is skipped, then the
// whitespace following it. The result is capped at the line length.
func nextWordStart(line string, col int) int {
	clusters := grapheme.Split(line)
	i := col
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	return i
}

// prevWordStart returns the column of the word start before col.
func prevWordStart(line string, col int) int {
	clusters := grapheme.Split(line)
	i := min(col, len(clusters))
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return i
}
