// Package grapheme provides grapheme-cluster helpers used as the column unit
// throughout the editor engine. A column is always a count of clusters as
// segmented by uniseg, never a byte or rune offset.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// ByteOffset returns the byte offset of column col in text.
// Columns past the end map to len(text); negative columns map to 0.
func ByteOffset(text string, col int) int {
	if col <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == col {
			start, _ := g.Positions()
			return start
		}
		idx++
	}
	return len(text)
}

// SplitAt splits text at column col into a head and a tail.
func SplitAt(text string, col int) (head, tail string) {
	off := ByteOffset(text, col)
	return text[:off], text[off:]
}

// Slice returns the clusters in [start, end) of text.
func Slice(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	from := ByteOffset(text, start)
	to := ByteOffset(text, end)
	return text[from:to]
}

// IsSpace reports whether every rune of cluster is Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsWord reports whether cluster starts with a letter, digit or underscore.
func IsWord(cluster string) bool {
	for _, r := range cluster {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}
