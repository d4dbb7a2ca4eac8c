package highlight

import (
	"iter"
	"slices"

	"github.com/dshills/picoterm/internal/engine/grapheme"
)

// DefaultKeywords is the keyword list used when none is configured.
var DefaultKeywords = []string{
	"func", "var", "struct", "if", "elseif", "else",
	"static", "return", "true", "false", "null",
}

// Tokenizer finds whole-word, case-sensitive keyword matches in a line.
// A word is a maximal run of letters, digits and underscores.
type Tokenizer struct {
	keywords map[string]struct{}
}

// NewTokenizer creates a tokenizer for the given keywords.
// With no keywords, DefaultKeywords is used.
func NewTokenizer(keywords ...string) *Tokenizer {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	t := &Tokenizer{keywords: make(map[string]struct{}, len(keywords))}
	for _, kw := range keywords {
		if kw != "" {
			t.keywords[kw] = struct{}{}
		}
	}
	return t
}

// IsKeyword reports whether word is a configured keyword.
func (t *Tokenizer) IsKeyword(word string) bool {
	_, ok := t.keywords[word]
	return ok
}

// Spans returns the spans partitioning line in order. Adjacent plain runs
// are merged. The sequence is finite and may be ranged over repeatedly.
// An empty line yields no spans.
func (t *Tokenizer) Spans(line string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		clusters := grapheme.Split(line)

		plainStart, plainByte := 0, 0
		col, off := 0, 0
		for col < len(clusters) {
			if !grapheme.IsWord(clusters[col]) {
				off += len(clusters[col])
				col++
				continue
			}

			wordStart, wordByte := col, off
			for col < len(clusters) && grapheme.IsWord(clusters[col]) {
				off += len(clusters[col])
				col++
			}
			word := line[wordByte:off]
			if !t.IsKeyword(word) {
				continue
			}

			if wordStart > plainStart {
				plain := Span{Kind: SpanPlain, Start: plainStart, End: wordStart, Text: line[plainByte:wordByte]}
				if !yield(plain) {
					return
				}
			}
			if !yield(Span{Kind: SpanKeyword, Start: wordStart, End: col, Text: word}) {
				return
			}
			plainStart, plainByte = col, off
		}

		if col > plainStart {
			yield(Span{Kind: SpanPlain, Start: plainStart, End: col, Text: line[plainByte:]})
		}
	}
}

// Collect returns all spans of line as a slice.
func (t *Tokenizer) Collect(line string) []Span {
	return slices.Collect(t.Spans(line))
}
