// Package highlight splits lines into plain and keyword spans and maps
// them, together with the editor chrome, to styles.
package highlight

// SpanKind represents the semantic type of a span.
type SpanKind uint8

// Span kinds.
const (
	SpanPlain SpanKind = iota
	SpanKeyword
)

// String returns the span kind name.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Span is a run of a line with a single kind.
// Start and End are grapheme columns; End is exclusive.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
	Text  string
}

// Len returns the number of columns the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}
