package highlight

import (
	"testing"
)

func TestSpans(t *testing.T) {
	tok := NewTokenizer()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "empty",
			line: "",
			want: nil,
		},
		{
			name: "plain only",
			line: "hello world",
			want: []Span{{SpanPlain, 0, 11, "hello world"}},
		},
		{
			name: "keyword only",
			line: "return",
			want: []Span{{SpanKeyword, 0, 6, "return"}},
		},
		{
			name: "mixed",
			line: "func main() { return true }",
			want: []Span{
				{SpanKeyword, 0, 4, "func"},
				{SpanPlain, 4, 14, " main() { "},
				{SpanKeyword, 14, 20, "return"},
				{SpanPlain, 20, 21, " "},
				{SpanKeyword, 21, 25, "true"},
				{SpanPlain, 25, 27, " }"},
			},
		},
		{
			name: "whole words only",
			line: "iffy funcs _if if_ elseif",
			want: []Span{
				{SpanPlain, 0, 19, "iffy funcs _if if_ "},
				{SpanKeyword, 19, 25, "elseif"},
			},
		},
		{
			name: "case sensitive",
			line: "Return NULL null",
			want: []Span{
				{SpanPlain, 0, 12, "Return NULL "},
				{SpanKeyword, 12, 16, "null"},
			},
		},
		{
			name: "punctuation boundaries",
			line: "(if)",
			want: []Span{
				{SpanPlain, 0, 1, "("},
				{SpanKeyword, 1, 3, "if"},
				{SpanPlain, 3, 4, ")"},
			},
		},
		{
			name: "grapheme columns",
			line: "é var",
			want: []Span{
				{SpanPlain, 0, 2, "é "},
				{SpanKeyword, 2, 5, "var"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Collect(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d spans, got %d: %+v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestSpansPartitionLine(t *testing.T) {
	tok := NewTokenizer()
	lines := []string{
		"static var x = null;",
		"   ",
		"if(a){return}else{return false}",
		"naïve struct café",
	}

	for _, line := range lines {
		next := 0
		text := ""
		for s := range tok.Spans(line) {
			if s.Start != next {
				t.Errorf("%q: span starts at %d, expected %d", line, s.Start, next)
			}
			if s.Len() <= 0 {
				t.Errorf("%q: empty span %+v", line, s)
			}
			next = s.End
			text += s.Text
		}
		if text != line {
			t.Errorf("spans of %q rebuild to %q", line, text)
		}
	}
}

func TestSpansRestartable(t *testing.T) {
	tok := NewTokenizer()
	seq := tok.Spans("if x return y")

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != second || first == 0 {
		t.Errorf("expected equal non-zero counts, got %d and %d", first, second)
	}
}

func TestSpansEarlyBreak(t *testing.T) {
	tok := NewTokenizer()

	count := 0
	for range tok.Spans("if a if b if c") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2 spans, got %d", count)
	}
}

func TestCustomKeywords(t *testing.T) {
	tok := NewTokenizer("select", "from")

	if tok.IsKeyword("func") {
		t.Error("custom keyword list should replace the defaults")
	}
	spans := tok.Collect("select a from b")
	if len(spans) != 4 || spans[0].Kind != SpanKeyword || spans[2].Kind != SpanKeyword {
		t.Errorf("unexpected spans %+v", spans)
	}
}

func TestSpanKindString(t *testing.T) {
	if SpanPlain.String() != "plain" || SpanKeyword.String() != "keyword" {
		t.Error("unexpected span kind names")
	}
	if SpanKind(9).String() != "unknown" {
		t.Error("expected unknown")
	}
}
