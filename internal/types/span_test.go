package types

import (
	"testing"
)

func lineTexts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = string(l.Bytes())
	}
	return out
}

func TestSplitLines(t *testing.T) {
	red := Style{Fg: MustColor(1)}

	tests := []struct {
		name     string
		spans    []Span
		expected []string
	}{
		{"Empty", nil, []string{""}},
		{"Single", []Span{{Text: []byte("abc")}}, []string{"abc"}},
		{"TrailingNewline", []Span{{Text: []byte("abc\n")}}, []string{"abc"}},
		{"InnerNewlines", []Span{{Text: []byte("a\nb\nc")}}, []string{"a", "b", "c"}},
		{"BlankLine", []Span{{Text: []byte("a\n\nc")}}, []string{"a", "", "c"}},
		{"SpansAcrossLines", []Span{
			{Text: []byte("ab")},
			{Style: red, Text: []byte("cd\nef")},
			{Text: []byte("gh")},
		}, []string{"abcd", "efgh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(SplitLines(tt.spans))
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d lines, got %d (%q)", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSplitLinesCarriesStyle(t *testing.T) {
	red := Style{Fg: MustColor(1)}
	lines := SplitLines([]Span{{Style: red, Text: []byte("ab\ncd")}})

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if len(line) != 1 {
			t.Fatalf("Line %d: expected 1 span, got %d", i, len(line))
		}
		if line[0].Style != red {
			t.Errorf("Line %d: expected style %v, got %v", i, red, line[0].Style)
		}
	}
}

func TestSplitLinesKeepsEmptySpans(t *testing.T) {
	red := Style{Fg: MustColor(1)}
	lines := SplitLines([]Span{{Text: []byte("ab")}, {Style: red, Text: []byte{}}})

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if len(lines[0]) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(lines[0]))
	}
	if lines[0][1].Style != red {
		t.Errorf("Expected empty span to keep its style, got %v", lines[0][1].Style)
	}
}

func TestLineLen(t *testing.T) {
	line := Line{{Text: []byte("ab")}, {Text: []byte("é")}}

	if line.Len() != 4 {
		t.Errorf("Expected byte length 4, got %d", line.Len())
	}
	if string(line.Bytes()) != "abé" {
		t.Errorf("Expected %q, got %q", "abé", line.Bytes())
	}
}
