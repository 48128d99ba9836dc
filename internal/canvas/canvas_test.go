package canvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/badele/ansicanvas/internal/types"
)

func TestContentPadsAndFills(t *testing.T) {
	c := New(types.PlainLines("ab", "abcdefghij", "a"), 10)

	rows, err := c.Content(10, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{
		"ab" + strings.Repeat(" ", 8),
		"abcdefghij",
		"a" + strings.Repeat(" ", 9),
		strings.Repeat(" ", 10),
		strings.Repeat(" ", 10),
	}

	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(rows))
	}

	for i := range expected {
		if string(rows[i]) != expected[i] {
			t.Errorf("Row %d: expected %q, got %q", i, expected[i], rows[i])
		}
	}
}

func TestContentDoesNotTruncate(t *testing.T) {
	c := New(types.PlainLines("abcdefghij"), 10)

	rows, err := c.Content(4, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if string(rows[0]) != "abcdefghij" {
		t.Errorf("Expected long line unchanged, got %q", rows[0])
	}
}

func TestContentFewerRowsThanLines(t *testing.T) {
	c := New(types.PlainLines("a", "b", "c"), 3)

	rows, err := c.Content(3, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if string(rows[1]) != "b  " {
		t.Errorf("Expected %q, got %q", "b  ", rows[1])
	}
}

func TestContentZeroGeometry(t *testing.T) {
	c := New(types.PlainLines("ab"), 2)

	rows, err := c.Content(0, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}

	rows, err = c.Content(0, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(rows[0]) != "ab" || len(rows[1]) != 0 {
		t.Errorf("Unexpected rows %q", rows)
	}
}

func TestContentInvalidGeometry(t *testing.T) {
	c := New(types.PlainLines("ab"), 2)

	for _, g := range []Geometry{{-1, 1}, {1, -1}, {-3, -3}} {
		_, err := c.Content(g.Cols, g.Rows)
		if !errors.Is(err, ErrGeometry) {
			t.Errorf("Geometry %v: expected ErrGeometry, got %v", g, err)
		}
	}
}

func TestContentIsPure(t *testing.T) {
	c := New(types.PlainLines("ab", "cd"), 4)

	first, _ := c.Content(4, 3)
	_, _ = c.Content(8, 10)
	second, _ := c.Content(4, 3)

	for i := range first {
		if string(first[i]) != string(second[i]) {
			t.Errorf("Row %d changed between calls: %q vs %q", i, first[i], second[i])
		}
	}

	if c.Cols() != 4 || c.Rows() != 2 {
		t.Errorf("Expected intrinsic size 4x2, got %dx%d", c.Cols(), c.Rows())
	}
}

// Padding counts bytes, not display columns: "é" is two bytes, so the row
// gets one space less than a display-width measure would give.
func TestContentPadsByBytes(t *testing.T) {
	c := New(types.PlainLines("é"), 4)

	rows, err := c.Content(4, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if string(rows[0]) != "é  " {
		t.Errorf("Expected %q, got %q", "é  ", rows[0])
	}

	if len(rows[0]) != 4 {
		t.Errorf("Expected 4 bytes, got %d", len(rows[0]))
	}
}

func TestContentDropsStyles(t *testing.T) {
	red := types.Style{Fg: types.MustColor(1)}
	line := types.Line{{Text: []byte("a")}, {Style: red, Text: []byte("b")}}
	c := New([]types.Line{line}, 3)

	rows, _ := c.Content(3, 1)
	if string(rows[0]) != "ab " {
		t.Errorf("Expected %q, got %q", "ab ", rows[0])
	}
}

func TestCellsKeepsStyles(t *testing.T) {
	red := types.Style{Fg: types.MustColor(1)}
	line := types.Line{{Text: []byte("a")}, {Style: red, Text: []byte("b")}}
	c := New([]types.Line{line}, 4)

	lines, err := c.Cells(4, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	if len(lines[0]) != 3 {
		t.Fatalf("Expected 2 spans plus padding, got %d", len(lines[0]))
	}

	if lines[0][1].Style != red {
		t.Errorf("Expected red span, got %v", lines[0][1].Style)
	}

	if !lines[0][2].Style.IsDefault() || string(lines[0][2].Text) != "  " {
		t.Errorf("Unexpected padding span %v", lines[0][2])
	}

	if string(lines[1].Bytes()) != "    " {
		t.Errorf("Expected blank row, got %q", lines[1].Bytes())
	}

	// The stored line must not grow from padding.
	if len(c.Lines()[0]) != 2 {
		t.Errorf("Stored line was modified: %d spans", len(c.Lines()[0]))
	}
}
