package canvas

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/badele/ansicanvas/internal/types"
)

// ErrGeometry is returned when a content query has no usable size.
var ErrGeometry = errors.New("invalid geometry")

// Geometry is a size request made by the host at render time.
type Geometry struct {
	Cols int
	Rows int
}

func (g Geometry) validate() error {
	if g.Cols < 0 || g.Rows < 0 {
		return fmt.Errorf("%w: %dx%d", ErrGeometry, g.Cols, g.Rows)
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// Canvas
/////////////////////////////////////////////////////////////////////////////

// Canvas answers rectangular content queries over a fixed set of lines.
//
// Widths are measured in bytes: one byte is one column. Multi-byte UTF-8
// text is therefore padded short. Lines longer than the requested width
// are returned whole; clipping to the exact width belongs to whoever puts
// the bytes on screen.
type Canvas struct {
	lines []types.Line
	width int
}

// New returns a canvas over lines with a fixed column width. The canvas
// takes ownership of lines.
func New(lines []types.Line, width int) *Canvas {
	if width < 0 {
		width = 0
	}
	return &Canvas{lines: lines, width: width}
}

// Cols returns the fixed width given at construction.
func (c *Canvas) Cols() int {
	return c.width
}

// Rows returns the number of stored lines.
func (c *Canvas) Rows() int {
	return len(c.lines)
}

// Lines returns the stored lines. Callers must not modify them.
func (c *Canvas) Lines() []types.Line {
	return c.lines
}

// Content returns exactly rows rows. Stored lines shorter than cols are
// right padded with spaces, missing lines are cols spaces.
//
// Rows produced for missing lines share one backing array and must be
// treated as read only.
func (c *Canvas) Content(cols, rows int) ([][]byte, error) {
	g := Geometry{Cols: cols, Rows: rows}
	if err := g.validate(); err != nil {
		return nil, err
	}

	blank := bytes.Repeat([]byte{' '}, cols)
	out := make([][]byte, rows)

	for i := 0; i < rows; i++ {
		if i >= len(c.lines) {
			out[i] = blank[:cols:cols]
			continue
		}

		line := c.lines[i]
		n := line.Len()
		if n >= cols {
			out[i] = line.Bytes()
			continue
		}

		row := make([]byte, 0, cols)
		for _, s := range line {
			row = append(row, s.Text...)
		}
		out[i] = append(row, blank[:cols-n]...)
	}

	return out, nil
}

// Cells is Content with the span styles kept. Padding uses the default
// style.
func (c *Canvas) Cells(cols, rows int) ([]types.Line, error) {
	g := Geometry{Cols: cols, Rows: rows}
	if err := g.validate(); err != nil {
		return nil, err
	}

	blank := bytes.Repeat([]byte{' '}, cols)
	out := make([]types.Line, rows)

	for i := 0; i < rows; i++ {
		if i >= len(c.lines) {
			out[i] = types.Line{{Text: blank[:cols:cols]}}
			continue
		}

		line := c.lines[i]
		n := line.Len()
		if n >= cols {
			out[i] = line
			continue
		}

		pad := cols - n
		padded := make(types.Line, len(line), len(line)+1)
		copy(padded, line)
		out[i] = append(padded, types.Span{Text: blank[:pad:pad]})
	}

	return out, nil
}
