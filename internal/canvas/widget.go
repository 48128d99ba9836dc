package canvas

import (
	"github.com/badele/ansicanvas/internal/types"
)

// Widget is a fixed size widget backed by a Canvas. The host sizes it with
// Pack and asks for content with Render or Draw.
type Widget struct {
	canvas       *Canvas
	stale        bool
	onInvalidate func()
}

// NewWidget returns a widget over lines with a fixed column width.
func NewWidget(lines []types.Line, width int) *Widget {
	return &Widget{
		canvas: New(lines, width),
		stale:  true,
	}
}

// OnInvalidate registers fn to be called each time the content changes.
// Hosts use it to schedule a new frame.
func (w *Widget) OnInvalidate(fn func()) {
	w.onInvalidate = fn
}

// Pack returns the intrinsic size: the fixed width and the stored line
// count. It does not depend on any previous render.
//
// A final '\n' ends the last line and adds no row, see types.SplitLines.
func (w *Widget) Pack() (int, int) {
	return w.canvas.Cols(), w.canvas.Rows()
}

// SetContent replaces every stored line and marks the widget stale.
func (w *Widget) SetContent(lines []types.Line) {
	w.canvas = New(lines, w.canvas.Cols())
	w.invalidate()
}

func (w *Widget) invalidate() {
	w.stale = true
	if w.onInvalidate != nil {
		w.onInvalidate()
	}
}

// Stale reports whether the content changed since the last render.
func (w *Widget) Stale() bool {
	return w.stale
}

// Render returns the canvas content for the geometry supplied by the host.
// Nothing is cached; every call queries the canvas again.
func (w *Widget) Render(g Geometry) ([][]byte, error) {
	rows, err := w.canvas.Content(g.Cols, g.Rows)
	if err != nil {
		return nil, err
	}
	w.stale = false
	return rows, nil
}

// RenderCells is Render with styles kept.
func (w *Widget) RenderCells(g Geometry) ([]types.Line, error) {
	lines, err := w.canvas.Cells(g.Cols, g.Rows)
	if err != nil {
		return nil, err
	}
	w.stale = false
	return lines, nil
}
