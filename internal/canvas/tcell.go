package canvas

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/badele/ansicanvas/internal/types"
)

// tcellPalette maps palette indexes to the 16 named tcell colors.
var tcellPalette = [types.PaletteSize]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorNavy,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorRed,
	tcell.ColorLime,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
	tcell.ColorWhite,
}

// TcellColor converts a palette color, unset maps to tcell.ColorDefault.
func TcellColor(c types.Color) tcell.Color {
	idx, ok := c.Index()
	if !ok {
		return tcell.ColorDefault
	}
	return tcellPalette[idx]
}

func TcellStyle(s types.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(TcellColor(s.Fg)).
		Background(TcellColor(s.Bg))
}

// Draw paints the widget at (x, y) inside the rectangle g. Runes advance
// by their display width and anything past g.Cols is clipped. Zero width
// runes (controls, combining marks) are skipped.
func (w *Widget) Draw(screen tcell.Screen, x, y int, g Geometry) error {
	lines, err := w.RenderCells(g)
	if err != nil {
		return err
	}

	for row, line := range lines {
		col := 0

	spans:
		for _, span := range line {
			style := TcellStyle(span.Style)
			text := span.Text

			for len(text) > 0 {
				r, size := utf8.DecodeRune(text)
				text = text[size:]

				width := runewidth.RuneWidth(r)
				if width == 0 {
					continue
				}
				if col+width > g.Cols {
					break spans
				}

				screen.SetContent(x+col, y+row, r, nil, style)
				col += width
			}
		}

		// Wide runes make the byte padding fall short of the edge.
		for ; col < g.Cols; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, tcell.StyleDefault)
		}
	}

	return nil
}

// PostRedraw returns an invalidation hook that wakes the screen's event
// loop with an interrupt event.
func PostRedraw(screen tcell.Screen) func() {
	return func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}
