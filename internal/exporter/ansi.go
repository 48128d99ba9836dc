package exporter

import (
	"fmt"
	"strings"

	"github.com/badele/ansicanvas/internal/canvas"
	"github.com/badele/ansicanvas/internal/types"
)

const sgrReset = "\x1b[0m"

// ExportFlattenedANSI renders the canvas at the given geometry and
// re-encodes span styles as SGR sequences. Each row ends with a reset.
func ExportFlattenedANSI(c *canvas.Canvas, g canvas.Geometry) (string, error) {
	return exportFlattenedANSI(c, g, false)
}

// ExportFlattenedANSIInline flattens ANSI output on a single line.
func ExportFlattenedANSIInline(c *canvas.Canvas, g canvas.Geometry) (string, error) {
	return exportFlattenedANSI(c, g, true)
}

func exportFlattenedANSI(c *canvas.Canvas, g canvas.Geometry, inline bool) (string, error) {
	lines, err := c.Cells(g.Cols, g.Rows)
	if err != nil {
		return "", fmt.Errorf("error rendering canvas: %w", err)
	}

	var sb strings.Builder
	for i, line := range lines {
		writeLine(&sb, line)
		if !inline && i < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String(), nil
}

// writeLine emits a sequence only when the style changes.
func writeLine(sb *strings.Builder, line types.Line) {
	current := types.Style{}
	styled := false

	for _, span := range line {
		if len(span.Text) == 0 {
			continue
		}
		if span.Style != current {
			sb.WriteString(span.Style.ToANSI())
			current = span.Style
			styled = true
		}
		sb.Write(span.Text)
	}

	if styled {
		sb.WriteString(sgrReset)
	}
}
