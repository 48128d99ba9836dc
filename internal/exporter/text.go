package exporter

import (
	"bytes"
	"fmt"

	"github.com/badele/ansicanvas/internal/canvas"
)

// ExportFlattenedText renders the canvas at the given geometry as plain
// text, one row per line, without styles.
func ExportFlattenedText(c *canvas.Canvas, g canvas.Geometry) (string, error) {
	return exportFlattenedText(c, g, false)
}

// ExportFlattenedTextInline is ExportFlattenedText on a single line.
func ExportFlattenedTextInline(c *canvas.Canvas, g canvas.Geometry) (string, error) {
	return exportFlattenedText(c, g, true)
}

func exportFlattenedText(c *canvas.Canvas, g canvas.Geometry, inline bool) (string, error) {
	rows, err := c.Content(g.Cols, g.Rows)
	if err != nil {
		return "", fmt.Errorf("error rendering canvas: %w", err)
	}

	var buf bytes.Buffer
	for i, row := range rows {
		buf.Write(row)
		if !inline && i < len(rows)-1 {
			buf.WriteByte('\n')
		}
	}

	return buf.String(), nil
}
