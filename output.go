package main

import (
	"fmt"
	"io"
	"log"

	"github.com/badele/ansicanvas/internal/canvas"
	"github.com/badele/ansicanvas/internal/exporter"
	"github.com/badele/ansicanvas/internal/importer/ansi"
	"github.com/badele/ansicanvas/internal/types"
)

// printBatch writes the non interactive outputs selected on the command
// line. Stats, table and JSON take precedence over the canvas dump.
func printBatch(w io.Writer, cli *CLI, d *ansi.Decoder, lines []types.Line, width int) error {
	if width <= 0 {
		width = types.MaxWidth(lines)
	}

	log.Printf("decoded %d bytes: %d segments (%d degraded), %d lines, width %d",
		d.FileSize, d.Segments, d.Degraded, len(lines), width)

	if cli.Stats {
		exporter.DisplayStats(exporter.CollectStats(d, lines), w)
		return nil
	}

	if cli.Table {
		if err := exporter.ExportSpansToTable(d.Spans, w); err != nil {
			return fmt.Errorf("error displaying table: %w", err)
		}
		return nil
	}

	if cli.JSON {
		if err := exporter.ExportSpansJSON(d, lines, w); err != nil {
			return fmt.Errorf("error displaying JSON: %w", err)
		}
		return nil
	}

	c := canvas.New(lines, width)
	g := canvas.Geometry{Cols: c.Cols(), Rows: c.Rows()}

	var out string
	var err error
	switch {
	case cli.Color && cli.Inline:
		out, err = exporter.ExportFlattenedANSIInline(c, g)
	case cli.Color:
		out, err = exporter.ExportFlattenedANSI(c, g)
	case cli.Inline:
		out, err = exporter.ExportFlattenedTextInline(c, g)
	default:
		out, err = exporter.ExportFlattenedText(c, g)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}
