package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/ansicanvas/internal/importer/ansi"
	"github.com/badele/ansicanvas/internal/types"
)

// SpanStats summarizes one decode run.
type SpanStats struct {
	FileSize   int64          `json:"file_size"`
	Segments   int            `json:"segments"`
	Degraded   int            `json:"degraded"`
	Lines      int            `json:"lines"`
	TextLength int            `json:"text_length"`
	Foreground map[string]int `json:"foreground"`
	Background map[string]int `json:"background"`
}

// CollectStats counts bytes of text per color for a finished decoder.
func CollectStats(d *ansi.Decoder, lines []types.Line) SpanStats {
	stats := SpanStats{
		FileSize:   d.FileSize,
		Segments:   d.Segments,
		Degraded:   d.Degraded,
		Lines:      len(lines),
		Foreground: make(map[string]int),
		Background: make(map[string]int),
	}

	for _, span := range d.Spans {
		n := len(span.Text)
		stats.TextLength += n
		if n == 0 {
			continue
		}
		stats.Foreground[span.Style.Fg.String()] += n
		stats.Background[span.Style.Bg.String()] += n
	}

	return stats
}

func DisplayStats(stats SpanStats, writer io.Writer) {
	fmt.Fprintf(writer, "=== Span Statistics ===\n\n")
	fmt.Fprintf(writer, "  File size: %d bytes\n", stats.FileSize)
	fmt.Fprintf(writer, "  Segments: %d (%d degraded)\n", stats.Segments, stats.Degraded)
	fmt.Fprintf(writer, "  Lines: %d\n", stats.Lines)
	fmt.Fprintf(writer, "  Text bytes: %d\n", stats.TextLength)

	if len(stats.Foreground) > 0 {
		fmt.Fprintf(writer, "\n--- Foreground colors\n")
		displayTopN(writer, stats.Foreground, stats.TextLength, types.PaletteSize+1)
	}

	if len(stats.Background) > 0 {
		fmt.Fprintf(writer, "\n--- Background colors\n")
		displayTopN(writer, stats.Background, stats.TextLength, types.PaletteSize+1)
	}
}

func displayTopN(writer io.Writer, counts map[string]int, total, n int) {
	type kv struct {
		Key   string
		Count int
	}

	var sorted []kv
	for k, v := range counts {
		sorted = append(sorted, kv{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Key < sorted[j].Key
	})

	for i, item := range sorted {
		if i >= n {
			break
		}
		percentage := 0.0
		if total > 0 {
			percentage = float64(item.Count) / float64(total) * 100
		}
		fmt.Fprintf(writer, "  %-15s: %6d (%.1f%%)\n", item.Key, item.Count, percentage)
	}
}
