package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/ansicanvas/internal/importer/ansi"
	"github.com/badele/ansicanvas/internal/types"
)

type SpanJSON struct {
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
	Text string `json:"text"`
}

type DecoderJSONOutput struct {
	Palette []string   `json:"palette"`
	Spans   []SpanJSON `json:"spans"`
	Stats   SpanStats  `json:"stats"`
}

// ExportSpansJSON writes the decoded spans and their statistics as
// indented JSON. Unset colors are named "default".
func ExportSpansJSON(d *ansi.Decoder, lines []types.Line, w io.Writer) error {
	output := DecoderJSONOutput{
		Palette: types.PaletteNames(),
		Spans:   make([]SpanJSON, 0, len(d.Spans)),
		Stats:   CollectStats(d, lines),
	}

	for _, span := range d.Spans {
		output.Spans = append(output.Spans, SpanJSON{
			Fg:   span.Style.Fg.String(),
			Bg:   span.Style.Bg.String(),
			Text: string(span.Text),
		})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}
	return nil
}
