package exporter

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/badele/ansicanvas/internal/types"
)

// ExportSpansToTable writes one table row per decoded span.
func ExportSpansToTable(spans []types.Span, writer io.Writer) error {
	fmt.Fprintln(writer, "\n┌────────┬─────────────────┬─────────────────┬──────────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-6s │ %-15s │ %-15s │ %-36s │\n", "Span", "Foreground", "Background", "Text")
	fmt.Fprintln(writer, "├────────┼─────────────────┼─────────────────┼──────────────────────────────────────┤")

	for i, span := range spans {
		_, err := fmt.Fprintf(writer, "│ %6d │ %-15s │ %-15s │ %-36s │\n",
			i,
			span.Style.Fg.String(),
			span.Style.Bg.String(),
			truncate(fmt.Sprintf("%q", span.Text), 36))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(writer, "└────────┴─────────────────┴─────────────────┴──────────────────────────────────────┘")
	return err
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
