// Package ansicanvas provides a public API for turning ANSI colored text
// (typically chafa output) into a fixed size terminal widget.
//
// This package provides functions to:
//   - Convert input from legacy code pages (CP437, CP850, ISO-8859-1) to UTF-8
//   - Decode SGR colored text into styled lines
//   - Build a fixed width canvas or widget over those lines
//   - Run the chafa converter
//
// Example usage:
//
//	import "github.com/badele/ansicanvas/pkg/ansicanvas"
//
//	text, err := ansicanvas.NewConverter("chafa").Render(ctx, ansicanvas.Request{Path: "cat.png", Width: "40"})
//	lines, err := ansicanvas.DecodeLines([]byte(text))
//	widget := ansicanvas.NewWidget(lines, ansicanvas.MaxWidth(lines))
package ansicanvas

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/badele/ansicanvas/internal/canvas"
	"github.com/badele/ansicanvas/internal/converter"
	"github.com/badele/ansicanvas/internal/importer/ansi"
	"github.com/badele/ansicanvas/internal/types"
)

// Type aliases for public API
type (
	// ColorIndex is a position in the 16 color palette
	ColorIndex = types.ColorIndex

	// Color is a palette color or unset
	Color = types.Color

	// Style is a foreground/background pair
	Style = types.Style

	// Span is a run of text sharing one style
	Span = types.Span

	// Line is one row of spans
	Line = types.Line

	// Canvas answers fixed rectangle content queries
	Canvas = canvas.Canvas

	// Widget wraps a canvas for a host framework
	Widget = canvas.Widget

	// Geometry is a (cols, rows) request
	Geometry = canvas.Geometry

	// Decoder decodes SGR colored text
	Decoder = ansi.Decoder

	// PaletteIndexError reports a color outside the palette
	PaletteIndexError = ansi.PaletteIndexError

	// Converter runs chafa
	Converter = converter.Converter

	// Request describes one converter run
	Request = converter.Request

	// InvocationError reports a converter that did not produce an image
	InvocationError = converter.InvocationError
)

// Errors
var (
	ErrPaletteIndex      = ansi.ErrPaletteIndex
	ErrGeometry          = canvas.ErrGeometry
	ErrConfigFormat      = converter.ErrConfigFormat
	ErrConverterNotFound = converter.ErrConverterNotFound
	ErrConverterFailed   = converter.ErrConverterFailed
)

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" || sourceEncoding == "" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// NormalizeInput drops carriage returns so that CRLF output splits into
// the same lines as LF output.
func NormalizeInput(data []byte) []byte {
	if bytes.IndexByte(data, '\r') < 0 {
		return data
	}
	return bytes.ReplaceAll(data, []byte{'\r'}, nil)
}

// DecodeLines decodes SGR colored text and splits it into lines.
func DecodeLines(data []byte) ([]Line, error) {
	spans, err := ansi.Decode(NormalizeInput(data))
	if err != nil {
		return nil, err
	}
	return types.SplitLines(spans), nil
}

// MaxWidth returns the longest line length in bytes, the column measure
// used by Canvas.
func MaxWidth(lines []Line) int {
	return types.MaxWidth(lines)
}

// NewDecoder creates a decoder for UTF-8 input.
func NewDecoder(input []byte) *Decoder {
	return ansi.NewDecoder(input)
}

// NewCanvas creates a canvas with a fixed column width.
func NewCanvas(lines []Line, width int) *Canvas {
	return canvas.New(lines, width)
}

// NewWidget creates a fixed size widget.
func NewWidget(lines []Line, width int) *Widget {
	return canvas.NewWidget(lines, width)
}

// NewConverter creates a converter for binary ("chafa" when empty).
func NewConverter(binary string) *Converter {
	return converter.New(binary)
}
