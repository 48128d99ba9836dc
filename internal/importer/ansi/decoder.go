package ansi

// Sources :
// - https://vt100.net/docs/vt510-rm/chapter4.html
// - https://ecma-international.org/wp-content/uploads/ECMA-48_5th_edition_june_1991.pdf

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/badele/ansicanvas/internal/types"
)

// ErrPaletteIndex matches every *PaletteIndexError.
var ErrPaletteIndex = errors.New("palette index out of range")

// PaletteIndexError reports a color channel that resolved outside the
// palette. Unset is true when a bright offset was applied to a channel
// that never received a base color.
type PaletteIndexError struct {
	Channel string // "foreground" or "background"
	Index   int
	Unset   bool
	Pos     int // byte offset of the segment in the input
	Params  string
}

func (e *PaletteIndexError) Error() string {
	if e.Unset {
		return fmt.Sprintf("sgr %q at %d: bright offset applied to unset %s", e.Params, e.Pos, e.Channel)
	}
	return fmt.Sprintf("sgr %q at %d: %s index %d out of range [0,%d]",
		e.Params, e.Pos, e.Channel, e.Index, types.PaletteSize-1)
}

func (e *PaletteIndexError) Is(target error) bool {
	return target == ErrPaletteIndex
}

/////////////////////////////////////////////////////////////////////////////
// DECODER
/////////////////////////////////////////////////////////////////////////////

// Decoder turns an SGR colored byte stream into styled spans. A Decoder is
// meant for a single Decode call; the counters describe that run.
type Decoder struct {
	input    []byte
	Spans    []types.Span
	FileSize int64
	Segments int
	// Degraded counts segments whose parameters could not be parsed and
	// fell back to the default style.
	Degraded int
}

func NewDecoder(input []byte) *Decoder {
	return &Decoder{
		input:    input,
		Spans:    make([]types.Span, 0),
		FileSize: int64(len(input)),
	}
}

// Decode is a shortcut for NewDecoder(data).Decode().
func Decode(data []byte) ([]types.Span, error) {
	return NewDecoder(data).Decode()
}

// Decode splits the input on CSI and returns one span per segment, in
// input order. Span text aliases the input buffer.
//
// Malformed segments degrade to the default style. A color that resolves
// outside the palette is returned as a *PaletteIndexError, and one such
// segment fails the whole stream: no spans are returned.
func (d *Decoder) Decode() ([]types.Span, error) {
	segments := bytes.Split(d.input, CSI)
	d.Segments = len(segments)

	// Text before the first introducer has no attributes.
	d.Spans = append(d.Spans, types.Span{Text: segments[0]})
	pos := len(segments[0])

	for _, seg := range segments[1:] {
		pos += len(CSI)

		span, err := d.decodeSegment(seg, pos)
		if err != nil {
			return nil, err
		}
		d.Spans = append(d.Spans, span)

		pos += len(seg)
	}

	return d.Spans, nil
}

func (d *Decoder) decodeSegment(seg []byte, pos int) (types.Span, error) {
	end := bytes.IndexByte(seg, SGRFinal)
	if end < 0 {
		d.Degraded++
		return types.Span{Text: seg}, nil
	}

	params, text := seg[:end], seg[end+1:]

	codes, ok := parseParams(params)
	if !ok {
		d.Degraded++
		return types.Span{Text: text}, nil
	}

	style, err := resolve(codes)
	if err != nil {
		var pe *PaletteIndexError
		if errors.As(err, &pe) {
			pe.Pos = pos
			pe.Params = string(params)
		}
		return types.Span{}, err
	}

	return types.Span{Style: style, Text: text}, nil
}

// parseParams reads a ';' separated list of decimal integers. An empty
// field is the ECMA-48 default parameter 0. ok is false when any field is
// not a decimal integer.
func parseParams(params []byte) ([]int, bool) {
	fields := bytes.Split(params, []byte{ParamSeparator})
	codes := make([]int, 0, len(fields))

	for _, f := range fields {
		if len(f) == 0 {
			codes = append(codes, 0)
			continue
		}
		for _, c := range f {
			if c < '0' || c > '9' {
				return nil, false
			}
		}
		code, err := strconv.Atoi(string(f))
		if err != nil {
			return nil, false
		}
		codes = append(codes, code)
	}

	return codes, true
}

/////////////////////////////////////////////////////////////////////////////
// RESOLUTION
/////////////////////////////////////////////////////////////////////////////

// channel is one color channel while codes are being applied. set stays
// false until a base color code is seen.
type channel struct {
	set   bool
	index int
}

func (c channel) brighten() (channel, bool) {
	if !c.set {
		return c, false
	}
	return channel{set: true, index: c.index + brightOffset}, true
}

func (c channel) color(name string) (types.Color, error) {
	if !c.set {
		return types.Unset, nil
	}
	color, err := types.NewColor(types.ColorIndex(c.index))
	if err != nil {
		return types.Unset, &PaletteIndexError{Channel: name, Index: c.index}
	}
	return color, nil
}

// resolve applies codes as an unordered set: they are sorted first, so
// "1;31" and "31;1" give the same style, and for each channel the last
// applicable code wins. Real terminals apply SGR codes in order; this
// decoder does not.
func resolve(codes []int) (types.Style, error) {
	sorted := make([]int, len(codes))
	copy(sorted, codes)
	sort.Ints(sorted)

	var fg, bg channel
	var ok bool

	for _, code := range sorted {
		switch {
		case code <= attrMax:
			// not modeled

		case code >= fgFirst && code <= fgLast:
			fg = channel{set: true, index: code - fgFirst}

		case code >= bgFirst && code <= bgLast:
			bg = channel{set: true, index: code - bgFirst}

		case code >= fgBrightFirst && code <= fgBrightLast:
			if fg, ok = fg.brighten(); !ok {
				return types.Style{}, &PaletteIndexError{Channel: "foreground", Index: -1, Unset: true}
			}

		case code >= bgBrightFirst && code <= bgBrightLast:
			if bg, ok = bg.brighten(); !ok {
				return types.Style{}, &PaletteIndexError{Channel: "background", Index: -1, Unset: true}
			}
		}
	}

	fgColor, err := fg.color("foreground")
	if err != nil {
		return types.Style{}, err
	}

	bgColor, err := bg.color("background")
	if err != nil {
		return types.Style{}, err
	}

	return types.Style{Fg: fgColor, Bg: bgColor}, nil
}
