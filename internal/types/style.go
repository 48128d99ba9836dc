package types

import (
	"fmt"
	"strconv"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

// Color is either unset or a valid palette index. The zero value is unset,
// and no numeric index is ever used to mean "unset".
type Color struct {
	set   bool
	index ColorIndex
}

// Unset is the color rendered with the host default.
var Unset = Color{}

// NewColor returns the palette color at index i. Indexes outside the
// palette are rejected, never wrapped.
func NewColor(i ColorIndex) (Color, error) {
	if !i.Valid() {
		return Unset, fmt.Errorf("palette index %d out of range [0,%d]", int(i), PaletteSize-1)
	}
	return Color{set: true, index: i}, nil
}

// MustColor is NewColor for constant indexes.
func MustColor(i ColorIndex) Color {
	c, err := NewColor(i)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) IsSet() bool {
	return c.set
}

// Index returns the palette index and whether the color is set.
func (c Color) Index() (ColorIndex, bool) {
	return c.index, c.set
}

func (c Color) String() string {
	if !c.set {
		return "default"
	}
	return c.index.String()
}

/////////////////////////////////////////////////////////////////////////////
// STYLE
/////////////////////////////////////////////////////////////////////////////

// Style is a foreground/background pair. The zero value renders with the
// host defaults on both channels.
type Style struct {
	Fg Color
	Bg Color
}

func (s Style) IsDefault() bool {
	return !s.Fg.set && !s.Bg.set
}

func (s Style) String() string {
	return fmt.Sprintf("fg=%s bg=%s", s.Fg, s.Bg)
}

// ToANSI encodes the style as an SGR sequence. Palette indexes 8..15 use
// the 90-97 and 100-107 ranges. The sequence always starts with a reset so
// that a previous style never leaks into this one.
func (s Style) ToANSI() string {
	codes := []string{"0"}

	if idx, ok := s.Fg.Index(); ok {
		if idx < 8 {
			codes = append(codes, strconv.Itoa(30+int(idx)))
		} else {
			codes = append(codes, strconv.Itoa(82+int(idx)))
		}
	}

	if idx, ok := s.Bg.Index(); ok {
		if idx < 8 {
			codes = append(codes, strconv.Itoa(40+int(idx)))
		} else {
			codes = append(codes, strconv.Itoa(92+int(idx)))
		}
	}

	return "\x1b[" + strings.Join(codes, ";") + "m"
}
