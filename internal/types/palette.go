package types

import "fmt"

/////////////////////////////////////////////////////////////////////////////
// PALETTE
/////////////////////////////////////////////////////////////////////////////

// PaletteSize is the number of entries in the palette. Valid indexes are
// 0..PaletteSize-1.
const PaletteSize = 16

// ColorIndex is a position in the 16 color palette.
type ColorIndex int

// palette is ordered, the index is the contract with the decoder.
var palette = [PaletteSize]string{
	"black",
	"dark red",
	"dark green",
	"brown",
	"dark blue",
	"dark magenta",
	"dark cyan",
	"light gray",
	"dark gray",
	"light red",
	"light green",
	"yellow",
	"light blue",
	"light magenta",
	"light cyan",
	"white",
}

// Valid reports whether i addresses a palette entry.
func (i ColorIndex) Valid() bool {
	return i >= 0 && i < PaletteSize
}

// Name returns the palette name of i, or an error when i is out of range.
func (i ColorIndex) Name() (string, error) {
	if !i.Valid() {
		return "", fmt.Errorf("palette index %d out of range [0,%d]", int(i), PaletteSize-1)
	}
	return palette[i], nil
}

func (i ColorIndex) String() string {
	if name, err := i.Name(); err == nil {
		return name
	}
	return fmt.Sprintf("ColorIndex(%d)", int(i))
}

// PaletteNames returns a copy of the palette names in index order.
func PaletteNames() []string {
	names := make([]string, PaletteSize)
	copy(names, palette[:])
	return names
}
