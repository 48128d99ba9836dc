package ansi

// CSI is the 7-bit Control Sequence Introducer (ESC [).
var CSI = []byte{0x1B, '['}

const (
	// SGRFinal terminates an SGR parameter list.
	SGRFinal = 'm'

	// ParamSeparator separates SGR parameters.
	ParamSeparator = ';'
)

// Code ranges resolved by the decoder. Anything outside these ranges is
// ignored.
const (
	attrMax = 29 // 0-29: reset, weight, underline... not modeled

	fgFirst = 30
	fgLast  = 37

	bgFirst = 40
	bgLast  = 47

	// 48-94 brighten the foreground. This bucket is coarse on purpose and
	// also swallows codes like 48 (extended background) and 90-94.
	fgBrightFirst = 48
	fgBrightLast  = 94

	bgBrightFirst = 100
	bgBrightLast  = 104

	brightOffset = 8
)
