package ansi

import (
	"errors"
	"testing"

	"github.com/badele/ansicanvas/internal/types"
)

func color(i int) types.Color {
	return types.MustColor(types.ColorIndex(i))
}

func TestDecodePlainText(t *testing.T) {
	inputs := []string{"Hello World", "", "some text with m and ; in it", "line1\nline2\n"}

	for _, input := range inputs {
		spans, err := Decode([]byte(input))
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", input, err)
		}

		if len(spans) != 1 {
			t.Fatalf("Expected 1 span for %q, got %d", input, len(spans))
		}

		if !spans[0].Style.IsDefault() {
			t.Errorf("Expected default style for %q, got %v", input, spans[0].Style)
		}

		if string(spans[0].Text) != input {
			t.Errorf("Expected text %q, got %q", input, spans[0].Text)
		}
	}
}

func TestDecodeSGR(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Style
		text     string
	}{
		{"DarkRed", "\x1b[31mHello", types.Style{Fg: color(1)}, "Hello"},
		{"BoldIgnored", "\x1b[1;31mHello", types.Style{Fg: color(1)}, "Hello"},
		{"OrderInsensitive", "\x1b[31;1mHello", types.Style{Fg: color(1)}, "Hello"},
		{"Background", "\x1b[44mX", types.Style{Bg: color(4)}, "X"},
		{"Both", "\x1b[32;47mX", types.Style{Fg: color(2), Bg: color(7)}, "X"},
		{"BrightFg", "\x1b[31;91mX", types.Style{Fg: color(9)}, "X"},
		{"BrightBg", "\x1b[100;40mX", types.Style{Bg: color(8)}, "X"},
		{"LastWinsAfterSort", "\x1b[37;31mX", types.Style{Fg: color(7)}, "X"},
		{"Reset", "\x1b[0mX", types.Style{}, "X"},
		{"EmptyParams", "\x1b[mX", types.Style{}, "X"},
		{"EmptyField", "\x1b[;33mX", types.Style{Fg: color(3)}, "X"},
		{"IgnoredCodes", "\x1b[39;105;33mX", types.Style{Fg: color(3)}, "X"},
		{"EmptyText", "\x1b[36m", types.Style{Fg: color(6)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			// Leading empty segment + the SGR segment
			if len(spans) != 2 {
				t.Fatalf("Expected 2 spans, got %d", len(spans))
			}

			if len(spans[0].Text) != 0 || !spans[0].Style.IsDefault() {
				t.Errorf("Expected empty default leading span, got %v", spans[0])
			}

			if spans[1].Style != tt.expected {
				t.Errorf("Expected style %v, got %v", tt.expected, spans[1].Style)
			}

			if string(spans[1].Text) != tt.text {
				t.Errorf("Expected text %q, got %q", tt.text, spans[1].Text)
			}
		})
	}
}

func TestDecodeKeepsSegmentOrder(t *testing.T) {
	input := "pre\x1b[31mred\x1b[32mgreen\n more\x1b[0m\x1b[0mend"
	spans, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"pre", "red", "green\n more", "", "end"}
	if len(spans) != len(expected) {
		t.Fatalf("Expected %d spans, got %d", len(expected), len(spans))
	}

	for i, text := range expected {
		if string(spans[i].Text) != text {
			t.Errorf("Span %d: expected %q, got %q", i, text, spans[i].Text)
		}
	}

	if spans[1].Style.Fg != color(1) || spans[2].Style.Fg != color(2) {
		t.Errorf("Unexpected styles %v, %v", spans[1].Style, spans[2].Style)
	}
}

func TestDecodeDegradation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"NoFinal", "\x1b[31", "31"},
		{"NonInteger", "\x1b[3x1mHello", "Hello"},
		{"Negative", "\x1b[-1mHello", "Hello"},
		{"Overflow", "\x1b[99999999999999999999999mHello", "Hello"},
		{"CursorMove", "\x1b[2J\x1b[Hm", "2J"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder([]byte(tt.input))
			spans, err := d.Decode()
			if err != nil {
				t.Fatalf("Expected degradation, got error: %v", err)
			}

			if len(spans) < 2 {
				t.Fatalf("Expected at least 2 spans, got %d", len(spans))
			}

			if !spans[1].Style.IsDefault() {
				t.Errorf("Expected default style, got %v", spans[1].Style)
			}

			if string(spans[1].Text) != tt.text {
				t.Errorf("Expected text %q, got %q", tt.text, spans[1].Text)
			}

			if d.Degraded == 0 {
				t.Errorf("Expected degraded counter to be incremented")
			}
		})
	}
}

func TestDecodePaletteIndexError(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		channel string
		unset   bool
	}{
		{"DoubleBright", "ok\x1b[31;90;91mX", "foreground", false},
		{"BrightUnsetFg", "\x1b[91mX", "foreground", true},
		{"BrightUnsetBg", "\x1b[101mX", "background", true},
		{"DoubleBrightBg", "\x1b[47;100;101mX", "background", false},
		{"TripleBright", "\x1b[33;93;94mX", "foreground", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatalf("Expected palette index error, got spans %v", spans)
			}

			if !errors.Is(err, ErrPaletteIndex) {
				t.Errorf("Expected ErrPaletteIndex, got %v", err)
			}

			var pe *PaletteIndexError
			if !errors.As(err, &pe) {
				t.Fatalf("Expected *PaletteIndexError, got %T", err)
			}

			if pe.Channel != tt.channel {
				t.Errorf("Expected channel %q, got %q", tt.channel, pe.Channel)
			}

			if pe.Unset != tt.unset {
				t.Errorf("Expected unset=%v, got %v", tt.unset, pe.Unset)
			}

			if !pe.Unset && pe.Index < types.PaletteSize {
				t.Errorf("Expected out of range index, got %d", pe.Index)
			}
		})
	}
}

func TestDecodePaletteErrorFailsWholeStream(t *testing.T) {
	d := NewDecoder([]byte("ok\x1b[31mred\x1b[91mgreen\x1b[101mX"))

	spans, err := d.Decode()
	if !errors.Is(err, ErrPaletteIndex) {
		t.Fatalf("Expected ErrPaletteIndex, got %v", err)
	}

	if spans != nil {
		t.Errorf("Expected no spans, got %v", spans)
	}
}

func TestDecodeErrorPosition(t *testing.T) {
	_, err := Decode([]byte("ok\x1b[31mred\x1b[31;90;91mX"))

	var pe *PaletteIndexError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected *PaletteIndexError, got %v", err)
	}

	if pe.Pos != 12 {
		t.Errorf("Expected position 12, got %d", pe.Pos)
	}

	if pe.Params != "31;90;91" {
		t.Errorf("Expected params %q, got %q", "31;90;91", pe.Params)
	}
}

func TestDecoderStats(t *testing.T) {
	d := NewDecoder([]byte("a\x1b[31mb\x1b[xmc"))
	if _, err := d.Decode(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if d.Segments != 3 {
		t.Errorf("Expected 3 segments, got %d", d.Segments)
	}

	if d.Degraded != 1 {
		t.Errorf("Expected 1 degraded segment, got %d", d.Degraded)
	}

	if d.FileSize != 12 {
		t.Errorf("Expected file size 12, got %d", d.FileSize)
	}
}
