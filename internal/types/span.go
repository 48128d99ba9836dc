package types

import "bytes"

/////////////////////////////////////////////////////////////////////////////
// SPAN
/////////////////////////////////////////////////////////////////////////////

// Span is a run of text sharing one style. Text is kept verbatim and may be
// empty.
type Span struct {
	Style Style
	Text  []byte
}

func (s Span) String() string {
	return s.Style.String() + " " + string(s.Text)
}

/////////////////////////////////////////////////////////////////////////////
// LINE
/////////////////////////////////////////////////////////////////////////////

// Line is one row of styled content.
type Line []Span

// Bytes returns the text of all spans, without any styling.
func (l Line) Bytes() []byte {
	n := 0
	for _, s := range l {
		n += len(s.Text)
	}

	buf := make([]byte, 0, n)
	for _, s := range l {
		buf = append(buf, s.Text...)
	}
	return buf
}

// Len returns the encoded length of the line in bytes.
func (l Line) Len() int {
	n := 0
	for _, s := range l {
		n += len(s.Text)
	}
	return n
}

// PlainLine wraps unstyled text as a single span line.
func PlainLine(text string) Line {
	return Line{{Text: []byte(text)}}
}

// PlainLines builds one unstyled line per entry.
func PlainLines(texts ...string) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = PlainLine(t)
	}
	return lines
}

// SplitLines breaks spans into lines on '\n' found in their text. A span
// that crosses a line break contributes a span with its style to each
// line it touches. The break itself is dropped.
func SplitLines(spans []Span) []Line {
	lines := []Line{{}}

	for _, span := range spans {
		text := span.Text
		for {
			i := bytes.IndexByte(text, '\n')
			if i < 0 {
				break
			}
			cur := len(lines) - 1
			if i > 0 {
				lines[cur] = append(lines[cur], Span{Style: span.Style, Text: text[:i]})
			}
			lines = append(lines, Line{})
			text = text[i+1:]
		}

		cur := len(lines) - 1
		if len(text) > 0 || len(span.Text) == 0 {
			lines[cur] = append(lines[cur], Span{Style: span.Style, Text: text})
		}
	}

	// A trailing newline terminates the last line rather than opening an
	// empty one.
	if n := len(lines); n > 1 && lines[n-1].Len() == 0 {
		lines = lines[:n-1]
	}

	return lines
}

// MaxWidth returns the longest line length in bytes.
func MaxWidth(lines []Line) int {
	width := 0
	for _, l := range lines {
		if n := l.Len(); n > width {
			width = n
		}
	}
	return width
}
