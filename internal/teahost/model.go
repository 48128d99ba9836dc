// Package teahost shows a canvas widget inside a bubbletea program.
package teahost

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/badele/ansicanvas/internal/canvas"
	"github.com/badele/ansicanvas/internal/types"
)

// LoadFunc produces new content. It runs as a tea.Cmd, off the render
// path, so it may block (e.g. on the converter).
type LoadFunc func() ([]types.Line, error)

type contentMsg struct {
	lines []types.Line
	err   error
}

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is a tea.Model over a canvas widget with a one row status line.
type Model struct {
	widget      *canvas.Widget
	canvasWidth int
	load        LoadFunc
	width       int
	height      int
	loading     bool
	err         error
}

func New(widget *canvas.Widget, load LoadFunc) Model {
	return Model{widget: widget, load: load, loading: load != nil}
}

// NewLazy returns a model whose widget is created from the first loaded
// content. A canvasWidth of 0 sizes it to the longest line.
func NewLazy(canvasWidth int, load LoadFunc) Model {
	return Model{canvasWidth: canvasWidth, load: load, loading: load != nil}
}

// Widget returns the current widget, nil before the first load.
func (m Model) Widget() *canvas.Widget {
	return m.widget
}

func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return nil
	}
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		lines, err := load()
		return contentMsg{lines: lines, err: err}
	}
}

// Err returns the last load error.
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.load != nil && !m.loading {
				m.loading = true
				return m, m.loadCmd()
			}
		}

	case contentMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			break
		}
		if m.widget == nil {
			width := m.canvasWidth
			if width <= 0 {
				width = types.MaxWidth(msg.lines)
			}
			m.widget = canvas.NewWidget(msg.lines, width)
		} else {
			m.widget.SetContent(msg.lines)
		}
	}

	return m, nil
}

// geometry fits the widget's packed size into the window, keeping the
// last row for the status line.
func (m Model) geometry() canvas.Geometry {
	cols, rows := m.widget.Pack()
	if m.width > 0 && cols > m.width {
		cols = m.width
	}
	if m.height > 0 && rows > m.height-1 {
		rows = max(m.height-1, 0)
	}
	return canvas.Geometry{Cols: cols, Rows: rows}
}

func (m Model) View() string {
	if m.widget == nil {
		return statusStyle.Render(m.status())
	}

	g := m.geometry()

	lines, err := m.widget.RenderCells(g)
	if err != nil {
		return err.Error()
	}

	clip := lipgloss.NewStyle().MaxWidth(g.Cols)

	var sb strings.Builder
	for _, line := range lines {
		var row strings.Builder
		for _, span := range line {
			row.WriteString(SpanStyle(span.Style).Render(string(span.Text)))
		}
		sb.WriteString(clip.Render(row.String()))
		sb.WriteByte('\n')
	}

	sb.WriteString(statusStyle.Render(m.status()))
	return sb.String()
}

func (m Model) status() string {
	switch {
	case m.loading:
		return "loading..."
	case m.err != nil:
		return "error: " + strings.ReplaceAll(m.err.Error(), "\n", " ")
	default:
		return "q quit · r reload"
	}
}

// SpanStyle maps a palette style to lipgloss using ANSI color numbers.
func SpanStyle(s types.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if idx, ok := s.Fg.Index(); ok {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(int(idx))))
	}
	if idx, ok := s.Bg.Index(); ok {
		style = style.Background(lipgloss.Color(strconv.Itoa(int(idx))))
	}
	return style
}
