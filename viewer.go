package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/badele/ansicanvas/internal/canvas"
	"github.com/badele/ansicanvas/internal/teahost"
	"github.com/badele/ansicanvas/internal/types"
)

// loadResult travels from the loader goroutine to the event loop inside a
// tcell interrupt event.
type loadResult struct {
	lines []types.Line
	err   error
}

///////////////////////////////////////////////////////////////////////////////
// tcell
///////////////////////////////////////////////////////////////////////////////

type tcellViewer struct {
	screen  tcell.Screen
	load    loadFunc
	width   int
	widget  *canvas.Widget
	loading bool
	err     error
}

func runTcellViewer(load loadFunc, width int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &tcellViewer{screen: screen, load: load, width: width}
	v.start()
	v.draw()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.draw()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return v.err
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && !v.loading {
				v.start()
				v.draw()
			}

		case *tcell.EventInterrupt:
			switch data := ev.Data().(type) {
			case loadResult:
				v.apply(data)
				v.draw()
			case nil:
				// Posted by the widget when its content changed.
				if v.widget != nil && v.widget.Stale() {
					v.draw()
				}
			}
		}
	}
}

// start runs the loader in the background. The converter blocks, so it
// never runs on the event loop.
func (v *tcellViewer) start() {
	v.loading = true
	go func() {
		_, lines, err := v.load()
		if err != nil {
			log.Printf("load failed: %v", err)
		}
		ev := tcell.NewEventInterrupt(loadResult{lines: lines, err: err})
		if err := postWithRetry(v.screen.PostEvent, ev, postAttempts, postDelay); err != nil {
			log.Printf("dropping load result: %v", err)
		}
	}()
}

const (
	postAttempts = 50
	postDelay    = 20 * time.Millisecond
)

// postWithRetry delivers ev, waiting for room while the event queue is full.
func postWithRetry(post func(tcell.Event) error, ev tcell.Event, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = post(ev); err == nil {
			return nil
		}
		time.Sleep(delay)
	}
	return fmt.Errorf("post event after %d attempts: %w", attempts, err)
}

func (v *tcellViewer) apply(res loadResult) {
	v.loading = false
	v.err = res.err
	if res.err != nil {
		return
	}

	if v.widget == nil {
		width := v.width
		if width <= 0 {
			width = types.MaxWidth(res.lines)
		}
		v.widget = canvas.NewWidget(res.lines, width)
		v.widget.OnInvalidate(canvas.PostRedraw(v.screen))
		return
	}

	v.widget.SetContent(res.lines)
}

func (v *tcellViewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	if v.widget != nil && h > 1 {
		cols, rows := v.widget.Pack()
		g := canvas.Geometry{Cols: min(cols, w), Rows: min(rows, h-1)}
		if err := v.widget.Draw(v.screen, 0, 0, g); err != nil {
			log.Printf("draw: %v", err)
		}
	}

	drawText(v.screen, 0, h-1, w, v.status(), tcell.StyleDefault.Dim(true))
	v.screen.Show()
}

func (v *tcellViewer) status() string {
	switch {
	case v.loading:
		return "loading..."
	case v.err != nil:
		return "error: " + strings.ReplaceAll(v.err.Error(), "\n", " ")
	default:
		return "q quit · r reload"
	}
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if col+width > maxWidth {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += width
	}
}

///////////////////////////////////////////////////////////////////////////////
// bubbletea
///////////////////////////////////////////////////////////////////////////////

func runTeaViewer(load loadFunc, width int) error {
	model := teahost.NewLazy(width, func() ([]types.Line, error) {
		_, lines, err := load()
		if err != nil {
			log.Printf("load failed: %v", err)
		}
		return lines, err
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	if m, ok := final.(teahost.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
