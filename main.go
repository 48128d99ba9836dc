package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/badele/ansicanvas/internal/config"
	"github.com/badele/ansicanvas/internal/converter"
	"github.com/badele/ansicanvas/internal/importer/ansi"
	"github.com/badele/ansicanvas/internal/types"
	"github.com/badele/ansicanvas/pkg/ansicanvas"
)

type CLI struct {
	Config      string `help:"TOML config file (default: user config dir)." type:"path" placeholder:"FILE"`
	Debug       bool   `short:"d" help:"Write a debug log to logs/ansicanvas.log."`
	Host        string `help:"Viewer host: tcell or tea (default from config)." placeholder:"HOST"`
	CanvasWidth int    `name:"canvas-width" help:"Fixed canvas width in columns (0 = longest line)."`

	Dump   bool `help:"Print the canvas to stdout instead of opening a viewer."`
	Color  bool `help:"With --dump, keep colors as ANSI sequences."`
	Inline bool `help:"With --dump, print all canvas rows on a single line."`
	Table  bool `short:"t" help:"Print decoded spans in table format."`
	Stats  bool `short:"s" help:"Print color usage statistics."`
	JSON   bool `name:"json" short:"j" help:"Print decoded spans and statistics in JSON format."`

	Image ImageCmd `cmd:"" help:"Convert an image with chafa and display it."`
	File  FileCmd  `cmd:"" help:"Display a file of ANSI colored text (stdin when no file)."`

	cfg config.Config
}

type ImageCmd struct {
	Path      string `arg:"" help:"Image file."`
	Width     string `short:"W" help:"Output width in columns."`
	Height    string `short:"H" help:"Output height in rows."`
	Converter string `help:"Converter binary (default from config, then chafa)."`
}

type FileCmd struct {
	Path     string `arg:"" optional:"" help:"ANSI file."`
	Encoding string `short:"e" help:"Source encoding: utf8, cp437, cp850, iso-8859-1."`
}

// loadFunc produces decoded content. Viewers call it off the render path.
type loadFunc func() (*ansi.Decoder, []types.Line, error)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ansicanvas"),
		kong.Description("Display ANSI colored text, or images converted with chafa, as a fixed size canvas."),
		kong.UsageOnError(),
	)

	var logFile io.Closer
	if f := setupLogging(cli.Debug); f != nil {
		logFile = f
	}

	err := runAndClose(func() error { return ctx.Run(&cli) }, logFile)
	ctx.FatalIfErrorf(err)
}

// runAndClose runs fn and closes c afterwards. FatalIfErrorf exits without
// running deferred calls, so the log is closed here.
func runAndClose(fn func() error, c io.Closer) error {
	err := fn()
	if c != nil {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing log file: %w", cerr)
		}
	}
	return err
}

// AfterApply loads the config file and lets flags override it.
func (c *CLI) AfterApply() error {
	path := c.Config
	required := path != ""
	if !required {
		p, err := config.DefaultPath()
		if err != nil {
			c.cfg = config.Default()
			return nil
		}
		path = p
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}

	if c.Host != "" {
		cfg.Host = c.Host
	}
	if c.CanvasWidth != 0 {
		cfg.CanvasWidth = c.CanvasWidth
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	return nil
}

func (cmd *ImageCmd) Run(cli *CLI) error {
	binary := cmd.Converter
	if binary == "" {
		binary = cli.cfg.Converter
	}

	req := converter.Request{
		Path:   cmd.Path,
		Width:  firstNonEmpty(cmd.Width, cli.cfg.Width),
		Height: firstNonEmpty(cmd.Height, cli.cfg.Height),
	}

	// Report size errors before anything is started.
	if _, err := converter.SizeFlag(req.Width, req.Height); err != nil {
		return err
	}

	conv := converter.New(binary)
	load := func() (*ansi.Decoder, []types.Line, error) {
		text, err := conv.Render(context.Background(), req)
		if err != nil {
			return nil, nil, err
		}
		return decode([]byte(text))
	}

	return cli.show(load, imageCanvasWidth(cli.cfg.CanvasWidth, req.Width))
}

func (cmd *FileCmd) Run(cli *CLI) error {
	encoding := firstNonEmpty(cmd.Encoding, cli.cfg.Encoding)

	load := func() (*ansi.Decoder, []types.Line, error) {
		data, err := readInput(cmd.Path)
		if err != nil {
			return nil, nil, err
		}

		data, err = ansicanvas.ConvertToUTF8(data, encoding)
		if err != nil {
			return nil, nil, err
		}

		return decode(data)
	}

	return cli.show(load, cli.cfg.CanvasWidth)
}

func readInput(path string) ([]byte, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading file: %w", err)
		}
		return data, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("error checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no file given and stdin is not a pipe")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("error reading from stdin: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*ansi.Decoder, []types.Line, error) {
	d := ansicanvas.NewDecoder(ansicanvas.NormalizeInput(data))
	spans, err := d.Decode()
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding: %w", err)
	}
	return d, types.SplitLines(spans), nil
}

// show runs the batch outputs synchronously, or hands load to a viewer.
func (c *CLI) show(load loadFunc, width int) error {
	if c.Dump || c.Table || c.Stats || c.JSON {
		d, lines, err := load()
		if err != nil {
			return err
		}
		return printBatch(os.Stdout, c, d, lines, width)
	}

	switch c.cfg.Host {
	case config.HostTea:
		return runTeaViewer(load, width)
	default:
		return runTcellViewer(load, width)
	}
}

// imageCanvasWidth sizes the canvas before the image arrives. chafa fills
// the requested width, so it stands in when no canvas width is configured.
func imageCanvasWidth(configured int, requested string) int {
	if configured != 0 || requested == "" {
		return configured
	}

	width, err := strconv.Atoi(strings.TrimSpace(requested))
	if err != nil || width < 0 {
		return 0
	}
	return width
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
