// Package converter runs an external image to ANSI converter (chafa) and
// returns its raw output.
package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultBinary is the converter looked up in PATH when none is configured.
const DefaultBinary = "chafa"

var (
	// ErrConfigFormat is returned before any process is started when a
	// width or height is not a positive integer.
	ErrConfigFormat = errors.New("invalid converter size")

	// ErrConverterNotFound is returned when the binary cannot be located
	// or executed.
	ErrConverterNotFound = errors.New("converter not found")

	// ErrConverterFailed is returned when the converter exits non-zero.
	ErrConverterFailed = errors.New("converter failed")
)

// ConfigError reports an unusable width or height.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %q is not a positive integer", e.Field, e.Value)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigFormat
}

/////////////////////////////////////////////////////////////////////////////
// INVOCATION ERRORS
/////////////////////////////////////////////////////////////////////////////

type Kind int

const (
	NotFound Kind = iota
	Failed
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// InvocationError is a converter run that produced no image. Diagnostic
// holds the captured output of a failed run; it is empty for NotFound.
type InvocationError struct {
	Kind       Kind
	Args       []string
	ExitCode   int
	Diagnostic string
	Err        error
}

func (e *InvocationError) Error() string {
	switch e.Kind {
	case NotFound:
		return fmt.Sprintf("converter %s: %v", e.Args[0], e.Err)
	default:
		return fmt.Sprintf("converter %s exited with status %d: %s",
			e.Args[0], e.ExitCode, strings.TrimSpace(e.Diagnostic))
	}
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

func (e *InvocationError) Is(target error) bool {
	switch e.Kind {
	case NotFound:
		return target == ErrConverterNotFound
	case Failed:
		return target == ErrConverterFailed
	}
	return false
}

/////////////////////////////////////////////////////////////////////////////
// CONVERTER
/////////////////////////////////////////////////////////////////////////////

// Request describes one image. Width and Height are optional, an empty
// string means "not given".
type Request struct {
	Path   string
	Width  string
	Height string
}

type Converter struct {
	Binary string
	Logger *log.Logger
}

// New returns a converter for binary, or DefaultBinary when empty. Logs
// go to the standard logger.
func New(binary string) *Converter {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Converter{Binary: binary, Logger: log.Default()}
}

// SizeFlag returns the --size value for the given dimensions, or "" when
// neither is given. Dimensions must be positive integers.
func SizeFlag(width, height string) (string, error) {
	w, hasWidth, err := parseDimension("width", width)
	if err != nil {
		return "", err
	}

	h, hasHeight, err := parseDimension("height", height)
	if err != nil {
		return "", err
	}

	switch {
	case hasWidth && hasHeight:
		return fmt.Sprintf("%dx%d", w, h), nil
	case hasWidth:
		return fmt.Sprintf("%dx", w), nil
	case hasHeight:
		return fmt.Sprintf("x%d", h), nil
	default:
		return "", nil
	}
}

func parseDimension(field, value string) (int, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false, &ConfigError{Field: field, Value: value}
	}

	return n, true, nil
}

// Command returns the argv for req:
//
//	<binary> -f symbols [--size <W>x<H>] <path>
func (c *Converter) Command(req Request) ([]string, error) {
	size, err := SizeFlag(req.Width, req.Height)
	if err != nil {
		return nil, err
	}

	args := []string{c.Binary, "-f", "symbols"}
	if size != "" {
		args = append(args, "--size", size)
	}
	args = append(args, req.Path)

	return args, nil
}

// Render runs the converter and returns its combined stdout and stderr
// untouched. It blocks until the process exits; use ctx to bound it.
func (c *Converter) Render(ctx context.Context, req Request) (string, error) {
	args, err := c.Command(req)
	if err != nil {
		return "", fmt.Errorf("converter: %w", err)
	}

	c.logf("command: %v", args)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", c.invocationError(args, output, err)
	}

	c.logf("ANSI text length: %d", len(output))

	return string(output), nil
}

func (c *Converter) invocationError(args []string, output []byte, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c.logf("converter failed (status %d): %s", exitErr.ExitCode(), output)
		return &InvocationError{
			Kind:       Failed,
			Args:       args,
			ExitCode:   exitErr.ExitCode(),
			Diagnostic: string(output),
			Err:        err,
		}
	}

	// The process never started: missing binary, no permission, bad format.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		c.logf("converter not found: %v", err)
	} else {
		c.logf("converter could not run: %v", err)
	}
	return &InvocationError{Kind: NotFound, Args: args, ExitCode: -1, Err: err}
}

func (c *Converter) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
