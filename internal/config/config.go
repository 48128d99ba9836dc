// Package config loads the optional ansicanvas TOML file.
//
// Example:
//
//	converter = "/usr/local/bin/chafa"
//	width = "80"
//	height = ""
//	canvas_width = 0
//	encoding = "utf8"
//	host = "tcell"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	HostTcell = "tcell"
	HostTea   = "tea"
)

// Config holds the defaults the command line can override. Width and
// Height stay strings: they are validated by the converter, not here.
type Config struct {
	Converter   string `toml:"converter"`
	Width       string `toml:"width"`
	Height      string `toml:"height"`
	CanvasWidth int    `toml:"canvas_width"`
	Encoding    string `toml:"encoding"`
	Host        string `toml:"host"`
}

func Default() Config {
	return Config{
		Converter: "chafa",
		Encoding:  "utf8",
		Host:      HostTcell,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ansicanvas/config.toml (or the OS
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ansicanvas", "config.toml"), nil
}

// Load reads path on top of the defaults. A missing file is not an error
// unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.CanvasWidth < 0 {
		return fmt.Errorf("canvas_width must not be negative, got %d", c.CanvasWidth)
	}

	switch c.Host {
	case HostTcell, HostTea:
	default:
		return fmt.Errorf("unsupported host: %s", c.Host)
	}

	return nil
}
