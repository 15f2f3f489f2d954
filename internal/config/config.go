// Package config loads the whiteboard's startup settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window  Window  `toml:"window"`
	Drawing Drawing `toml:"drawing"`
	Log     Log     `toml:"log"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Drawing holds the initial sidebar values. Colors are hex strings
// (#rrggbb or #rrggbbaa).
type Drawing struct {
	Tool       string  `toml:"tool"`
	Color      string  `toml:"color"`
	Background string  `toml:"background"`
	BrushSize  uint    `toml:"brush_size"`
	EraserSize uint    `toml:"eraser_size"`
	Page       string  `toml:"page"`
	SnapToGrid bool    `toml:"snap_to_grid"`
	GridStep   float64 `toml:"grid_step"`
}

type Log struct {
	Level string `toml:"level"`
}

// Limits of the sidebar sliders.
const (
	MinBrushSize  = 1
	MaxBrushSize  = 20
	MinEraserSize = 5
	MaxEraserSize = 50
)

func Default() Config {
	return Config{
		Window: Window{
			Title:  "SketchBoard",
			Width:  1000,
			Height: 700,
		},
		Drawing: Drawing{
			Tool:       state.ToolPen.String(),
			Color:      state.Black.Hex(),
			Background: state.White.Hex(),
			BrushSize:  3,
			EraserSize: 10,
			Page:       state.PagePlain.String(),
			GridStep:   30,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// keys the file sets replace the default values, everything else is kept.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("config file not found, using defaults", "component", "config", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key ignored", "component", "config", "key", key.String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and that every string value parses.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := c.Settings(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Settings converts the drawing section into surface settings.
func (c Config) Settings() (surface.Settings, error) {
	d := c.Drawing
	tool, err := state.ParseTool(d.Tool)
	if err != nil {
		return surface.Settings{}, fmt.Errorf("%w: drawing.tool: %w", ErrInvalid, err)
	}
	fg, err := state.ParseHexColor(d.Color)
	if err != nil {
		return surface.Settings{}, fmt.Errorf("%w: drawing.color: %w", ErrInvalid, err)
	}
	bg, err := state.ParseHexColor(d.Background)
	if err != nil {
		return surface.Settings{}, fmt.Errorf("%w: drawing.background: %w", ErrInvalid, err)
	}
	if d.BrushSize < MinBrushSize || d.BrushSize > MaxBrushSize {
		return surface.Settings{}, fmt.Errorf("%w: drawing.brush_size %d outside [%d, %d]",
			ErrInvalid, d.BrushSize, MinBrushSize, MaxBrushSize)
	}
	if d.EraserSize < MinEraserSize || d.EraserSize > MaxEraserSize {
		return surface.Settings{}, fmt.Errorf("%w: drawing.eraser_size %d outside [%d, %d]",
			ErrInvalid, d.EraserSize, MinEraserSize, MaxEraserSize)
	}
	page, err := state.ParsePage(d.Page)
	if err != nil {
		return surface.Settings{}, fmt.Errorf("%w: drawing.page: %w", ErrInvalid, err)
	}
	if d.GridStep <= 0 {
		return surface.Settings{}, fmt.Errorf("%w: drawing.grid_step must be positive", ErrInvalid)
	}

	return surface.Settings{
		Tool:       tool,
		Color:      fg,
		Background: bg,
		BrushSize:  d.BrushSize,
		EraserSize: d.EraserSize,
		Page:       page,
		SnapToGrid: d.SnapToGrid,
		GridStep:   d.GridStep,
	}, nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}
	return level, nil
}

// Path returns the default config location, $XDG_CONFIG_HOME/sketchboard/config.toml.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sketchboard", "config.toml")
}
