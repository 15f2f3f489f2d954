package state

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var (
	ErrColorOutOfRange = errors.New("color channel out of range")
	ErrUnknownTool     = errors.New("unknown tool")
	ErrUnknownPage     = errors.New("unknown page")
)

// Point is a position on the drawing surface.
type Point struct{ X, Y float64 }

// Color holds four channels in [0,1]. The zero value is transparent black.
type Color struct {
	R, G, B, A float64
}

// NewColor validates each channel and returns the color.
func NewColor(r, g, b, a float64) (Color, error) {
	for _, ch := range []float64{r, g, b, a} {
		if math.IsNaN(ch) || ch < 0 || ch > 1 {
			return Color{}, fmt.Errorf("%w: (%g, %g, %g, %g)", ErrColorOutOfRange, r, g, b, a)
		}
	}
	return Color{R: r, G: g, B: b, A: a}, nil
}

// MustColor is NewColor for literals known to be valid. It panics otherwise.
func MustColor(r, g, b, a float64) Color {
	c, err := NewColor(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	Black = MustColor(0, 0, 0, 1)
	White = MustColor(1, 1, 1, 1)
)

// FromColor converts a toolkit color (e.g. a picker result) to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// NRGBA converts to 8-bit non-premultiplied channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c Color) String() string { return c.Hex() }

// ParseHexColor accepts #rrggbb or #rrggbbaa, with or without the leading #.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromColor(color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}), nil
}

// Tool is the active drawing tool.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolLine
	ToolRectangle
	ToolCircle
)

var toolNames = [...]string{
	ToolPen:       "pen",
	ToolEraser:    "eraser",
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolCircle:    "circle",
}

// Tools returns every tool in sidebar order.
func Tools() []Tool {
	return []Tool{ToolPen, ToolEraser, ToolLine, ToolRectangle, ToolCircle}
}

func (t Tool) Valid() bool { return t >= ToolPen && t <= ToolCircle }

// IsShape reports whether the tool previews an anchored shape instead of
// stroking freehand.
func (t Tool) IsShape() bool {
	return t == ToolLine || t == ToolRectangle || t == ToolCircle
}

func (t Tool) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool maps a tool name to its Tool.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}
