package state

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		wantErr    bool
	}{
		{"black", 0, 0, 0, 1, false},
		{"white", 1, 1, 1, 1, false},
		{"transparent", 0, 0, 0, 0, false},
		{"negative red", -0.1, 0, 0, 1, true},
		{"green above one", 0, 1.01, 0, 1, true},
		{"nan blue", 0, 0, math.NaN(), 1, true},
		{"alpha above one", 0, 0, 0, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColor(tt.r, tt.g, tt.b, tt.a)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrColorOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Color{R: tt.r, G: tt.g, B: tt.b, A: tt.a}, c)
		})
	}
}

func TestMustColorPanics(t *testing.T) {
	assert.Panics(t, func() { MustColor(2, 0, 0, 1) })
}

func TestColorNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, MustColor(1, 0, 0, 1).NRGBA())
	assert.Equal(t, color.NRGBA{R: 102, G: 102, B: 102, A: 255}, MustColor(0.4, 0.4, 0.4, 1).NRGBA())
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, MustColor(1, 0, 0, 1), c)

	c, err = ParseHexColor("00ff0080")
	require.NoError(t, err)
	assert.Equal(t, "#00ff0080", c.Hex())

	for _, bad := range []string{"", "#fff", "#gg0000", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	assert.Equal(t, in, FromColor(in).NRGBA())
}

func TestTools(t *testing.T) {
	for _, tool := range Tools() {
		assert.True(t, tool.Valid())
		parsed, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, parsed)
	}

	assert.False(t, ToolPen.IsShape())
	assert.False(t, ToolEraser.IsShape())
	assert.True(t, ToolLine.IsShape())
	assert.True(t, ToolRectangle.IsShape())
	assert.True(t, ToolCircle.IsShape())

	_, err := ParseTool("spray")
	assert.ErrorIs(t, err, ErrUnknownTool)

	parsed, err := ParseTool(" Circle ")
	require.NoError(t, err)
	assert.Equal(t, ToolCircle, parsed)

	assert.False(t, Tool(42).Valid())
	assert.Equal(t, "Tool(42)", Tool(42).String())
}

func TestPalette(t *testing.T) {
	p := Palette()
	assert.Len(t, p, 6*PaletteColumns)
	assert.Equal(t, Black, p[0])
	assert.Equal(t, White, p[3])
}

func TestPages(t *testing.T) {
	for _, page := range Pages() {
		assert.True(t, page.Valid())
		parsed, err := ParsePage(page.String())
		require.NoError(t, err)
		assert.Equal(t, page, parsed)
	}

	assert.False(t, PagePlain.Snaps())
	assert.True(t, PageGrid.Snaps())
	assert.False(t, PageLined.Snaps())
	assert.True(t, PageDotted.Snaps())

	_, err := ParsePage("graph")
	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Equal(t, "Page(9)", Page(9).String())
}
