package style_test

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvplot/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault pins the site's house style.
func TestDefault(t *testing.T) {
	s := style.Default()
	assert.Equal(t, 150.0, s.DPI)
	assert.True(t, s.Grid)
	assert.Equal(t, 0.3, s.GridAlpha)
	assert.Equal(t, 0.8, s.LineWidth)
	assert.Equal(t, 0.5, s.AxesLineWidth)
	assert.Equal(t, 0.8, s.ZeroAxisWidth)
	assert.Equal(t, 10.0, s.LabelSize)
	assert.Equal(t, 12.0, s.TitleSize)
	assert.Equal(t, 6.0, s.TickLabelSize)
	assert.Equal(t, 5.0, s.LegendFontSize)
	require.NoError(t, s.Validate())
}

// TestOptions_Order: later options win and the receiver is not mutated.
func TestOptions_Order(t *testing.T) {
	s := style.New(style.WithDPI(72), style.WithDPI(300), style.WithGrid(false))
	assert.Equal(t, 300.0, s.DPI)
	assert.False(t, s.Grid)

	base := style.Default()
	derived := base.With(style.WithLineWidth(2), style.WithZeroAxis("r", 1.5))
	assert.Equal(t, 0.8, base.LineWidth)
	assert.Equal(t, 2.0, derived.LineWidth)
	assert.Equal(t, "r", derived.ZeroAxisColor)
	assert.Equal(t, 1.5, derived.ZeroAxisWidth)

	f := style.New(style.WithFontSizes(14, 11, 7, 6), style.WithAxesLineWidth(1), style.WithGridAlpha(0.5))
	assert.Equal(t, 14.0, f.TitleSize)
	assert.Equal(t, 6.0, f.LegendFontSize)
	assert.Equal(t, 1.0, f.AxesLineWidth)
	assert.Equal(t, 0.5, f.GridAlpha)
}

// TestOptions_Panic: option constructors reject meaningless values.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { style.WithDPI(0) })
	assert.Panics(t, func() { style.WithGridAlpha(1.5) })
	assert.Panics(t, func() { style.WithLineWidth(-1) })
	assert.Panics(t, func() { style.WithAxesLineWidth(-1) })
	assert.Panics(t, func() { style.WithZeroAxis("k", -1) })
	assert.Panics(t, func() { style.WithFontSizes(1, 1, 0, 1) })
}

func TestColors(t *testing.T) {
	s := style.Default()
	assert.Equal(t, color.NRGBA{A: 255}, s.ZeroAxisNRGBA())

	// alpha scales only A; the channels stay at the parsed #b0b0b0
	g := s.GridNRGBA()
	assert.InDelta(t, 77, float64(g.A), 1)
	assert.Equal(t, uint8(0xb0), g.R)
	assert.Equal(t, uint8(0xb0), g.B)

	opaque := s.With(style.WithGridAlpha(1))
	assert.Equal(t, color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 255}, opaque.GridNRGBA())
	assert.Equal(t, color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0}, s.With(style.WithGridAlpha(0)).GridNRGBA())
}

// TestDecode_Partial: absent keys keep defaults.
func TestDecode_Partial(t *testing.T) {
	doc := `
dpi = 300.0
grid_alpha = 0.2
zero_axis_color = "#333333"
`
	s, err := style.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 300.0, s.DPI)
	assert.Equal(t, 0.2, s.GridAlpha)
	assert.Equal(t, "#333333", s.ZeroAxisColor)
	assert.Equal(t, 12.0, s.TitleSize)
	assert.True(t, s.Grid)
}

// TestDecode_Errors covers syntax, unknown keys and invalid values.
func TestDecode_Errors(t *testing.T) {
	_, err := style.Decode(strings.NewReader("dpi = "))
	assert.Error(t, err)

	_, err = style.Decode(strings.NewReader("dpii = 3"))
	assert.ErrorIs(t, err, style.ErrInvalidStyle)

	for _, doc := range []string{
		"dpi = 0.0",
		"grid_alpha = 2.0",
		"linewidth = -1.0",
		`grid_color = "nope"`,
		`zero_axis_color = "#12"`,
		"legend_font_size = 0.0",
	} {
		_, err := style.Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, style.ErrInvalidStyle, doc)
	}
}

// TestEncodeDecode_File writes the default style to disk and loads it back.
func TestEncodeDecode_File(t *testing.T) {
	want := style.New(style.WithDPI(96), style.WithGrid(false))
	var buf bytes.Buffer
	require.NoError(t, style.Encode(&buf, want))

	path := filepath.Join(t.TempDir(), "style.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := style.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = style.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
