package render_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/render"
	"github.com/katalvlaran/lvplot/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parabolaConfig() curve.PlotConfig {
	return curve.PlotConfig{
		XRange:     curve.Range{Min: -10, Max: 10},
		YRange:     curve.Range{Min: -10, Max: 10},
		TickStep:   2,
		Title:      "Width and Orientation",
		XLabel:     "x",
		YLabel:     "y",
		FigureSize: curve.SizeFromAspect(4, 0.7),
		DPI:        150,
		Legend:     curve.LegendLowerLeft,
	}
}

func quad(a float64, label, color string) curve.CurveSpec {
	return curve.NewCurveSpec(curve.Quadratic, curve.Params{curve.ParamA: a}, label, color, 0.8)
}

func widthAndOrientation() []curve.CurveSpec {
	return []curve.CurveSpec{
		quad(1, "y = x²", "b"),
		quad(2, "y = 2x²", "r"),
		quad(-0.5, "y = -0.5x²", "g"),
	}
}

// TestRender_SeriesCount: one series per curve.
func TestRender_SeriesCount(t *testing.T) {
	for n := 1; n <= 3; n++ {
		fig, err := render.Render(parabolaConfig(), widthAndOrientation()[:n], 50)
		require.NoError(t, err)
		assert.Equal(t, n, fig.Len())
		assert.Len(t, fig.Series(), n)
	}
}

// TestRender_SquareValues: 200 points, y_i = x_i².
func TestRender_SquareValues(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), []curve.CurveSpec{quad(1, "y=x²", "b")}, 200)
	require.NoError(t, err)
	s := fig.Series()[0]
	require.Equal(t, 200, s.Len())
	assert.Equal(t, -10.0, s.X[0])
	assert.Equal(t, 10.0, s.X[199])
	for i, x := range s.X {
		assert.Equal(t, x*x, s.Y[i])
	}
	assert.Equal(t, "y=x²", s.Label)
	assert.Equal(t, 0.8, s.LineWidth)
}

// TestRender_WidthAndOrientationExtents: max/min at x = ±10.
func TestRender_WidthAndOrientationExtents(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 200)
	require.NoError(t, err)
	series := fig.Series()

	_, max0 := series[0].Extent()
	_, max1 := series[1].Extent()
	min2, _ := series[2].Extent()
	assert.Equal(t, 100.0, max0)
	assert.Equal(t, 200.0, max1)
	assert.Equal(t, -50.0, min2)
}

// TestRender_Deterministic: same inputs, same samples.
func TestRender_Deterministic(t *testing.T) {
	a, err := render.Render(parabolaConfig(), widthAndOrientation(), 137)
	require.NoError(t, err)
	b, err := render.Render(parabolaConfig(), widthAndOrientation(), 137)
	require.NoError(t, err)
	assert.Equal(t, a.Series(), b.Series())
}

// TestRender_SingleSample: n == 1 is valid and yields one point at XRange.Min.
func TestRender_SingleSample(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 1)
	require.NoError(t, err)
	for _, s := range fig.Series() {
		require.Equal(t, 1, s.Len())
		assert.Equal(t, -10.0, s.X[0])
	}
	var buf bytes.Buffer
	_, err = fig.WriteTo(&buf, "svg")
	require.NoError(t, err)
}

// TestRender_ConfigErrors: every configuration error is reported up front.
func TestRender_ConfigErrors(t *testing.T) {
	inverted := parabolaConfig()
	inverted.XRange = curve.Range{Min: 10, Max: -10}
	flat := parabolaConfig()
	flat.YRange = curve.Range{Min: 3, Max: 3}

	cases := []struct {
		name   string
		cfg    curve.PlotConfig
		curves []curve.CurveSpec
		n      int
		want   error
	}{
		{"empty curves", parabolaConfig(), nil, 200, curve.ErrNoCurves},
		{"zero samples", parabolaConfig(), widthAndOrientation(), 0, curve.ErrBadSampleCount},
		{"negative samples", parabolaConfig(), widthAndOrientation(), -1, curve.ErrBadSampleCount},
		{"inverted x", inverted, widthAndOrientation(), 10, curve.ErrBadRange},
		{"zero-width y", flat, widthAndOrientation(), 10, curve.ErrBadRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fig, err := render.Render(tc.cfg, tc.curves, tc.n)
			assert.Nil(t, fig)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, strings.HasPrefix(err.Error(), "Render:"), err.Error())
		})
	}

	bad := style.Default()
	bad.DPI = -1
	_, err := render.Render(parabolaConfig(), widthAndOrientation(), 10, render.WithStyle(bad))
	assert.ErrorIs(t, err, style.ErrInvalidStyle)
}

// TestRender_DPIFromStyle: DPI 0 falls back to the style.
func TestRender_DPIFromStyle(t *testing.T) {
	cfg := parabolaConfig()
	cfg.DPI = 0
	fig, err := render.Render(cfg, widthAndOrientation(), 10, render.WithStyle(style.New(style.WithDPI(72))))
	require.NoError(t, err)
	assert.Equal(t, 72.0, fig.Config().DPI)
	assert.Equal(t, 72.0, fig.Style().DPI)
	assert.Equal(t, 10, fig.SampleCount())
}

// TestRender_DefaultLineWidth: width 0 resolves to the style's line width.
func TestRender_DefaultLineWidth(t *testing.T) {
	spec := curve.NewCurveSpec(curve.Quadratic, curve.Params{"a": 1}, "x²", "b", 0)
	fig, err := render.Render(parabolaConfig(), []curve.CurveSpec{spec}, 5,
		render.WithStyle(style.New(style.WithLineWidth(1.7))))
	require.NoError(t, err)
	assert.Equal(t, 1.7, fig.Series()[0].LineWidth)
}

// TestRender_Isolation: mutating inputs or returned series after Render does
// not change the figure.
func TestRender_Isolation(t *testing.T) {
	params := curve.Params{"a": 1}
	curves := []curve.CurveSpec{{Formula: curve.Quadratic, Params: params, Label: "x²", Color: "b"}}
	fig, err := render.Render(parabolaConfig(), curves, 3)
	require.NoError(t, err)

	params["a"] = 50
	curves[0].Label = "changed"
	got := fig.Series()
	got[0].Y[0] = -1

	s := fig.Series()[0]
	assert.Equal(t, 100.0, s.Y[0])
	assert.Equal(t, "x²", s.Label)
	c, err := fig.Curve(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Params.Get("a"))
}

// TestFigure_ReplaceCurve replaces one series in place.
func TestFigure_ReplaceCurve(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 21)
	require.NoError(t, err)
	before := fig.Series()

	require.NoError(t, fig.ReplaceCurve(1, quad(3, "y = 3x²", "r")))
	after := fig.Series()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, "y = 3x²", after[1].Label)
	assert.Equal(t, 300.0, after[1].Y[0])
	assert.Equal(t, before[1].X, after[1].X)

	assert.ErrorIs(t, fig.ReplaceCurve(3, quad(1, "", "b")), render.ErrBadIndex)
	assert.ErrorIs(t, fig.ReplaceCurve(-1, quad(1, "", "b")), render.ErrBadIndex)
	assert.ErrorIs(t, fig.ReplaceCurve(0, curve.CurveSpec{}), curve.ErrNilFormula)
	_, err = fig.Curve(7)
	assert.ErrorIs(t, err, render.ErrBadIndex)

	var nilFig *render.Figure
	assert.ErrorIs(t, nilFig.ReplaceCurve(0, quad(1, "", "b")), render.ErrNilFigure)
	assert.Equal(t, 0, nilFig.Len())
}

// TestFigure_SetTitle: later outputs use the new title.
func TestFigure_SetTitle(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 21)
	require.NoError(t, err)
	fig.SetTitle("Updated")
	assert.Equal(t, "Updated", fig.Config().Title)

	p, err := fig.Plot()
	require.NoError(t, err)
	assert.Equal(t, "Updated", p.Title.Text)
	c, err := fig.Chart()
	require.NoError(t, err)
	assert.Equal(t, "Updated", c.Title)

	var nilFig *render.Figure
	assert.NotPanics(t, func() { nilFig.SetTitle("x") })
}

// TestSeries_Extent handles empty series.
func TestSeries_Extent(t *testing.T) {
	lo, hi := render.Series{}.Extent()
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
}

// TestFigure_Plot checks the gonum plot mirrors the configuration.
func TestFigure_Plot(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 200)
	require.NoError(t, err)
	p, err := fig.Plot()
	require.NoError(t, err)

	assert.Equal(t, "Width and Orientation", p.Title.Text)
	assert.Equal(t, "x", p.X.Label.Text)
	assert.Equal(t, "y", p.Y.Label.Text)
	// 2x² reaches 200 and -0.5x² reaches -50; the axes stay at the configured ranges
	assert.Equal(t, -10.0, p.X.Min)
	assert.Equal(t, 10.0, p.X.Max)
	assert.Equal(t, -10.0, p.Y.Min)
	assert.Equal(t, 10.0, p.Y.Max)
	assert.False(t, p.Legend.Top)
	assert.True(t, p.Legend.Left)

	ticks := p.X.Tick.Marker.Ticks(-10, 10)
	require.Len(t, ticks, 11)
	assert.Equal(t, -10.0, ticks[0].Value)
	assert.Equal(t, "0", ticks[5].Label)
}

// TestFigure_PlotRejectsNaN surfaces gonum's NaN check as an error.
func TestFigure_PlotRejectsNaN(t *testing.T) {
	nan := curve.NewCurveSpec(func(float64, curve.Params) float64 { return math.NaN() }, nil, "nan", "b", 0)
	fig, err := render.Render(parabolaConfig(), []curve.CurveSpec{nan}, 3)
	require.NoError(t, err)
	_, err = fig.Plot()
	assert.Error(t, err)
}

// TestFigure_WriteTo renders each format to memory.
func TestFigure_WriteTo(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 200)
	require.NoError(t, err)

	signatures := map[string][]byte{
		"png": []byte("\x89PNG"),
		"pdf": []byte("%PDF"),
		"eps": []byte("%%!PS"),
		"jpg": {0xff, 0xd8},
	}
	for format, sig := range signatures {
		var buf bytes.Buffer
		n, err := fig.WriteTo(&buf, format)
		require.NoError(t, err, format)
		assert.Equal(t, int64(buf.Len()), n, format)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), sig), format)
	}

	var svg bytes.Buffer
	_, err = fig.WriteTo(&svg, "svg")
	require.NoError(t, err)
	assert.Contains(t, svg.String(), "<svg")

	_, err = fig.WriteTo(&bytes.Buffer{}, "bmp")
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
	assert.True(t, render.SupportedFormat(".JPEG"))
	assert.True(t, render.SupportedFormat("tiff"))
	assert.False(t, render.SupportedFormat("gif"))
}

// TestFigure_Save writes to disk; format follows the extension.
func TestFigure_Save(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 50)
	require.NoError(t, err)
	dir := t.TempDir()

	path := filepath.Join(dir, "wo.png")
	require.NoError(t, fig.Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	err = fig.Save(filepath.Join(dir, "wo.bmp"))
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)

	err = fig.Save(filepath.Join(dir, "missing", "wo.svg"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, render.ErrUnsupportedFormat))
}

// TestFigure_WriteChart renders the go-chart variants.
func TestFigure_WriteChart(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 200)
	require.NoError(t, err)

	var svg bytes.Buffer
	require.NoError(t, fig.WriteChart(&svg, render.ChartSVG))
	assert.Contains(t, svg.String(), "<svg")
	assert.Contains(t, svg.String(), "Width and Orientation")

	var png bytes.Buffer
	require.NoError(t, fig.WriteChart(&png, render.ChartPNG))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	assert.ErrorIs(t, fig.WriteChart(&bytes.Buffer{}, render.ChartFormat(9)), render.ErrUnsupportedFormat)
	assert.Equal(t, "svg", render.ChartSVG.String())
}

// TestFigure_Chart checks ranges, ticks and the y clamp of the go-chart model.
func TestFigure_Chart(t *testing.T) {
	fig, err := render.Render(parabolaConfig(), widthAndOrientation(), 200)
	require.NoError(t, err)
	c, err := fig.Chart()
	require.NoError(t, err)

	assert.Equal(t, 600, c.Width)
	assert.InDelta(t, 420, c.Height, 1)
	assert.Len(t, c.Series, 3)
	assert.Len(t, c.XAxis.Ticks, 11)
	assert.Equal(t, 10.0, c.YAxis.Range.GetMax())
	assert.Len(t, c.Elements, 1)

	// grid color is #b0b0b0 at alpha 0.3, not darkened by premultiplication
	g := c.XAxis.GridMajorStyle.StrokeColor
	assert.Equal(t, uint8(0xb0), g.R)
	assert.InDelta(t, 77, float64(g.A), 1)
}

// TestFigure_ChartRoundsPixels rounds inches·dpi instead of truncating.
func TestFigure_ChartRoundsPixels(t *testing.T) {
	cfg := parabolaConfig()
	cfg.DPI = 99.9
	fig, err := render.Render(cfg, widthAndOrientation(), 10)
	require.NoError(t, err)
	c, err := fig.Chart()
	require.NoError(t, err)
	assert.Equal(t, 400, c.Width)
	assert.Equal(t, 280, c.Height)
}

// TestFigure_EqualAspect derives the canvas height from the data ranges.
func TestFigure_EqualAspect(t *testing.T) {
	cfg := parabolaConfig()
	cfg.EqualAspect = true
	cfg.YRange = curve.Range{Min: -5, Max: 5}
	fig, err := render.Render(cfg, widthAndOrientation(), 10)
	require.NoError(t, err)
	c, err := fig.Chart()
	require.NoError(t, err)
	assert.Equal(t, 600, c.Width)
	assert.Equal(t, 300, c.Height)
}
