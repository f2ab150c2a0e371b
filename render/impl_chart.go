// SPDX-License-Identifier: MIT
// Package: lvplot/render
//
// impl_chart.go — web-embeddable output through go-chart.
//
// The gonum path produces the textbook-style static images; this path
// produces the lightweight SVG/PNG the site embeds next to a slider, where
// the figure is redrawn on every change. Cosmetics map as closely as go-chart
// allows: fixed ranges and ticks, grid lines at every tick, zero axes drawn
// as emphasized grid lines (so they do not show up in the legend).
// go-chart does not clip to the plot area, so y values outside the y range
// are pinned to its edge.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/katalvlaran/lvplot/curve"
)

// ChartFormat selects the go-chart renderer.
type ChartFormat int

const (
	// ChartSVG renders an SVG document suitable for inline embedding.
	ChartSVG ChartFormat = iota
	// ChartPNG renders a PNG at the figure's DPI.
	ChartPNG
)

// String returns the file extension of the format.
func (c ChartFormat) String() string {
	switch c {
	case ChartSVG:
		return FormatSVG
	case ChartPNG:
		return FormatPNG
	default:
		return "unknown"
	}
}

// Chart builds the go-chart description of the figure.
func (f *Figure) Chart() (chart.Chart, error) {
	if f == nil {
		return chart.Chart{}, ErrNilFigure
	}
	cfg, st := f.cfg, f.style
	wIn, hIn := f.canvasSize()

	grid := chart.Style{
		StrokeColor: toDrawing(st.GridNRGBA()),
		StrokeWidth: st.GridLineWidth,
	}
	zero := chart.Style{
		StrokeColor: toDrawing(st.ZeroAxisNRGBA()),
		StrokeWidth: st.ZeroAxisWidth,
	}
	xTicks := curve.Ticks(cfg.XRange, cfg.TickStep)
	yTicks := curve.Ticks(cfg.YRange, cfg.TickStep)

	graph := chart.Chart{
		Title:      cfg.Title,
		TitleStyle: chart.Style{FontSize: st.TitleSize},
		Width:      int(math.Round(wIn * cfg.DPI)),
		Height:     int(math.Round(hIn * cfg.DPI)),
		DPI:        cfg.DPI,
		XAxis: chart.XAxis{
			Name:           cfg.XLabel,
			NameStyle:      chart.Style{FontSize: st.LabelSize},
			Style:          chart.Style{FontSize: st.TickLabelSize, StrokeWidth: st.AxesLineWidth},
			Range:          &chart.ContinuousRange{Min: cfg.XRange.Min, Max: cfg.XRange.Max},
			Ticks:          chartTicks(xTicks),
			GridMajorStyle: grid,
			GridLines:      gridLines(xTicks, st.Grid, cfg.XRange, zero),
		},
		YAxis: chart.YAxis{
			Name:           cfg.YLabel,
			NameStyle:      chart.Style{FontSize: st.LabelSize},
			Style:          chart.Style{FontSize: st.TickLabelSize, StrokeWidth: st.AxesLineWidth},
			Range:          &chart.ContinuousRange{Min: cfg.YRange.Min, Max: cfg.YRange.Max},
			Ticks:          chartTicks(yTicks),
			GridMajorStyle: grid,
			GridLines:      gridLines(yTicks, st.Grid, cfg.YRange, zero),
		},
	}

	for i, s := range f.series {
		c, err := curve.ParseColor(s.Color)
		if err != nil {
			return chart.Chart{}, fmt.Errorf("Chart: series %d: %w", i, err)
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: append([]float64(nil), s.X...),
			YValues: clampAll(s.Y, cfg.YRange),
			Style: chart.Style{
				StrokeColor: toDrawing(c),
				StrokeWidth: s.LineWidth,
			},
		})
	}

	if cfg.Legend != curve.LegendNone {
		legendStyle := chart.Style{FontSize: st.LegendFontSize}
		if cfg.Legend.Left() {
			graph.Elements = []chart.Renderable{chart.LegendLeft(&graph, legendStyle)}
		} else {
			graph.Elements = []chart.Renderable{chart.Legend(&graph, legendStyle)}
		}
	}

	return graph, nil
}

// WriteChart renders the figure with go-chart and writes it to w.
func (f *Figure) WriteChart(w io.Writer, format ChartFormat) error {
	graph, err := f.Chart()
	if err != nil {
		return err
	}
	var provider chart.RendererProvider
	switch format {
	case ChartSVG:
		provider = chart.SVG
	case ChartPNG:
		provider = chart.PNG
	default:
		return fmt.Errorf("WriteChart(%d): %w", int(format), ErrUnsupportedFormat)
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("WriteChart(%s): %w", format, err)
	}

	return nil
}

// gridLines returns one grid line per tick (when the grid is on) plus an
// emphasized line at zero when zero is in range.
func gridLines(ticks []float64, on bool, r curve.Range, zero chart.Style) []chart.GridLine {
	var lines []chart.GridLine
	for _, v := range ticks {
		if v == 0 && r.Contains(0) {
			continue
		}
		if on {
			lines = append(lines, chart.GridLine{Value: v})
		}
	}
	if r.Contains(0) && zero.StrokeWidth > 0 {
		lines = append(lines, chart.GridLine{Value: 0, Style: zero})
	}

	return lines
}

func clampAll(ys []float64, r curve.Range) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[i] = math.Min(math.Max(y, r.Min), r.Max)
	}

	return out
}

func chartTicks(values []float64) []chart.Tick {
	out := make([]chart.Tick, len(values))
	for i, v := range values {
		out[i] = chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}

	return out
}

// toDrawing copies a non-premultiplied color; drawing.Color is
// non-premultiplied as well.
func toDrawing(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
