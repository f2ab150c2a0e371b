// SPDX-License-Identifier: MIT
// Package: lvplot/render
//
// figure.go — Render and the Figure handle.
//
// Contract:
//   • Render validates everything up front (curve.ValidateChart + Style.Validate)
//     and only then samples; an invalid request never allocates series.
//   • Each curve is sampled at sampleCount points over cfg.XRange (endpoints
//     included); the returned Figure holds exactly len(curves) series.
//   • A Figure never touches the filesystem by itself: Save/WriteTo/WriteChart
//     are explicit calls made by the owner.
//   • Determinism: equal inputs ⇒ bit-identical series.

package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/style"
)

// Series is one sampled curve, ready to draw.
type Series struct {
	Label     string
	Color     string
	LineWidth float64 // resolved: never 0 unless the style's default is 0
	X         []float64
	Y         []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }

// Extent returns the minimum and maximum sampled y values.
// An empty series yields (NaN, NaN).
func (s Series) Extent() (minY, maxY float64) {
	if len(s.Y) == 0 {
		return math.NaN(), math.NaN()
	}
	minY, maxY = s.Y[0], s.Y[0]
	for _, y := range s.Y[1:] {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	return minY, maxY
}

func (s Series) clone() Series {
	out := s
	out.X = append([]float64(nil), s.X...)
	out.Y = append([]float64(nil), s.Y...)

	return out
}

// Figure is a rendered chart: the configuration it was built from plus one
// sampled Series per curve. The caller owns it; drop it when done.
// A Figure is not safe for concurrent ReplaceCurve calls.
type Figure struct {
	cfg     curve.PlotConfig
	style   style.Style
	curves  []curve.CurveSpec
	xs      []float64
	samples int
	series  []Series
}

// Render samples every curve over cfg.XRange and returns the Figure.
//
// Errors (all wrapped with "Render: ..."):
//   - curve.ErrNoCurves       — len(curves) == 0
//   - curve.ErrBadSampleCount — sampleCount <= 0
//   - curve.ErrBadRange       — inverted or zero-width x or y range
//   - curve.ErrBadTickStep, curve.ErrBadFigure, curve.ErrNilFormula,
//     curve.ErrBadColor, curve.ErrBadLineWidth
//   - style.ErrInvalidStyle   — the style passed via WithStyle is unusable
//
// cfg.DPI == 0 means "use the style's DPI".
func Render(cfg curve.PlotConfig, curves []curve.CurveSpec, sampleCount int, opts ...Option) (*Figure, error) {
	rc := newRenderConfig(opts...)
	if err := rc.style.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", curve.MethodRender, err)
	}
	if cfg.DPI == 0 {
		cfg.DPI = rc.style.DPI
	}
	if err := curve.ValidateChart(cfg, curves, sampleCount); err != nil {
		return nil, err
	}

	xs, err := curve.Linspace(cfg.XRange.Min, cfg.XRange.Max, sampleCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", curve.MethodRender, err)
	}

	fig := &Figure{
		cfg:     cfg,
		style:   rc.style,
		curves:  make([]curve.CurveSpec, len(curves)),
		xs:      xs,
		samples: sampleCount,
		series:  make([]Series, len(curves)),
	}
	for i, c := range curves {
		fig.curves[i] = curve.NewCurveSpec(c.Formula, c.Params, c.Label, c.Color, c.LineWidth)
		fig.series[i] = fig.sample(fig.curves[i])
	}

	return fig, nil
}

// sample evaluates spec over the figure's x grid.
func (f *Figure) sample(spec curve.CurveSpec) Series {
	lw := spec.LineWidth
	if lw == 0 {
		lw = f.style.LineWidth
	}

	return Series{
		Label:     spec.Label,
		Color:     spec.Color,
		LineWidth: lw,
		X:         append([]float64(nil), f.xs...),
		Y:         curve.Sample(spec, f.xs),
	}
}

// Len returns the number of series (== number of curves rendered).
func (f *Figure) Len() int {
	if f == nil {
		return 0
	}

	return len(f.series)
}

// Series returns a deep copy of every sampled series, in curve order.
func (f *Figure) Series() []Series {
	if f == nil {
		return nil
	}
	out := make([]Series, len(f.series))
	for i, s := range f.series {
		out[i] = s.clone()
	}

	return out
}

// Curve returns a copy of the i-th CurveSpec.
func (f *Figure) Curve(i int) (curve.CurveSpec, error) {
	if f == nil {
		return curve.CurveSpec{}, ErrNilFigure
	}
	if i < 0 || i >= len(f.curves) {
		return curve.CurveSpec{}, fmt.Errorf("Curve(%d) of %d: %w", i, len(f.curves), ErrBadIndex)
	}
	c := f.curves[i]

	return curve.NewCurveSpec(c.Formula, c.Params, c.Label, c.Color, c.LineWidth), nil
}

// Config returns the (DPI-resolved) configuration the figure was built with.
func (f *Figure) Config() curve.PlotConfig { return f.cfg }

// Style returns the style the figure was built with.
func (f *Figure) Style() style.Style { return f.style }

// SetTitle replaces the chart title; every later Plot/Chart/WriteTo uses it.
func (f *Figure) SetTitle(title string) {
	if f == nil {
		return
	}
	f.cfg.Title = title
}

// SampleCount returns the number of points per series.
func (f *Figure) SampleCount() int { return f.samples }

// ReplaceCurve re-evaluates spec over the figure's x grid and replaces the
// i-th curve and its series in place. The other series are untouched.
func (f *Figure) ReplaceCurve(i int, spec curve.CurveSpec) error {
	if f == nil {
		return ErrNilFigure
	}
	if i < 0 || i >= len(f.curves) {
		return fmt.Errorf("ReplaceCurve(%d) of %d: %w", i, len(f.curves), ErrBadIndex)
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("ReplaceCurve(%d): %w", i, err)
	}
	spec = curve.NewCurveSpec(spec.Formula, spec.Params, spec.Label, spec.Color, spec.LineWidth)
	f.curves[i] = spec
	f.series[i] = f.sample(spec)

	return nil
}

// canvasSize returns the drawing size in inches. With EqualAspect the height
// is derived from the width so one x unit and one y unit span the same length.
func (f *Figure) canvasSize() (w, h float64) {
	w, h = f.cfg.FigureSize.Width, f.cfg.FigureSize.Height
	if f.cfg.EqualAspect {
		h = w * f.cfg.YRange.Span() / f.cfg.XRange.Span()
	}

	return w, h
}
