// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// types.go — CurveSpec, PlotConfig and the small value types they use.
//
// Design:
//   • Everything is passed by value; the only reference field (Params) is
//     copied on construction and on every With* call.
//   • Zero values are not valid charts; Validate reports what is missing.

package curve

import (
	"maps"
	"sort"
)

// Params are the named coefficients a Formula reads (e.g. "a", "h", "k",
// "zeta", "wn"). Missing keys read as zero through Get.
type Params map[string]float64

// Get returns the value stored under name, or 0 if absent.
func (p Params) Get(name string) float64 {
	return p[name]
}

// Clone returns an independent copy (nil stays nil).
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}

	return maps.Clone(p)
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Formula evaluates y = f(x; params).
type Formula func(x float64, p Params) float64

// CurveSpec is one plotted function plus its display styling.
type CurveSpec struct {
	Formula   Formula
	Params    Params
	Label     string  // legend text, verbatim
	Color     string  // matplotlib-style color, see ParseColor
	LineWidth float64 // points; 0 means "use the style default"
}

// NewCurveSpec builds a CurveSpec, copying params so later mutation of the
// caller's map cannot leak into an already-built chart.
func NewCurveSpec(f Formula, params Params, label, color string, lineWidth float64) CurveSpec {
	return CurveSpec{
		Formula:   f,
		Params:    params.Clone(),
		Label:     label,
		Color:     color,
		LineWidth: lineWidth,
	}
}

// WithParam returns a copy of c with params[name] = v.
func (c CurveSpec) WithParam(name string, v float64) CurveSpec {
	out := c
	out.Params = c.Params.Clone()
	if out.Params == nil {
		out.Params = Params{}
	}
	out.Params[name] = v

	return out
}

// WithParams returns a copy of c with every entry of ps merged over its params.
func (c CurveSpec) WithParams(ps Params) CurveSpec {
	out := c
	out.Params = c.Params.Clone()
	if out.Params == nil {
		out.Params = make(Params, len(ps))
	}
	for k, v := range ps {
		out.Params[k] = v
	}

	return out
}

// WithLabel returns a copy of c with a new legend label.
func (c CurveSpec) WithLabel(label string) CurveSpec {
	out := c
	out.Params = c.Params.Clone()
	out.Label = label

	return out
}

// Eval evaluates the curve at x.
func (c CurveSpec) Eval(x float64) float64 {
	return c.Formula(x, c.Params)
}

// Range is a closed numeric interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Size is a figure size in inches.
type Size struct {
	Width  float64
	Height float64
}

// SizeFromAspect returns a Size whose height is width*aspect.
func SizeFromAspect(width, aspect float64) Size {
	return Size{Width: width, Height: width * aspect}
}

// LegendCorner selects where the legend is anchored inside the axes.
type LegendCorner int

const (
	// LegendLowerLeft is the default corner used by every parabola chart.
	LegendLowerLeft LegendCorner = iota
	LegendLowerRight
	LegendUpperLeft
	LegendUpperRight
	// LegendNone hides the legend.
	LegendNone
)

// String returns the matplotlib-style location name.
func (l LegendCorner) String() string {
	switch l {
	case LegendLowerLeft:
		return "lower left"
	case LegendLowerRight:
		return "lower right"
	case LegendUpperLeft:
		return "upper left"
	case LegendUpperRight:
		return "upper right"
	case LegendNone:
		return "none"
	default:
		return "unknown"
	}
}

// Top reports whether the legend sits on the top edge.
func (l LegendCorner) Top() bool { return l == LegendUpperLeft || l == LegendUpperRight }

// Left reports whether the legend sits on the left edge.
func (l LegendCorner) Left() bool { return l == LegendLowerLeft || l == LegendUpperLeft }

// PlotConfig is the shared axis/legend/title configuration for one chart.
type PlotConfig struct {
	XRange   Range
	YRange   Range
	TickStep float64 // spacing of tick marks on both axes

	Title  string
	XLabel string
	YLabel string

	FigureSize Size    // inches
	DPI        float64 // raster resolution

	Legend LegendCorner
	// EqualAspect forces one x unit to span the same length as one y unit.
	EqualAspect bool
}

// Ticks returns the tick positions for r: every multiple of step that lies
// in [r.Min, r.Max]. Positions are computed as k*step (not by accumulation)
// so they are exact for the usual integer steps.
// Returns nil for a non-positive step or when more than MaxTicks ticks
// would be needed.
func Ticks(r Range, step float64) []float64 {
	if !(step > 0) || r.Max < r.Min || r.Span()/step > MaxTicks {
		return nil
	}
	const eps = 1e-9
	first := ceilDiv(r.Min, step, eps)
	last := floorDiv(r.Max, step, eps)
	if last < first {
		return nil
	}
	out := make([]float64, 0, last-first+1)
	for k := first; k <= last; k++ {
		v := float64(k) * step
		if v == 0 {
			v = 0 // normalize -0
		}
		out = append(out, v)
	}

	return out
}
