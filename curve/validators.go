// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// validators.go — fail-fast checks for chart configuration.
//
// Priority when several checks fail (first one wins):
//   curves → sample count → x range → y range → tick step → figure → per-curve.

package curve

import (
	"math"
)

// Method names used to prefix configuration errors.
const (
	MethodRender     = "Render"
	MethodLinspace   = "Linspace"
	MethodSample     = "Sample"
	MethodParseColor = "ParseColor"
	MethodValidate   = "Validate"
)

// MaxTicks bounds span/TickStep on either axis.
const MaxTicks = 1000

// ValidateRange rejects NaN/Inf bounds and Min >= Max.
func ValidateRange(method, axis string, r Range) error {
	if !finite(r.Min) || !finite(r.Max) || r.Min >= r.Max {
		return configErrorf(method, ErrBadRange, "%s range [%g,%g]", axis, r.Min, r.Max)
	}

	return nil
}

// Validate checks c on its own (axes, ticks, figure).
func (c PlotConfig) Validate() error {
	return c.validate(MethodValidate)
}

func (c PlotConfig) validate(method string) error {
	if err := ValidateRange(method, "x", c.XRange); err != nil {
		return err
	}
	if err := ValidateRange(method, "y", c.YRange); err != nil {
		return err
	}
	if !finite(c.TickStep) || c.TickStep <= 0 {
		return configErrorf(method, ErrBadTickStep, "tick step %g", c.TickStep)
	}
	if span := math.Max(c.XRange.Span(), c.YRange.Span()); span/c.TickStep > MaxTicks {
		return configErrorf(method, ErrBadTickStep, "tick step %g over span %g exceeds %d ticks",
			c.TickStep, span, MaxTicks)
	}
	if !(c.FigureSize.Width > 0) || !(c.FigureSize.Height > 0) || !(c.DPI > 0) {
		return configErrorf(method, ErrBadFigure, "size %gx%g in @ %g dpi",
			c.FigureSize.Width, c.FigureSize.Height, c.DPI)
	}

	return nil
}

// Validate checks one curve: a formula must be present, the color must
// parse and the line width must be a finite non-negative number.
func (s CurveSpec) Validate() error {
	return s.validate(MethodValidate, 0)
}

func (s CurveSpec) validate(method string, idx int) error {
	if s.Formula == nil {
		return configErrorf(method, ErrNilFormula, "curve %d (%q)", idx, s.Label)
	}
	if _, err := ParseColor(s.Color); err != nil {
		return configErrorf(method, ErrBadColor, "curve %d color %q", idx, s.Color)
	}
	if !finite(s.LineWidth) || s.LineWidth < 0 {
		return configErrorf(method, ErrBadLineWidth, "curve %d width %g", idx, s.LineWidth)
	}

	return nil
}

// ValidateChart runs every check a render call needs, in priority order.
func ValidateChart(cfg PlotConfig, curves []CurveSpec, sampleCount int) error {
	if len(curves) == 0 {
		return configErrorf(MethodRender, ErrNoCurves, "0 curves")
	}
	if sampleCount <= 0 {
		return configErrorf(MethodRender, ErrBadSampleCount, "sample count %d", sampleCount)
	}
	if err := cfg.validate(MethodRender); err != nil {
		return err
	}
	for i, s := range curves {
		if err := s.validate(MethodRender, i); err != nil {
			return err
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
