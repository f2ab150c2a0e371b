// SPDX-License-Identifier: MIT
// Package: lvplot/preset
//
// interactive.go — the a/b/c parabola shown next to coefficient sliders.

package preset

import (
	"fmt"

	"github.com/katalvlaran/lvplot/curve"
)

// InteractiveParabolaName is the preset name of the slider parabola.
const InteractiveParabolaName = "interactive-parabola"

// Initial coefficients of the slider parabola.
const (
	DefaultA = 1.0
	DefaultB = 0.0
	DefaultC = 0.0
)

const (
	interactiveSamples   = 500
	interactiveTickStep  = 2.0
	interactiveLineWidth = 2.0
	interactiveDPI       = 100.0
	interactiveTitle     = "Interactive Parabola: y = ax² + bx + c"
)

var interactiveYRange = curve.Range{Min: -20, Max: 20}

// ParabolaLabel formats the legend entry for coefficients a, b, c.
func ParabolaLabel(a, b, c float64) string {
	return fmt.Sprintf("y = %sx² + %sx + %s", formatParam(a), formatParam(b), formatParam(c))
}

// InteractiveParabola returns the single-curve y = ax² + bx + c chart over
// x ∈ [-10, 10], y ∈ [-20, 20], sampled at 500 points.
func InteractiveParabola(a, b, c float64) Preset {
	return Preset{
		Name: InteractiveParabolaName,
		Config: curve.PlotConfig{
			XRange:     parabolaRange,
			YRange:     interactiveYRange,
			TickStep:   interactiveTickStep,
			Title:      interactiveTitle,
			XLabel:     "x",
			YLabel:     "y",
			FigureSize: interactiveSize,
			DPI:        interactiveDPI,
			Legend:     curve.LegendUpperRight,
		},
		Curves: []curve.CurveSpec{curve.NewCurveSpec(curve.Quadratic,
			curve.Params{curve.ParamA: a, curve.ParamB: b, curve.ParamC: c},
			ParabolaLabel(a, b, c), "blue", interactiveLineWidth)},
		Samples: interactiveSamples,
	}
}
