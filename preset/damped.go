// SPDX-License-Identifier: MIT
// Package: lvplot/preset
//
// damped.go — second-order damped response chart.
//
//   y(t) = e^(−ζ·ωn·t) · cos(ωn·√max(0, 1−ζ²)·t),  t ∈ [0, 10] s
//
// Static layout is 8×4 in, the slider layout 6×4 in; both fix y to [-1, 1].

package preset

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvplot/curve"
)

// Damped response defaults.
const (
	DefaultZeta = 0.5
	DefaultWn   = 1.0

	dampedSamples  = 1000
	dampedTickStep = 1.0
	dampedDPI      = 100.0
	dampedColor    = "b"
)

var (
	dampedTime      = curve.Range{Min: 0, Max: 10}
	dampedAmplitude = curve.Range{Min: -1, Max: 1}
	staticSize      = curve.Size{Width: 8, Height: 4}
	interactiveSize = curve.Size{Width: 6, Height: 4}
)

// DampedResponseTitle formats the chart title for zeta and wn.
func DampedResponseTitle(zeta, wn float64) string {
	return fmt.Sprintf("Response (ζ = %s, ωn = %s)", formatParam(zeta), formatParam(wn))
}

// DampedResponseCurve returns the single curve of the damped chart.
func DampedResponseCurve(zeta, wn float64) curve.CurveSpec {
	return curve.NewCurveSpec(curve.DampedResponse,
		curve.Params{curve.ParamZeta: zeta, curve.ParamWn: wn},
		"", dampedColor, 0)
}

// DampedResponse returns the damped-oscillator preset. static selects the
// 8×4 page layout; otherwise the 6×4 layout used next to the slider.
func DampedResponse(zeta, wn float64, static bool) Preset {
	size := interactiveSize
	if static {
		size = staticSize
	}

	return Preset{
		Name: DampedResponseName,
		Config: curve.PlotConfig{
			XRange:     dampedTime,
			YRange:     dampedAmplitude,
			TickStep:   dampedTickStep,
			Title:      DampedResponseTitle(zeta, wn),
			XLabel:     "Time (s)",
			YLabel:     "Amplitude",
			FigureSize: size,
			DPI:        dampedDPI,
			Legend:     curve.LegendNone,
		},
		Curves:  []curve.CurveSpec{DampedResponseCurve(zeta, wn)},
		Samples: dampedSamples,
	}
}

// formatParam prints 0.5 as "0.5" and 1 as "1". Ten significant digits hide
// the float noise of slider steps (3·0.1 prints as "0.3").
func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
