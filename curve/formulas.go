// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// formulas.go — the formula families used by the charts.
//
// Parameter names (read through Params.Get, missing ⇒ 0):
//   • Quadratic:      a, b, c        y = a·x² + b·x + c
//   • VertexForm:     a, h, k        y = a·(x − h)² + k
//   • DampedResponse: zeta, wn       y = e^(−ζ·ωn·t) · cos(ωn·√max(0, 1−ζ²)·t)

package curve

import "math"

// Parameter names understood by the built-in formulas.
const (
	ParamA    = "a"
	ParamB    = "b"
	ParamC    = "c"
	ParamH    = "h"
	ParamK    = "k"
	ParamZeta = "zeta"
	ParamWn   = "wn"
)

// Quadratic evaluates a·x² + b·x + c.
func Quadratic(x float64, p Params) float64 {
	return p.Get(ParamA)*x*x + p.Get(ParamB)*x + p.Get(ParamC)
}

// VertexForm evaluates a·(x − h)² + k.
func VertexForm(x float64, p Params) float64 {
	d := x - p.Get(ParamH)

	return p.Get(ParamA)*d*d + p.Get(ParamK)
}

// DampedResponse evaluates the free response of a second-order system with
// damping ratio zeta and natural frequency wn at time t. For zeta >= 1 the
// damped frequency term is clamped to zero, so the curve degrades to a pure
// exponential decay instead of NaN.
func DampedResponse(t float64, p Params) float64 {
	zeta, wn := p.Get(ParamZeta), p.Get(ParamWn)
	wd := wn * ClampedSqrt(1-zeta*zeta)

	return math.Exp(-zeta*wn*t) * math.Cos(wd*t)
}

// ClampedSqrt returns √max(0, v). NaN stays NaN.
func ClampedSqrt(v float64) float64 {
	if v < 0 {
		return 0
	}

	return math.Sqrt(v)
}

// Constant returns a formula that ignores x and yields c.
func Constant(c float64) Formula {
	return func(float64, Params) float64 { return c }
}
