// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// sample.go — deterministic sampling of formulas over a range.
//
// Contract:
//   • Linspace(lo, hi, n) matches numpy.linspace: n points, both endpoints
//     included, n == 1 yields [lo]. The last point is exactly hi.
//   • Sample evaluates a CurveSpec at every x; O(n) time, one allocation.
//   • No global state, no randomness: identical inputs give identical output.

package curve

import "math"

// Linspace returns n evenly spaced values over [lo, hi].
// Returns ErrBadSampleCount for n <= 0.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, configErrorf(MethodLinspace, ErrBadSampleCount, "n=%d", n)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo

		return out, nil
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = lo + float64(i)*step
	}
	// pin the endpoint; lo + (n-1)*step may be off by one ulp
	out[n-1] = hi

	return out, nil
}

// Sample evaluates spec at each x and returns the y values.
// A nil formula yields nil.
func Sample(spec CurveSpec, xs []float64) []float64 {
	if spec.Formula == nil {
		return nil
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = spec.Formula(x, spec.Params)
	}

	return ys
}

// SampleRange is Linspace followed by Sample.
func SampleRange(spec CurveSpec, r Range, n int) (xs, ys []float64, err error) {
	if spec.Formula == nil {
		return nil, nil, configErrorf(MethodSample, ErrNilFormula, "curve %q", spec.Label)
	}
	xs, err = Linspace(r.Min, r.Max, n)
	if err != nil {
		return nil, nil, err
	}

	return xs, Sample(spec, xs), nil
}

// ceilDiv returns ceil(v/step) tolerating eps of float noise.
func ceilDiv(v, step, eps float64) int {
	return int(math.Ceil(v/step - eps))
}

// floorDiv returns floor(v/step) tolerating eps of float noise.
func floorDiv(v, step, eps float64) int {
	return int(math.Floor(v/step + eps))
}
