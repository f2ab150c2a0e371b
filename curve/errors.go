// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// errors.go — sentinel errors for chart configuration.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the call site with %w (see configErrorf).
//   • Rendering is a pure computation: every error here is a configuration
//     error reported before any sampling happens.

package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCurves is returned when a chart is requested with an empty curve set.
	ErrNoCurves = errors.New("curve: empty curve set")

	// ErrBadSampleCount is returned when the sample count is zero or negative.
	ErrBadSampleCount = errors.New("curve: sample count must be positive")

	// ErrBadRange is returned for an inverted or zero-width axis range,
	// or a range with NaN/Inf bounds.
	ErrBadRange = errors.New("curve: invalid axis range")

	// ErrBadTickStep is returned when the tick step is not a positive finite number.
	ErrBadTickStep = errors.New("curve: tick step must be positive")

	// ErrNilFormula is returned when a CurveSpec carries no formula.
	ErrNilFormula = errors.New("curve: nil formula")

	// ErrBadFigure is returned for a non-positive figure size or DPI.
	ErrBadFigure = errors.New("curve: invalid figure size or dpi")

	// ErrBadColor is returned when a color string cannot be parsed.
	ErrBadColor = errors.New("curve: unknown color")

	// ErrBadLineWidth is returned for a negative or non-finite line width.
	ErrBadLineWidth = errors.New("curve: invalid line width")
)

// configErrorf prefixes a sentinel with the operation name and a formatted
// detail, keeping the sentinel reachable through errors.Is:
//
//	configErrorf(MethodRender, ErrBadRange, "x range [%g,%g]", lo, hi)
//	→ "Render: x range [10,-10]: curve: invalid axis range"
func configErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
