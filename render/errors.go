// SPDX-License-Identifier: MIT
// Package render: sentinel errors specific to figures and their outputs.
// Configuration errors (empty curve set, bad sample count, bad ranges...)
// are the curve package sentinels and pass through unchanged, so callers
// match them with errors.Is(err, curve.ErrNoCurves) and friends.

package render

import "errors"

var (
	// ErrBadIndex is returned by ReplaceCurve for an index outside [0, Len()).
	ErrBadIndex = errors.New("render: curve index out of range")

	// ErrUnsupportedFormat is returned for an output format the figure cannot write.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")

	// ErrNilFigure is returned when a method is called on a nil *Figure.
	ErrNilFigure = errors.New("render: nil figure")
)
