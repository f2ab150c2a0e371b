// SPDX-License-Identifier: MIT
// Package: lvplot/preset
//
// options.go — knobs for preset lookup.
//
// Option constructors panic on meaningless values (programmer error);
// Lookup/Parabola themselves only return errors.

package preset

import "errors"

// ErrUnknownPreset is returned for a name that is not in the table.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Option customizes a preset at lookup time.
type Option func(*options)

type options struct {
	figureWidth float64
	aspectRatio float64
	equalAspect bool
	zeta        float64
	wn          float64
	interactive bool
}

func newOptions(opts ...Option) options {
	o := options{
		figureWidth: DefaultFigureWidth,
		aspectRatio: DefaultAspectRatio,
		zeta:        DefaultZeta,
		wn:          DefaultWn,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithFigureWidth sets the parabola figure width in inches (height follows
// the aspect ratio).
func WithFigureWidth(w float64) Option {
	if w <= 0 {
		panic("preset: WithFigureWidth(w<=0)")
	}
	return func(o *options) { o.figureWidth = w }
}

// WithAspectRatio sets the parabola height/width ratio.
func WithAspectRatio(r float64) Option {
	if r <= 0 {
		panic("preset: WithAspectRatio(r<=0)")
	}
	return func(o *options) { o.aspectRatio = r }
}

// WithEqualAspect makes one x unit as long as one y unit on parabola charts.
func WithEqualAspect() Option {
	return func(o *options) { o.equalAspect = true }
}

// WithDamping sets ζ and ωn for the damped response preset.
func WithDamping(zeta, wn float64) Option {
	if zeta < 0 || wn <= 0 {
		panic("preset: WithDamping(zeta<0 || wn<=0)")
	}
	return func(o *options) {
		o.zeta = zeta
		o.wn = wn
	}
}

// WithInteractiveLayout selects the slider layout for the damped response.
func WithInteractiveLayout() Option {
	return func(o *options) { o.interactive = true }
}
