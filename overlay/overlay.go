// SPDX-License-Identifier: MIT
// Package: lvplot/overlay
//
// overlay.go — parameter sliders bound to one curve of a Figure.
//
// Contract:
//   • An Overlay owns no drawing code: Set updates one parameter, re-evaluates
//     the bound CurveSpec over the figure's x grid via Figure.ReplaceCurve and
//     leaves every other series untouched.
//   • Values are clamped to [Min, Max] and snapped to the nearest Step
//     (measured from Min), so a slider can only ever hold reachable positions.
//   • An optional OnChange hook runs after each successful Set (e.g. to
//     re-encode the figure for the page).

package overlay

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/render"
)

var (
	// ErrUnknownSlider is returned by Set for a name no slider is bound to.
	ErrUnknownSlider = errors.New("overlay: unknown slider")

	// ErrBadSlider is returned by New for a slider with an empty name,
	// Min >= Max, a negative step or a duplicate name.
	ErrBadSlider = errors.New("overlay: invalid slider")
)

// Slider is one named parameter control.
type Slider struct {
	Name  string  // parameter name in the curve's Params
	Label string  // display text; defaults to Name
	Min   float64 // inclusive
	Max   float64 // inclusive
	Step  float64 // 0 means continuous
	Value float64 // initial value (clamped and snapped by New)
}

// Clamp returns v limited to [Min, Max] and snapped to Step.
func (s Slider) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	if s.Step > 0 {
		n := math.Round((v - s.Min) / s.Step)
		v = s.Min + n*s.Step
	}

	return math.Min(math.Max(v, s.Min), s.Max)
}

func (s Slider) validate() error {
	if s.Name == "" || !(s.Min < s.Max) || s.Step < 0 || math.IsInf(s.Step, 0) {
		return fmt.Errorf("slider %q [%g,%g] step %g: %w", s.Name, s.Min, s.Max, s.Step, ErrBadSlider)
	}

	return nil
}

// Overlay binds sliders to the curve at index curveIndex of a Figure.
type Overlay struct {
	fig      *render.Figure
	index    int
	spec     curve.CurveSpec
	sliders  []Slider
	byName   map[string]int
	onChange func(*render.Figure)
	relabel  func(curve.Params) string
	retitle  func(curve.Params) string
}

// Option customizes an Overlay.
type Option func(*Overlay)

// OnChange registers fn to run after every successful Set.
func OnChange(fn func(*render.Figure)) Option {
	return func(o *Overlay) { o.onChange = fn }
}

// Relabel makes the bound curve's legend label follow the slider values.
func Relabel(fn func(curve.Params) string) Option {
	return func(o *Overlay) { o.relabel = fn }
}

// Retitle makes the figure title follow the slider values.
func Retitle(fn func(curve.Params) string) Option {
	return func(o *Overlay) { o.retitle = fn }
}

// New binds sliders to fig's curve at curveIndex and applies their initial
// values immediately.
func New(fig *render.Figure, curveIndex int, sliders []Slider, opts ...Option) (*Overlay, error) {
	if fig == nil {
		return nil, render.ErrNilFigure
	}
	spec, err := fig.Curve(curveIndex)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	o := &Overlay{
		fig:     fig,
		index:   curveIndex,
		spec:    spec,
		sliders: make([]Slider, len(sliders)),
		byName:  make(map[string]int, len(sliders)),
	}
	for i, s := range sliders {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("overlay: %w", err)
		}
		if _, dup := o.byName[s.Name]; dup {
			return nil, fmt.Errorf("overlay: duplicate slider %q: %w", s.Name, ErrBadSlider)
		}
		if s.Label == "" {
			s.Label = s.Name
		}
		s.Value = s.Clamp(s.Value)
		o.sliders[i] = s
		o.byName[s.Name] = i
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.apply(); err != nil {
		return nil, err
	}

	return o, nil
}

// Set moves slider name to v (clamped and snapped), re-evaluates the curve
// and replaces its series in the figure. It returns the value actually applied.
func (o *Overlay) Set(name string, v float64) (float64, error) {
	i, ok := o.byName[name]
	if !ok {
		return 0, fmt.Errorf("Set(%q): %w", name, ErrUnknownSlider)
	}
	prev := o.sliders[i].Value
	o.sliders[i].Value = o.sliders[i].Clamp(v)
	if err := o.apply(); err != nil {
		o.sliders[i].Value = prev

		return prev, err
	}
	if o.onChange != nil {
		o.onChange(o.fig)
	}

	return o.sliders[i].Value, nil
}

// apply pushes the current slider values into the bound curve.
func (o *Overlay) apply() error {
	params := o.Values()
	spec := o.spec.WithParams(params)
	if o.relabel != nil {
		spec = spec.WithLabel(o.relabel(spec.Params))
	}
	if err := o.fig.ReplaceCurve(o.index, spec); err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	if o.retitle != nil {
		o.fig.SetTitle(o.retitle(spec.Params))
	}

	return nil
}

// Values returns the current slider values keyed by parameter name.
func (o *Overlay) Values() curve.Params {
	out := make(curve.Params, len(o.sliders))
	for _, s := range o.sliders {
		out[s.Name] = s.Value
	}

	return out
}

// Sliders returns a copy of the sliders with their current values.
func (o *Overlay) Sliders() []Slider {
	return append([]Slider(nil), o.sliders...)
}

// Figure returns the figure the overlay mutates.
func (o *Overlay) Figure() *render.Figure { return o.fig }
