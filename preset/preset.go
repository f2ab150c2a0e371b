// SPDX-License-Identifier: MIT
// Package: lvplot/preset
//
// preset.go — the table of named charts.
//
// Every chart on the site is one Preset: a PlotConfig, an ordered list of
// CurveSpecs and a sample count, consumed by render.Render. The parabola
// presets share one base configuration (parabolaConfig) and differ only in
// title and curves.

package preset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/render"
)

// Preset is one named chart.
type Preset struct {
	Name    string
	Config  curve.PlotConfig
	Curves  []curve.CurveSpec
	Samples int
}

// Render renders p with the given render options.
func (p Preset) Render(opts ...render.Option) (*render.Figure, error) {
	fig, err := render.Render(p.Config, p.Curves, p.Samples, opts...)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return fig, nil
}

// Names of the built-in presets.
const (
	WidthAndOrientation    = "width-and-orientation"
	VerticalShifts         = "vertical-shifts"
	VertexVerticalShifts   = "vertex-vertical-shifts"
	VertexHorizontalShifts = "vertex-horizontal-shifts"
	DampedResponseName     = "damped-response"
)

// Parabola chart defaults.
const (
	DefaultFigureWidth = 4.0 // inches
	DefaultAspectRatio = 0.7 // height/width
	parabolaSamples    = 200
	parabolaDPI        = 150.0
	parabolaTickStep   = 2.0
	parabolaLineWidth  = 0.8
)

var parabolaRange = curve.Range{Min: -10, Max: 10}

type parabolaSpec struct {
	title  string
	curves []curve.CurveSpec
}

func vertex(a, h, k float64, label, color string) curve.CurveSpec {
	return curve.NewCurveSpec(curve.VertexForm,
		curve.Params{curve.ParamA: a, curve.ParamH: h, curve.ParamK: k},
		label, color, parabolaLineWidth)
}

func quadratic(a, c float64, label, color string) curve.CurveSpec {
	return curve.NewCurveSpec(curve.Quadratic,
		curve.Params{curve.ParamA: a, curve.ParamC: c},
		label, color, parabolaLineWidth)
}

const baseLabel = "y = x²: Base parabola"

// parabolaTable builds fresh curve specs on every call so callers can never
// share (and mutate) the table's params.
func parabolaTable() map[string]parabolaSpec {
	return map[string]parabolaSpec{
		WidthAndOrientation: {
			title: "Width and Orientation",
			curves: []curve.CurveSpec{
				quadratic(1, 0, baseLabel, "b"),
				quadratic(2, 0, "y = 2x²: Narrower (|a| > 1)", "r"),
				quadratic(-0.5, 0, "y = -0.5x²: Wider (|a| < 1), flipped (a < 0)", "g"),
			},
		},
		VerticalShifts: {
			title: "Vertical Shifts",
			curves: []curve.CurveSpec{
				quadratic(1, 0, baseLabel, "b"),
				quadratic(1, 2, "y = x² + 2: Shift up", "r"),
				quadratic(1, -2, "y = x² - 2: Shift down", "g"),
			},
		},
		VertexVerticalShifts: {
			title: "Vertex Vertical Shifts",
			curves: []curve.CurveSpec{
				vertex(1, 0, 0, baseLabel, "b"),
				vertex(1, 0, 2, "y = x² + 2: Shift up", "r"),
				vertex(1, 0, -2, "y = x² - 2: Shift down", "g"),
			},
		},
		VertexHorizontalShifts: {
			title: "Vertex Horizontal Shifts",
			curves: []curve.CurveSpec{
				vertex(1, 0, 0, baseLabel, "b"),
				vertex(1, 2, 0, "y = (x-2)²: Shift right", "r"),
				vertex(1, -2, 0, "y = (x+2)²: Shift left", "g"),
			},
		},
	}
}

// Parabola returns the named parabola preset. Unknown names → ErrUnknownPreset.
func Parabola(name string, opts ...Option) (Preset, error) {
	spec, ok := parabolaTable()[name]
	if !ok {
		return Preset{}, fmt.Errorf("Parabola(%q): %w", name, ErrUnknownPreset)
	}
	o := newOptions(opts...)

	return Preset{
		Name: name,
		Config: curve.PlotConfig{
			XRange:      parabolaRange,
			YRange:      parabolaRange,
			TickStep:    parabolaTickStep,
			Title:       spec.title,
			XLabel:      "x",
			YLabel:      "y",
			FigureSize:  curve.SizeFromAspect(o.figureWidth, o.aspectRatio),
			DPI:         parabolaDPI,
			Legend:      curve.LegendLowerLeft,
			EqualAspect: o.equalAspect,
		},
		Curves:  spec.curves,
		Samples: parabolaSamples,
	}, nil
}

// Names returns every preset name in sorted order.
func Names() []string {
	names := make([]string, 0, 6)
	for name := range parabolaTable() {
		names = append(names, name)
	}
	names = append(names, DampedResponseName, InteractiveParabolaName)
	sort.Strings(names)

	return names
}

// Lookup returns a preset by name. The damped response is returned with
// the damping options (DefaultZeta, DefaultWn unless WithDamping) in the
// static layout unless WithInteractiveLayout; the interactive parabola with
// DefaultA, DefaultB, DefaultC.
func Lookup(name string, opts ...Option) (Preset, error) {
	switch name {
	case DampedResponseName:
		o := newOptions(opts...)

		return DampedResponse(o.zeta, o.wn, !o.interactive), nil
	case InteractiveParabolaName:
		return InteractiveParabola(DefaultA, DefaultB, DefaultC), nil
	}

	return Parabola(name, opts...)
}

// All returns every preset, in Names order.
func All(opts ...Option) []Preset {
	names := Names()
	out := make([]Preset, 0, len(names))
	for _, name := range names {
		p, err := Lookup(name, opts...)
		if err != nil {
			continue // unreachable: Names only lists known presets
		}
		out = append(out, p)
	}

	return out
}
