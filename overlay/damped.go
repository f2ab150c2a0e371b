// SPDX-License-Identifier: MIT
// Package: lvplot/overlay
//
// damped.go — the two slider demos: ζ/ωn of the damped response and a/b/c of
// the interactive parabola.

package overlay

import (
	"fmt"

	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/preset"
	"github.com/katalvlaran/lvplot/render"
)

// Slider ranges of the damped response demo.
const (
	ZetaMin, ZetaMax, ZetaStep = 0.0, 2.0, 0.1
	WnMin, WnMax, WnStep       = 0.5, 5.0, 0.5
)

// Slider ranges of the parabola demo: 21 positions each.
const (
	AMin, AMax, AStep = -2.0, 2.0, 0.2
	BMin, BMax, BStep = -5.0, 5.0, 0.5
	CMin, CMax, CStep = -10.0, 10.0, 1.0
)

// DampedResponseDemo renders the damped response in the slider layout and
// binds ζ and ωn sliders to it. The title and the curve label track the
// current values.
func DampedResponseDemo(zeta, wn float64, opts ...render.Option) (*Overlay, error) {
	fig, err := preset.DampedResponse(zeta, wn, false).Render(opts...)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	title := func(p curve.Params) string {
		return preset.DampedResponseTitle(p.Get(curve.ParamZeta), p.Get(curve.ParamWn))
	}

	return New(fig, 0, []Slider{
		{Name: curve.ParamZeta, Label: "ζ", Min: ZetaMin, Max: ZetaMax, Step: ZetaStep, Value: zeta},
		{Name: curve.ParamWn, Label: "ωn", Min: WnMin, Max: WnMax, Step: WnStep, Value: wn},
	}, Relabel(title), Retitle(title))
}

// ParabolaDemo renders y = ax² + bx + c and binds a, b and c sliders to it.
// The legend entry tracks the current coefficients.
func ParabolaDemo(a, b, c float64, opts ...render.Option) (*Overlay, error) {
	fig, err := preset.InteractiveParabola(a, b, c).Render(opts...)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	return New(fig, 0, []Slider{
		{Name: curve.ParamA, Label: "a", Min: AMin, Max: AMax, Step: AStep, Value: a},
		{Name: curve.ParamB, Label: "b", Min: BMin, Max: BMax, Step: BStep, Value: b},
		{Name: curve.ParamC, Label: "c", Min: CMin, Max: CMax, Step: CStep, Value: c},
	}, Relabel(func(p curve.Params) string {
		return preset.ParabolaLabel(p.Get(curve.ParamA), p.Get(curve.ParamB), p.Get(curve.ParamC))
	}))
}
