// SPDX-License-Identifier: MIT
// Package: lvplot/style
//
// style.go — the immutable chart style and its deterministic defaults.
//
// Design:
//   • Style is the single source of truth for cosmetics shared by all charts
//     (settings other plotting stacks keep process-wide).
//   • Passed by VALUE into render.Render; there is no package-level mutable
//     state, so two charts rendered back to back cannot interfere.
//   • New applies options in order (later overrides earlier).
//
// Defaults (the site's house style):
//   • dpi              = 150
//   • grid             = on, alpha 0.3, behind curves
//   • lines.linewidth  = 0.8
//   • axes.linewidth   = 0.5 (spines)
//   • zero axes        = black, 0.8
//   • axes.labelsize   = 10, axes.titlesize = 12
//   • tick labels      = 6, legend = 5

package style

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/katalvlaran/lvplot/curve"
)

// ErrInvalidStyle is returned when a decoded style holds meaningless values.
var ErrInvalidStyle = errors.New("style: invalid value")

// Style aggregates every cosmetic knob. Sizes are in points.
type Style struct {
	DPI float64 `toml:"dpi"`

	Grid          bool    `toml:"grid"`
	GridAlpha     float64 `toml:"grid_alpha"`
	GridColor     string  `toml:"grid_color"`
	GridLineWidth float64 `toml:"grid_linewidth"`
	AxisBelow     bool    `toml:"axis_below"`

	LineWidth     float64 `toml:"linewidth"`
	AxesLineWidth float64 `toml:"axes_linewidth"`
	ZeroAxisWidth float64 `toml:"zero_axis_linewidth"`
	ZeroAxisColor string  `toml:"zero_axis_color"`

	TitleSize      float64 `toml:"title_size"`
	LabelSize      float64 `toml:"label_size"`
	TickLabelSize  float64 `toml:"tick_label_size"`
	LegendFontSize float64 `toml:"legend_font_size"`
}

const (
	defaultDPI            = 150.0
	defaultGridAlpha      = 0.3
	defaultGridColor      = "#b0b0b0"
	defaultGridLineWidth  = 0.8
	defaultLineWidth      = 0.8
	defaultAxesLineWidth  = 0.5
	defaultZeroAxisWidth  = 0.8
	defaultZeroAxisColor  = "k"
	defaultTitleSize      = 12.0
	defaultLabelSize      = 10.0
	defaultTickLabelSize  = 6.0
	defaultLegendFontSize = 5.0
)

// Default returns the site style.
func Default() Style {
	return Style{
		DPI:            defaultDPI,
		Grid:           true,
		GridAlpha:      defaultGridAlpha,
		GridColor:      defaultGridColor,
		GridLineWidth:  defaultGridLineWidth,
		AxisBelow:      true,
		LineWidth:      defaultLineWidth,
		AxesLineWidth:  defaultAxesLineWidth,
		ZeroAxisWidth:  defaultZeroAxisWidth,
		ZeroAxisColor:  defaultZeroAxisColor,
		TitleSize:      defaultTitleSize,
		LabelSize:      defaultLabelSize,
		TickLabelSize:  defaultTickLabelSize,
		LegendFontSize: defaultLegendFontSize,
	}
}

// New starts from Default and applies opts in order.
func New(opts ...Option) Style {
	s := Default()
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// With returns a copy of s with opts applied.
func (s Style) With(opts ...Option) Style {
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Validate reports the first meaningless value.
func (s Style) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"dpi", s.DPI},
		{"title_size", s.TitleSize},
		{"label_size", s.LabelSize},
		{"tick_label_size", s.TickLabelSize},
		{"legend_font_size", s.LegendFontSize},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%s=%g: %w", p.name, p.v, ErrInvalidStyle)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"grid_linewidth", s.GridLineWidth},
		{"linewidth", s.LineWidth},
		{"axes_linewidth", s.AxesLineWidth},
		{"zero_axis_linewidth", s.ZeroAxisWidth},
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%s=%g: %w", p.name, p.v, ErrInvalidStyle)
		}
	}
	if !(s.GridAlpha >= 0 && s.GridAlpha <= 1) {
		return fmt.Errorf("grid_alpha=%g: %w", s.GridAlpha, ErrInvalidStyle)
	}
	if _, err := curve.ParseColor(s.GridColor); err != nil {
		return fmt.Errorf("grid_color=%q: %w", s.GridColor, ErrInvalidStyle)
	}
	if _, err := curve.ParseColor(s.ZeroAxisColor); err != nil {
		return fmt.Errorf("zero_axis_color=%q: %w", s.ZeroAxisColor, ErrInvalidStyle)
	}

	return nil
}

// GridNRGBA returns the grid color with GridAlpha folded into the alpha
// channel. Color channels are left as parsed (non-premultiplied).
func (s Style) GridNRGBA() color.NRGBA {
	c, err := curve.ParseColor(s.GridColor)
	if err != nil {
		c = curve.MustParseColor(defaultGridColor)
	}

	return withAlpha(c, s.GridAlpha)
}

// ZeroAxisNRGBA returns the zero-axis color.
func (s Style) ZeroAxisNRGBA() color.NRGBA {
	c, err := curve.ParseColor(s.ZeroAxisColor)
	if err != nil {
		c = curve.MustParseColor(defaultZeroAxisColor)
	}

	return c
}

// withAlpha scales the alpha channel of c by a ∈ [0,1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a >= 1:
		return c
	case a <= 0:
		c.A = 0
		return c
	}
	c.A = uint8(math.Round(float64(c.A) * a))

	return c
}
