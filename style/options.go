// SPDX-License-Identifier: MIT
// Package: lvplot/style
//
// options.go — functional options for Style.
//
// Contract:
//   • Options are func(*Style), applied in order by New / Style.With.
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (negative sizes, alpha outside [0,1]); these are programmer errors.
//     Values read from files go through Validate and return errors instead.

package style

// Option customizes a Style.
type Option func(*Style)

// WithDPI sets the raster resolution used when a PlotConfig leaves DPI at 0.
func WithDPI(dpi float64) Option {
	if dpi <= 0 {
		panic("style: WithDPI(dpi<=0)")
	}
	return func(s *Style) { s.DPI = dpi }
}

// WithGrid toggles the background grid.
func WithGrid(on bool) Option {
	return func(s *Style) { s.Grid = on }
}

// WithGridAlpha sets the grid opacity in [0,1].
func WithGridAlpha(a float64) Option {
	if a < 0 || a > 1 {
		panic("style: WithGridAlpha(a∉[0,1])")
	}
	return func(s *Style) { s.GridAlpha = a }
}

// WithLineWidth sets the default curve width.
func WithLineWidth(w float64) Option {
	if w < 0 {
		panic("style: WithLineWidth(w<0)")
	}
	return func(s *Style) { s.LineWidth = w }
}

// WithAxesLineWidth sets the spine width.
func WithAxesLineWidth(w float64) Option {
	if w < 0 {
		panic("style: WithAxesLineWidth(w<0)")
	}
	return func(s *Style) { s.AxesLineWidth = w }
}

// WithZeroAxis sets the color and width of the emphasized x=0 / y=0 lines.
func WithZeroAxis(color string, width float64) Option {
	if width < 0 {
		panic("style: WithZeroAxis(width<0)")
	}
	return func(s *Style) {
		s.ZeroAxisColor = color
		s.ZeroAxisWidth = width
	}
}

// WithFontSizes sets title, axis label, tick label and legend sizes (points).
func WithFontSizes(title, label, tick, legend float64) Option {
	if title <= 0 || label <= 0 || tick <= 0 || legend <= 0 {
		panic("style: WithFontSizes(size<=0)")
	}
	return func(s *Style) {
		s.TitleSize = title
		s.LabelSize = label
		s.TickLabelSize = tick
		s.LegendFontSize = legend
	}
}
