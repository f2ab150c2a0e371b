// Package curve holds the data model shared by every lvplot chart: the
// per-curve description (CurveSpec), the per-chart axis and title
// configuration (PlotConfig), the formula library used by the presets and
// the deterministic sampler that turns a formula into plottable points.
//
// 🚀 What lives here?
//
//   - CurveSpec:  one plotted function plus its display styling.
//   - PlotConfig: shared axis/legend/title configuration for one chart.
//   - Formulas:   Quadratic, VertexForm, DampedResponse (+ the Formula type).
//   - Sampling:   Linspace and Sample (numpy-style, endpoints included).
//   - Colors:     ParseColor for matplotlib-style color strings ("b", "r-", "#1f77b4").
//
// ✨ Guarantees:
//
//   - Pure values: CurveSpec and PlotConfig are immutable once built;
//     WithParam/With* helpers return modified copies.
//   - Determinism: the same inputs always produce bit-identical samples.
//   - No panics on user input: validation returns sentinel errors
//     (ErrNoCurves, ErrBadSampleCount, ErrBadRange, ...) that callers match
//     with errors.Is.
//
// ⚙️ Usage:
//
//	spec := curve.NewCurveSpec(curve.Quadratic, curve.Params{"a": 2}, "y = 2x²", "r", 0.8)
//	xs, _ := curve.Linspace(-10, 10, 200)
//	ys := curve.Sample(spec, xs)
//
// The renderer (package render) consumes these types; presets (package
// preset) are plain tables of them.
package curve
