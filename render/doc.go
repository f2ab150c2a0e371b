// Package render turns a PlotConfig and an ordered list of CurveSpecs into a
// Figure: the sampled series plus everything needed to draw them with the
// site's fixed cosmetics (grid, emphasized zero axes, ticks every TickStep,
// legend in a fixed corner, verbatim title and labels).
//
// ⚙️ Usage:
//
//	fig, err := render.Render(cfg, curves, 200, render.WithStyle(style.Default()))
//	if err != nil {
//	    // errors.Is(err, curve.ErrNoCurves), curve.ErrBadSampleCount, curve.ErrBadRange, ...
//	}
//	_ = fig.Save("parabola.png")          // gonum/plot, format from extension
//	_ = fig.WriteChart(w, render.ChartSVG) // go-chart, for embedding in a page
//
// Rendering is synchronous and allocation-bounded: O(len(curves)·sampleCount).
// The Figure is owned by the caller; nothing is written anywhere until the
// caller asks for it.
package render
