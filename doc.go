// Package lvplot renders small families of mathematical curves into
// publication-quality 2-D charts for a teaching site.
//
// 🚀 What is lvplot?
//
//	A declarative chart builder: every chart is data, not code.
//		• Curves: a formula + named parameters + label, colour, line width
//		• Config: fixed x/y ranges, tick step, titles, figure size, dpi, legend
//		• Style: one immutable value replacing process-wide plot settings
//		• Outputs: PNG/JPEG/TIFF/SVG/PDF/EPS via gonum/plot, embeddable SVG/PNG via go-chart
//		• Presets: the site's parabola gallery and the damped oscillator response
//		• Overlay: ζ / ωn sliders that re-evaluate one curve in place
//
// ✨ Why lvplot?
//
//   - Deterministic – same inputs, same samples, same image
//   - Fail fast – bad ranges, sample counts or colours are rejected before drawing
//   - No globals – two charts rendered back to back cannot leak style into each other
//
// Packages:
//
//	curve/    — CurveSpec, PlotConfig, formulas, sampling, validation
//	style/    — Style defaults, functional options, TOML loading
//	render/   — Render → Figure; Plot/WriteTo/Save and Chart/WriteChart
//	preset/   — named charts consumed by render.Render
//	overlay/  — parameter sliders bound to one curve of a Figure
//	cmd/lvplot — gallery CLI (list, render, demo, style)
//
// Quick example:
//
//	p, _ := preset.Lookup(preset.VerticalShifts)
//	fig, _ := p.Render()
//	_ = fig.Save("vertical-shifts.png")
//
//	go install github.com/katalvlaran/lvplot/cmd/lvplot@latest
package lvplot
