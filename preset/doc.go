// Package preset is the table of named charts used on the site.
//
// Parabola transformations (x over [-10, 10], 200 samples, 4in wide at a
// 0.7 aspect, 150 dpi, ticks every 2, legend lower-left):
//
//   - width-and-orientation:    x², 2x², -0.5x²
//   - vertical-shifts:          x², x² + 2, x² - 2
//   - vertex-vertical-shifts:   x², x² + 2, x² - 2 (vertex form)
//   - vertex-horizontal-shifts: x², (x-2)², (x+2)²
//
// Damped oscillator response (t over [0, 10], 1000 samples):
//
//   - damped-response: e^(-ζωn t)·cos(ωn·√(1-ζ²)·t), static 8×4 or slider 6×4
//
// Coefficient slider chart (x over [-10, 10], y over [-20, 20], 500 samples):
//
//   - interactive-parabola: ax² + bx + c, starting at a=1, b=0, c=0
//
// Every preset is rendered by the same pipeline:
//
//	p, _ := preset.Lookup(preset.WidthAndOrientation)
//	fig, err := p.Render()
package preset
