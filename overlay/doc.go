// Package overlay adds parameter sliders on top of a rendered Figure.
//
// A slider is bound to one parameter of one curve. Moving it re-evaluates
// that curve's formula over the figure's existing x grid and swaps the
// series in place; the page then re-encodes the figure (for example with
// Figure.WriteChart) from an OnChange hook. The overlay itself draws
// nothing.
//
// DampedResponseDemo wires the one slider demo used on the site: ζ and ωn of
// the damped oscillator response.
package overlay
