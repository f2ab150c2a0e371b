// Package style defines the immutable cosmetic settings shared by every
// lvplot chart: resolution, grid, line and spine widths, zero-axis emphasis
// and font sizes.
//
// A Style is a plain value. Build one with New(opts...) or load one from a
// TOML file with Load/Decode, then hand it to render.Render via
// render.WithStyle. Nothing in lvplot mutates a process-wide style.
package style
