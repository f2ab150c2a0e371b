// SPDX-License-Identifier: MIT
// Package: lvplot/render
//
// options.go — functional options for Render.

package render

import "github.com/katalvlaran/lvplot/style"

// Option customizes a single Render call.
type Option func(*renderConfig)

// renderConfig is resolved once per Render call and then copied into the Figure.
type renderConfig struct {
	style style.Style
}

func newRenderConfig(opts ...Option) renderConfig {
	cfg := renderConfig{style: style.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStyle renders with s instead of style.Default(). The value is copied;
// s is validated by Render.
func WithStyle(s style.Style) Option {
	return func(c *renderConfig) { c.style = s }
}
