// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// color.go — matplotlib-style color strings → color.NRGBA.
//
// Colors are non-premultiplied: "#00ff0080" keeps G = 0xff with A = 0x80.
//
// Accepted forms:
//   • single-letter codes: b g r c m y k w
//   • format strings with a line suffix: "b-", "r--" (the suffix is ignored)
//   • CSS-ish names: blue, green, red, cyan, magenta, yellow, black, white,
//     gray/grey, orange
//   • hex: "#rgb", "#rrggbb", "#rrggbbaa"
// Empty string → black.

package curve

import (
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.NRGBA{
	// matplotlib's single-letter "base colors"
	"b": {R: 0, G: 0, B: 255, A: 255},
	"g": {R: 0, G: 128, B: 0, A: 255},
	"r": {R: 255, G: 0, B: 0, A: 255},
	"c": {R: 0, G: 191, B: 191, A: 255},
	"m": {R: 191, G: 0, B: 191, A: 255},
	"y": {R: 191, G: 191, B: 0, A: 255},
	"k": {R: 0, G: 0, B: 0, A: 255},
	"w": {R: 255, G: 255, B: 255, A: 255},

	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"green":   {R: 0, G: 128, B: 0, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"orange":  {R: 255, G: 165, B: 0, A: 255},
}

// ParseColor converts s to a non-premultiplied color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return namedColors["k"], nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	// "b-", "r--", "g:" → color letter + line style
	name := strings.TrimRight(s, "-:.")
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	return color.NRGBA{}, configErrorf(MethodParseColor, ErrBadColor, "%q", s)
}

// MustParseColor is ParseColor for compile-time constants; it panics on error.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}

	return c
}

func parseHex(s string) (color.NRGBA, error) {
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, configErrorf(MethodParseColor, ErrBadColor, "%q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, configErrorf(MethodParseColor, ErrBadColor, "%q", s)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
