// SPDX-License-Identifier: MIT
// Package: lvplot/style
//
// load.go — TOML decoding and encoding of Style.

package style

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Decode reads a TOML style document from r. Keys absent from the document
// keep their Default values; unknown keys are rejected so a typo does not
// silently fall back to a default.
//
//	dpi = 300
//	grid_alpha = 0.2
//	zero_axis_color = "#333333"
func Decode(r io.Reader) (Style, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, fmt.Errorf("style: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Style{}, fmt.Errorf("style: unknown key %q: %w", undecoded[0].String(), ErrInvalidStyle)
	}
	if err := s.Validate(); err != nil {
		return Style{}, fmt.Errorf("style: %w", err)
	}

	return s, nil
}

// Load reads a TOML style file.
func Load(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, fmt.Errorf("style: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes s as TOML, the inverse of Decode.
func Encode(w io.Writer, s Style) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("style: encode: %w", err)
	}

	return nil
}
