package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvplot/overlay"
	"github.com/katalvlaran/lvplot/preset"
	"github.com/katalvlaran/lvplot/render"
	"github.com/katalvlaran/lvplot/style"
)

// run executes the root command with args and returns stdout and the log.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd(log.New(&logs, "", 0))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), logs.String(), err
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, preset.Names(), strings.Fields(out))
}

func TestRender_AllPresets(t *testing.T) {
	dir := t.TempDir()
	_, logs, err := run(t, "render", "--out", dir)
	require.NoError(t, err)

	for _, name := range preset.Names() {
		data, err := os.ReadFile(filepath.Join(dir, name+".png"))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), name)
		assert.Contains(t, logs, name+".png")
	}
}

func TestRender_ChartSVGWithStyle(t *testing.T) {
	dir := t.TempDir()
	stylePath := filepath.Join(dir, "style.toml")
	require.NoError(t, os.WriteFile(stylePath, []byte("dpi = 72.0\ngrid = false\n"), 0o644))

	_, _, err := run(t, "render", preset.VerticalShifts,
		"--out", dir, "--format", "chart-svg", "--style", stylePath)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, preset.VerticalShifts+".svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "render", "--out", dir, "--format", "bmp")
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)

	_, _, err = run(t, "render", "hyperbola", "--out", dir)
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)

	_, _, err = run(t, "render", "--out", dir, "--wn", "0")
	assert.ErrorIs(t, err, errBadFlag)

	_, _, err = run(t, "render", "--out", dir, "--style", filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("dpii = 10.0\n"), 0o644))
	_, _, err = run(t, "render", "--out", dir, "--style", bad)
	assert.ErrorIs(t, err, style.ErrInvalidStyle)
}

func TestDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.svg")
	_, logs, err := run(t, "demo", "--out", path, "--set", "zeta=1.5", "--set", "wn=9")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, logs, "wn=9 moved to 5")

	assert.Contains(t, logs, "Response (ζ = 1.5, ωn = 5)")

	_, _, err = run(t, "demo", "--out", path, "--set", "q=1")
	assert.ErrorIs(t, err, overlay.ErrUnknownSlider)
	_, _, err = run(t, "demo", "--out", path, "--chart", "hyperbola")
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)
	_, _, err = run(t, "demo", "--out", path, "--set", "zeta")
	assert.ErrorIs(t, err, errBadFlag)
}

func TestDemo_Parabola(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parabola.svg")
	_, logs, err := run(t, "demo", "--chart", "interactive-parabola", "--out", path, "--set", "b=2.5", "--set", "c=-3")
	require.NoError(t, err)
	assert.Contains(t, logs, "y = 1x² + 2.5x + -3")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestStyle_PrintsDefaults(t *testing.T) {
	out, _, err := run(t, "style")
	require.NoError(t, err)

	got, err := style.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, style.Default(), got)
}
