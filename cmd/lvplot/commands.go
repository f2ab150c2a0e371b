// SPDX-License-Identifier: MIT
// Package: lvplot/cmd/lvplot
//
// commands.go — cobra commands: list, render, demo, style.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvplot/overlay"
	"github.com/katalvlaran/lvplot/preset"
	"github.com/katalvlaran/lvplot/render"
	"github.com/katalvlaran/lvplot/style"
)

// Formats accepted by --format besides the gonum ones.
const (
	formatChartSVG = "chart-svg"
	formatChartPNG = "chart-png"
)

var errBadFlag = errors.New("invalid flag value")

func newRootCmd(logger *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "lvplot",
		Short:         "Render the curve gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newListCmd(),
		newRenderCmd(logger),
		newDemoCmd(logger),
		newStyleCmd(),
	)

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range preset.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

type renderFlags struct {
	out         string
	format      string
	stylePath   string
	zeta        float64
	wn          float64
	width       float64
	equalAspect bool
	interactive bool
}

func (f renderFlags) presetOptions() ([]preset.Option, error) {
	if f.zeta < 0 || f.wn <= 0 {
		return nil, fmt.Errorf("--zeta %g --wn %g: %w", f.zeta, f.wn, errBadFlag)
	}
	if f.width <= 0 {
		return nil, fmt.Errorf("--width %g: %w", f.width, errBadFlag)
	}
	opts := []preset.Option{
		preset.WithDamping(f.zeta, f.wn),
		preset.WithFigureWidth(f.width),
	}
	if f.equalAspect {
		opts = append(opts, preset.WithEqualAspect())
	}
	if f.interactive {
		opts = append(opts, preset.WithInteractiveLayout())
	}

	return opts, nil
}

func newRenderCmd(logger *log.Logger) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render [preset...]",
		Short: "Render presets to image files (all presets when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStyle(f.stylePath)
			if err != nil {
				return err
			}
			opts, err := f.presetOptions()
			if err != nil {
				return err
			}
			if !chartFormat(f.format) && !render.SupportedFormat(f.format) {
				return fmt.Errorf("--format %q: %w", f.format, render.ErrUnsupportedFormat)
			}
			names := args
			if len(names) == 0 {
				names = preset.Names()
			}
			if err := os.MkdirAll(f.out, 0o755); err != nil {
				return err
			}
			for _, name := range names {
				p, err := preset.Lookup(name, opts...)
				if err != nil {
					return err
				}
				fig, err := p.Render(render.WithStyle(st))
				if err != nil {
					return err
				}
				path, err := writeFigure(fig, f.out, name, f.format)
				if err != nil {
					return err
				}
				logger.Printf("wrote %s (%d curves)", path, fig.Len())
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", ".", "output directory")
	fl.StringVarP(&f.format, "format", "f", render.FormatPNG, "png, jpg, tif, svg, pdf, eps, chart-svg or chart-png")
	fl.StringVar(&f.stylePath, "style", "", "TOML style file (defaults when empty)")
	fl.Float64Var(&f.zeta, "zeta", preset.DefaultZeta, "damping ratio of damped-response")
	fl.Float64Var(&f.wn, "wn", preset.DefaultWn, "natural frequency of damped-response")
	fl.Float64Var(&f.width, "width", preset.DefaultFigureWidth, "parabola figure width in inches")
	fl.BoolVar(&f.equalAspect, "equal-aspect", false, "one x unit as long as one y unit on parabola charts")
	fl.BoolVar(&f.interactive, "interactive", false, "slider layout for damped-response")

	return cmd
}

func newDemoCmd(logger *log.Logger) *cobra.Command {
	var (
		out       string
		stylePath string
		chart     string
		sets      []string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a slider demo after moving its sliders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := loadStyle(stylePath)
			if err != nil {
				return err
			}
			var o *overlay.Overlay
			switch chart {
			case preset.DampedResponseName:
				o, err = overlay.DampedResponseDemo(preset.DefaultZeta, preset.DefaultWn, render.WithStyle(st))
			case preset.InteractiveParabolaName:
				o, err = overlay.ParabolaDemo(preset.DefaultA, preset.DefaultB, preset.DefaultC, render.WithStyle(st))
			default:
				return fmt.Errorf("--chart %q: %w", chart, preset.ErrUnknownPreset)
			}
			if err != nil {
				return err
			}
			for _, kv := range sets {
				name, v, err := parseSet(kv)
				if err != nil {
					return err
				}
				got, err := o.Set(name, v)
				if err != nil {
					return err
				}
				if got != v {
					logger.Printf("%s=%g moved to %g", name, v, got)
				}
			}
			format := render.ChartSVG
			if strings.EqualFold(filepath.Ext(out), ".png") {
				format = render.ChartPNG
			}
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := o.Figure().WriteChart(file, format); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			logger.Printf("wrote %s (%s: %s)", out, o.Figure().Config().Title, o.Figure().Series()[0].Label)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "damped-response.svg", "output file (.svg or .png)")
	cmd.Flags().StringVar(&stylePath, "style", "", "TOML style file (defaults when empty)")
	cmd.Flags().StringVar(&chart, "chart", preset.DampedResponseName, "damped-response (zeta, wn) or interactive-parabola (a, b, c)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "slider move as name=value; repeatable")

	return cmd
}

func newStyleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the default style as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return style.Encode(cmd.OutOrStdout(), style.Default())
		},
	}
}

func loadStyle(path string) (style.Style, error) {
	if path == "" {
		return style.Default(), nil
	}

	return style.Load(path)
}

func chartFormat(format string) bool {
	return format == formatChartSVG || format == formatChartPNG
}

// writeFigure writes fig to dir/name.<ext> and returns the path.
func writeFigure(fig *render.Figure, dir, name, format string) (string, error) {
	if !chartFormat(format) {
		path := filepath.Join(dir, name+"."+format)
		return path, fig.Save(path)
	}

	cf := render.ChartSVG
	if format == formatChartPNG {
		cf = render.ChartPNG
	}
	path := filepath.Join(dir, name+"."+cf.String())
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := fig.WriteChart(file, cf); err != nil {
		file.Close()
		return "", err
	}

	return path, file.Close()
}

func parseSet(kv string) (string, float64, error) {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("--set %q: want name=value: %w", kv, errBadFlag)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("--set %q: %w", kv, errBadFlag)
	}

	return name, v, nil
}
