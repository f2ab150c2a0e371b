// SPDX-License-Identifier: MIT
// Package: lvplot/render
//
// impl_gonum.go — static output through gonum.org/v1/plot.
//
// Drawing order (bottom → top):
//   grid (when Style.AxisBelow) → zero axes → curves → grid (otherwise).
// Raster formats (png/jpg/tif) honour PlotConfig.DPI; vector formats
// (svg/pdf/eps) are resolution independent.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/lvplot/curve"
)

// Output formats accepted by WriteTo and Save (by file extension).
const (
	FormatPNG  = "png"
	FormatJPEG = "jpg"
	FormatTIFF = "tif"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatEPS  = "eps"
)

// Plot builds a gonum *plot.Plot with the figure's configuration and style
// applied. Each call builds a fresh plot; callers may customize it further.
func (f *Figure) Plot() (*plot.Plot, error) {
	if f == nil {
		return nil, ErrNilFigure
	}
	cfg, st := f.cfg, f.style

	p := plot.New()
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(st.TitleSize)

	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.X.Tick.Marker = constantTicks(curve.Ticks(cfg.XRange, cfg.TickStep))
	p.Y.Tick.Marker = constantTicks(curve.Ticks(cfg.YRange, cfg.TickStep))
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = vg.Points(st.LabelSize)
		ax.Tick.Label.Font.Size = vg.Points(st.TickLabelSize)
		ax.LineStyle.Width = vg.Points(st.AxesLineWidth)
		ax.Tick.LineStyle.Width = vg.Points(st.AxesLineWidth)
	}

	var grid *plotter.Grid
	if st.Grid {
		grid = plotter.NewGrid()
		grid.Vertical.Color = st.GridNRGBA()
		grid.Vertical.Width = vg.Points(st.GridLineWidth)
		grid.Horizontal.Color = st.GridNRGBA()
		grid.Horizontal.Width = vg.Points(st.GridLineWidth)
		if st.AxisBelow {
			p.Add(grid)
		}
	}

	if err := f.addZeroAxes(p); err != nil {
		return nil, err
	}

	for i, s := range f.series {
		line, err := plotter.NewLine(toXYs(s))
		if err != nil {
			return nil, fmt.Errorf("Plot: series %d (%q): %w", i, s.Label, err)
		}
		c, err := curve.ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("Plot: series %d: %w", i, err)
		}
		line.Color = c
		line.Width = vg.Points(s.LineWidth)
		p.Add(line)
		if cfg.Legend != curve.LegendNone && s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}

	if grid != nil && !st.AxisBelow {
		p.Add(grid)
	}
	// Add widens the axes to the data; pin them once every plotter is in.
	p.X.Min, p.X.Max = cfg.XRange.Min, cfg.XRange.Max
	p.Y.Min, p.Y.Max = cfg.YRange.Min, cfg.YRange.Max

	p.Legend.Top = cfg.Legend.Top()
	p.Legend.Left = cfg.Legend.Left()
	p.Legend.TextStyle.Font.Size = vg.Points(st.LegendFontSize)

	return p, nil
}

// addZeroAxes draws y=0 and x=0 across the visible range when they are in view.
func (f *Figure) addZeroAxes(p *plot.Plot) error {
	cfg, st := f.cfg, f.style
	if st.ZeroAxisWidth == 0 {
		return nil
	}
	col := st.ZeroAxisNRGBA()
	var segments []plotter.XYs
	if cfg.YRange.Contains(0) {
		segments = append(segments, plotter.XYs{{X: cfg.XRange.Min, Y: 0}, {X: cfg.XRange.Max, Y: 0}})
	}
	if cfg.XRange.Contains(0) {
		segments = append(segments, plotter.XYs{{X: 0, Y: cfg.YRange.Min}, {X: 0, Y: cfg.YRange.Max}})
	}
	for _, seg := range segments {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("Plot: zero axis: %w", err)
		}
		l.Color = col
		l.Width = vg.Points(st.ZeroAxisWidth)
		p.Add(l)
	}

	return nil
}

// WriteTo draws the figure in the given format ("png", "jpg"/"jpeg",
// "tif"/"tiff", "svg", "pdf", "eps") and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	if f == nil {
		return 0, ErrNilFigure
	}
	p, err := f.Plot()
	if err != nil {
		return 0, err
	}
	wIn, hIn := f.canvasSize()
	width, height := vg.Length(wIn)*vg.Inch, vg.Length(hIn)*vg.Inch

	switch normalizeFormat(format) {
	case FormatPNG, FormatJPEG, FormatTIFF:
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(int(math.Round(f.cfg.DPI))), vgimg.UseBackgroundColor(color.White))
		p.Draw(draw.New(c))
		switch normalizeFormat(format) {
		case FormatPNG:
			return vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		case FormatJPEG:
			return vgimg.JpegCanvas{Canvas: c}.WriteTo(w)
		default:
			return vgimg.TiffCanvas{Canvas: c}.WriteTo(w)
		}
	case FormatSVG, FormatPDF, FormatEPS:
		wt, err := p.WriterTo(width, height, normalizeFormat(format))
		if err != nil {
			return 0, fmt.Errorf("WriteTo(%s): %w", format, err)
		}
		return wt.WriteTo(w)
	default:
		return 0, fmt.Errorf("WriteTo(%q): %w", format, ErrUnsupportedFormat)
	}
}

// Save writes the figure to path; the format follows the file extension.
func (f *Figure) Save(path string) (err error) {
	if f == nil {
		return ErrNilFigure
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !SupportedFormat(format) {
		return fmt.Errorf("Save(%s): %w", path, ErrUnsupportedFormat)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Save: %w", cerr)
		}
	}()
	if _, err = f.WriteTo(file, format); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// SupportedFormat reports whether WriteTo accepts format.
func SupportedFormat(format string) bool {
	switch normalizeFormat(format) {
	case FormatPNG, FormatJPEG, FormatTIFF, FormatSVG, FormatPDF, FormatEPS:
		return true
	default:
		return false
	}
}

func normalizeFormat(format string) string {
	switch f := strings.ToLower(strings.TrimPrefix(format, ".")); f {
	case "jpeg":
		return FormatJPEG
	case "tiff":
		return FormatTIFF
	default:
		return f
	}
}

func toXYs(s Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.X))
	for i := range pts {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}

	return pts
}

func constantTicks(values []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}

	return ticks
}
