package bench

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 12 * vg.Inch
)

// Plot draws mean solve time (top) and mean tour cost (bottom) against the
// instance size for both methods. The image format follows the extension
// of path (png, svg, pdf, jpg, ...).
func Plot(rep *Report, path string) (err error) {
	if rep == nil || len(rep.Rows) == 0 {
		return ErrEmptyReport
	}

	timeXYs := make([]plotter.XYs, 2)
	costXYs := make([]plotter.XYs, 2)
	for _, r := range rep.Rows {
		x := float64(r.Size)
		timeXYs[0] = appendFinite(timeXYs[0], x, r.ExactTime)
		timeXYs[1] = appendFinite(timeXYs[1], x, r.GreedyTime)
		costXYs[0] = appendFinite(costXYs[0], x, r.ExactCost)
		costXYs[1] = appendFinite(costXYs[1], x, r.GreedyCost)
	}

	timePlot, err := linePlot("Solve time by matrix size", "Time (s)", timeXYs)
	if err != nil {
		return err
	}
	costPlot, err := linePlot("Tour cost by matrix size", "Cost", costXYs)
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := draw.NewFormattedCanvas(plotWidth, plotHeight, format)
	if err != nil {
		return fmt.Errorf("bench: plot %q: %w", path, err)
	}

	plots := [][]*plot.Plot{{timePlot}, {costPlot}}
	pad := 5 * vg.Millimeter
	tiles := draw.Tiles{
		Rows: 2, Cols: 1,
		PadX: pad, PadY: pad,
		PadTop: pad, PadBottom: pad, PadLeft: pad, PadRight: pad,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(f)

	return err
}

func linePlot(title, yLabel string, series []plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Matrix size"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var args []interface{}
	for i, name := range []string{"Little", "Nearest neighbor"} {
		if len(series[i]) > 0 {
			args = append(args, name, series[i])
		}
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, err
	}

	return p, nil
}

// appendFinite skips points the plotter cannot draw: sizes whose every
// exact run timed out have a NaN cost.
func appendFinite(xys plotter.XYs, x, y float64) plotter.XYs {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return xys
	}

	return append(xys, plotter.XY{X: x, Y: y})
}
