// Package lineplot renders the observables recorded in a state-data
// series as a grid of line plots in a single PDF.
package lineplot

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/mdwrap/mdwrap/internal/plotcfg"
	"github.com/mdwrap/mdwrap/internal/statedata"
	"github.com/mdwrap/mdwrap/pkg/config"
)

// DefaultQuantities is the default set of observables to plot, in
// display order.
var DefaultQuantities = []statedata.Quantity{
	statedata.PotentialEnergy,
	statedata.KineticEnergy,
	statedata.TotalEnergy,
	statedata.Temperature,
	statedata.BoxVolume,
	statedata.Density,
	statedata.Mass,
}

// gridCols is the number of subplot columns per page.
const gridCols = 3

// Renderer draws state-data line plots.
type Renderer struct {
	logger *zap.SugaredLogger
}

// NewRenderer creates a renderer logging through the given logger.
func NewRenderer(logger *zap.SugaredLogger) *Renderer {
	return &Renderer{logger: logger}
}

// RenderStateData plots the requested quantities of s against timeRep
// (step or time) and writes the grid of subplots to outputPDF. A nil
// quantities slice selects DefaultQuantities. Quantities whose column
// is absent from the series are skipped.
func (r *Renderer) RenderStateData(s *statedata.Series, cfg *config.PlotConfig, outputPDF string, timeRep statedata.Quantity, quantities []statedata.Quantity) error {
	if timeRep != statedata.Step && timeRep != statedata.Time {
		return fmt.Errorf("unsupported time representation %q: must be %q or %q",
			string(timeRep), string(statedata.Step), string(statedata.Time))
	}
	xs, err := s.QuantityColumn(timeRep)
	if err != nil {
		return err
	}

	if quantities == nil {
		quantities = DefaultQuantities
	}

	var plots []*plot.Plot
	for _, q := range quantities {
		col, err := statedata.Column(q)
		if err != nil {
			return err
		}
		if !s.HasColumn(col) {
			r.logger.Debugf("column %q not in state data, skipping %s", col, q)
			continue
		}
		ys, err := s.Column(col)
		if err != nil {
			return err
		}

		var plotTree plotcfg.Tree
		if t, ok := getTree(cfg.Plots, string(q)); ok {
			plotTree = t
		} else {
			plotTree = plotcfg.Tree{}
		}

		p, err := r.buildPlot(xs, ys, col, plotTree, len(plots))
		if err != nil {
			return fmt.Errorf("failed to plot %s: %w", q, err)
		}
		plots = append(plots, p)
	}

	if len(plots) == 0 {
		return fmt.Errorf("%w: no plottable quantities", statedata.ErrColumnNotFound)
	}

	return r.writeGrid(plots, cfg.Output, outputPDF)
}

// buildPlot builds one subplot from a normalized per-plot tree.
func (r *Renderer) buildPlot(xs, ys []float64, yLabel string, tree plotcfg.Tree, index int) (*plot.Plot, error) {
	p := plot.New()
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(index)

	if lp, ok := getTree(tree, "lineplot"); ok {
		r.applyLineOptions(line, lp)
	}
	p.Add(line)

	p.Y.Label.Text = yLabel
	if title, ok := getTree(tree, "title"); ok {
		r.applyTitleOptions(p, title)
	}
	if xaxis, ok := getTree(tree, "xaxis"); ok {
		r.applyAxisOptions(&p.X, xaxis, xs)
	}
	if yaxis, ok := getTree(tree, "yaxis"); ok {
		r.applyAxisOptions(&p.Y, yaxis, ys)
	}

	return p, nil
}

func (r *Renderer) applyLineOptions(line *plotter.Line, tree plotcfg.Tree) {
	for key := range tree {
		switch key {
		case "color":
			s, _ := getString(tree, "color")
			c, err := parseColor(s)
			if err != nil {
				r.logger.Debugf("lineplot: %v, keeping default", err)
				continue
			}
			line.Color = c
		case "linewidth":
			if w, ok := getFloat(tree, "linewidth"); ok {
				line.Width = vg.Points(w)
			}
		case "linestyle":
			if s, _ := getString(tree, "linestyle"); s == "--" || s == "dashed" {
				line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			}
		default:
			r.logger.Debugf("lineplot: ignoring option %q", key)
		}
	}
}

func (r *Renderer) applyTitleOptions(p *plot.Plot, tree plotcfg.Tree) {
	for key := range tree {
		switch key {
		case "label":
			p.Title.Text, _ = getString(tree, "label")
		case "fontsize":
			if size, ok := getFloat(tree, "fontsize"); ok {
				p.Title.TextStyle.Font.Size = vg.Points(size)
			}
		default:
			r.logger.Debugf("title: ignoring option %q", key)
		}
	}
}

func (r *Renderer) applyAxisOptions(axis *plot.Axis, tree plotcfg.Tree, values []float64) {
	if label, ok := getTree(tree, "label"); ok {
		if text, ok := getString(label, "text"); ok {
			axis.Label.Text = text
		}
		if size, ok := getFloat(label, "fontsize"); ok {
			axis.Label.TextStyle.Font.Size = vg.Points(size)
		}
	}

	ticks, explicit := getFloatList(tree, "ticks")
	if !explicit {
		if interval, ok := getTree(tree, "interval"); ok {
			ticks = TickPositions(values, tickOptionsFrom(interval))
		}
	}
	if ticks == nil {
		return
	}

	format := "%.3f"
	if ticklabels, ok := getTree(tree, "ticklabels"); ok {
		if f, ok := getString(ticklabels, "fmt"); ok {
			format = f
		}
	}
	labels := FormatTickLabels(ticks, format)

	marks := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		marks[i] = plot.Tick{Value: t, Label: labels[i]}
	}
	axis.Tick.Marker = plot.ConstantTicks(marks)
	axis.Min = ticks[0]
	axis.Max = ticks[len(ticks)-1]
}

// writeGrid lays the subplots out on a fixed-width grid and writes a
// single PDF page.
func (r *Renderer) writeGrid(plots []*plot.Plot, output plotcfg.Tree, outputPDF string) error {
	rows := (len(plots) + gridCols - 1) / gridCols

	width := 12 * vg.Inch
	height := 3 * vg.Inch * vg.Length(rows)
	if size, ok := getFloatList(output, "size_inches"); ok && len(size) == 2 {
		width = vg.Length(size[0]) * vg.Inch
		height = vg.Length(size[1]) * vg.Inch
	}

	grid := make([][]*plot.Plot, rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, gridCols)
		for j := range grid[i] {
			idx := i*gridCols + j
			if idx < len(plots) {
				grid[i][j] = plots[idx]
			}
		}
	}

	canvas := vgpdf.New(width, height)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: gridCols,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(grid, tiles, draw.New(canvas))
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] != nil {
				grid[i][j].Draw(canvases[i][j])
			}
		}
	}

	out, err := os.Create(outputPDF)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPDF, err)
	}
	if _, err := canvas.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", outputPDF, err)
	}
	return out.Close()
}
