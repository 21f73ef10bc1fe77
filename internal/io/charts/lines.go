package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/epitools/covidtrends/pkg/analysis"
)

// lineChart draws one line per location from a (date x location) pivot.
// NaN cells are skipped; on a log scale non-positive values are skipped
// too, since they have no logarithm.
func (r *Renderer) lineChart(pv *analysis.Pivot, title, yLabel, file string, logScale bool) error {
	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = "Date"
	plt.Y.Label.Text = yLabel
	plt.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	plt.Legend.Top = true
	plt.Legend.Left = true

	if logScale {
		plt.Y.Scale = plot.LogScale{}
		plt.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for i, loc := range pv.Locations {
		xys := lineXYs(pv, loc, logScale)
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("cannot build line for %s: %w", loc, err)
		}
		line.Color = plotutil.Color(i)
		plt.Add(line)
		plt.Legend.Add(loc, line)
	}

	return r.save(plt, file)
}

func lineXYs(pv *analysis.Pivot, location string, logScale bool) plotter.XYs {
	vals := pv.Values[location]
	var xys plotter.XYs
	for i, d := range pv.Dates {
		v := vals[i]
		if math.IsNaN(v) {
			continue
		}
		if logScale && v <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(d.Unix()), Y: v})
	}
	return xys
}

func (r *Renderer) save(plt *plot.Plot, file string) error {
	w := vg.Length(r.cfg.Output.WidthInches) * vg.Inch
	h := vg.Length(r.cfg.Output.HeightInches) * vg.Inch
	if err := plt.Save(w, h, r.outPath(file)); err != nil {
		return fmt.Errorf("cannot save chart %s: %w", file, err)
	}
	r.logger.Debug("chart written", "file", file)
	return nil
}
