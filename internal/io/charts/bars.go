package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/covid"
)

// barChart ranks locations descending by a latest-snapshot metric.
// Locations whose metric is missing are omitted rather than drawn as zero.
func (r *Renderer) barChart(snaps []covid.Snapshot, metric analysis.Metric,
	title, yLabel, file string, clamp bool,
) error {
	ranked := analysis.TopN(snaps, len(snaps), metric)
	if len(ranked) == 0 {
		r.logger.Warn("no data for bar chart, skipping", "file", file)
		return nil
	}

	values := make(plotter.Values, 0, len(ranked))
	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		v := metric(s)
		if clamp {
			// Display-only clamp; the stored metric keeps its raw value.
			v = analysis.ClampPct(v)
		}
		if math.IsNaN(v) {
			continue
		}
		values = append(values, v)
		names = append(names, s.Location)
	}

	plt := plot.New()
	plt.Title.Text = title
	plt.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("cannot build bar chart %s: %w", file, err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)

	plt.Add(bars)
	plt.NominalX(names...)
	plt.X.Tick.Label.Rotation = math.Pi / 4
	plt.X.Tick.Label.XAlign = -0.9

	return r.save(plt, file)
}
