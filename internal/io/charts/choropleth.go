package charts

import (
	"fmt"
	"math"
	"os"
	"strings"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/covid"
)

// choropleth shades the world map by a latest-snapshot metric. Locations
// without a real ISO code (OWID uses OWID_-prefixed pseudo-codes) or with
// a missing value simply produce no shaded region.
func (r *Renderer) choropleth(snaps []covid.Snapshot, metric analysis.Metric,
	title, file string, clamp bool,
) error {
	var data []opts.MapData
	var max float64

	for _, s := range snaps {
		if s.ISOCode == "" || strings.HasPrefix(s.ISOCode, "OWID_") {
			continue
		}
		v := metric(s)
		if clamp {
			v = analysis.ClampPct(v)
		}
		if math.IsNaN(v) {
			continue
		}
		if v > max {
			max = v
		}
		// The world-map geometry is keyed by English country name; the ISO
		// code gates which rows qualify as real countries.
		data = append(data, opts.MapData{Name: s.Location, Value: v})
	}
	if len(data) == 0 {
		return fmt.Errorf("no mappable data for %s", file)
	}

	m := echarts.NewMap()
	m.RegisterMapType("world")
	m.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(max),
		}),
	)
	m.AddSeries(title, data)

	f, err := os.Create(r.outPath(file))
	if err != nil {
		return fmt.Errorf("cannot create map file %s: %w", file, err)
	}
	defer f.Close()

	if err := m.Render(f); err != nil {
		return fmt.Errorf("cannot render map %s: %w", file, err)
	}
	r.logger.Debug("map written", "file", file)
	return nil
}
