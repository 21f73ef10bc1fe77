package analysis

import (
	"math"
	"sort"

	"github.com/epitools/covidtrends/pkg/covid"
)

// Metric extracts a scalar from a snapshot for ranking or mapping.
type Metric func(covid.Snapshot) float64

// Ranking metrics used by the report tables and bar charts.
var (
	ByTotalCases  Metric = func(s covid.Snapshot) float64 { return s.TotalCases }
	ByTotalDeaths Metric = func(s covid.Snapshot) float64 { return s.TotalDeaths }
	ByVaccination Metric = func(s covid.Snapshot) float64 { return s.PctFullyVaccinated }
	ByDeathRate   Metric = func(s covid.Snapshot) float64 { return s.DeathRate }
)

// TopN returns up to n snapshots sorted descending by the given metric.
// Snapshots whose metric is NaN are excluded: a location without a value
// cannot be ranked.
func TopN(snaps []covid.Snapshot, n int, metric Metric) []covid.Snapshot {
	ranked := make([]covid.Snapshot, 0, len(snaps))
	for _, s := range snaps {
		if math.IsNaN(metric(s)) {
			continue
		}
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return metric(ranked[a]) > metric(ranked[b])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
