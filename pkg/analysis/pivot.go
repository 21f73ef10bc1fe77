package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/epitools/covidtrends/pkg/covid"
)

// Column extracts a time-series column from a location series. Used to
// select which metric a pivot or line chart draws.
type Column func(*covid.LocationSeries) []float64

// Chartable columns.
var (
	TotalCasesColumn  Column = func(s *covid.LocationSeries) []float64 { return s.TotalCases }
	TotalDeathsColumn Column = func(s *covid.LocationSeries) []float64 { return s.TotalDeaths }
	SmoothedColumn    Column = func(s *covid.LocationSeries) []float64 { return s.SmoothedNewCases }
)

// Pivot is a (date x location) matrix of one metric, the shape line charts
// consume. Dates are the sorted union of all locations' dates; cells where
// a location has no observation are NaN.
type Pivot struct {
	Dates     []time.Time
	Locations []string
	// Values maps location name to a column aligned with Dates.
	Values map[string][]float64
}

// PivotMetric builds a (date x location) matrix for the chosen column.
func PivotMetric(series []*covid.LocationSeries, col Column) *Pivot {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, s := range series {
		for _, d := range s.Dates {
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })

	idx := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		idx[d] = i
	}

	p := &Pivot{
		Dates:  dates,
		Values: make(map[string][]float64, len(series)),
	}
	for _, s := range series {
		vals := make([]float64, len(dates))
		for i := range vals {
			vals[i] = math.NaN()
		}
		src := col(s)
		for i, d := range s.Dates {
			if i < len(src) {
				vals[idx[d]] = src[i]
			}
		}
		p.Locations = append(p.Locations, s.Location)
		p.Values[s.Location] = vals
	}
	return p
}
