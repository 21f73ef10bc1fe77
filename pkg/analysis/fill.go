// Package analysis implements the pure data transformations of the
// pipeline: forward-filling, rolling means, derived rates, latest
// snapshots, rankings and pivoting for the chart layer.
//
// All functions treat NaN as "missing" and never coerce it to zero.
package analysis

import (
	"math"

	"github.com/epitools/covidtrends/pkg/covid"
)

// ForwardFill replaces each NaN with the most recent preceding non-NaN
// value. Leading NaNs stay NaN: there is nothing to carry forward yet.
// The input slice is not modified.
func ForwardFill(vals []float64) []float64 {
	res := make([]float64, len(vals))
	last := math.NaN()
	for i, v := range vals {
		if !math.IsNaN(v) {
			last = v
		}
		res[i] = last
	}
	return res
}

// FillSeries forward-fills the designated key metrics of a location series
// in place. Daily deltas are left untouched.
func FillSeries(s *covid.LocationSeries) {
	for _, name := range covid.ForwardFillColumns() {
		if col := s.Column(name); col != nil {
			s.SetColumn(name, ForwardFill(col))
		}
	}
}
