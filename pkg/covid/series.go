package covid

import (
	"math"
	"sort"
	"time"
)

// LocationSeries holds the chronologically sorted observations of a single
// location in column-oriented form. Raw fields come straight from the
// dataset; derived fields are filled in by the analysis step and stay NaN
// until then.
type LocationSeries struct {
	Location string
	ISOCode  string

	// Raw fields.
	Dates                 []time.Time
	TotalCases            []float64
	NewCases              []float64
	TotalDeaths           []float64
	NewDeaths             []float64
	TotalVaccinations     []float64
	PeopleVaccinated      []float64
	PeopleFullyVaccinated []float64
	Population            []float64

	// Derived fields.
	SmoothedNewCases   []float64
	DeathRate          []float64
	PctFullyVaccinated []float64
}

// Len returns the number of observations.
func (s *LocationSeries) Len() int { return len(s.Dates) }

// SortByDate sorts all columns of the series chronologically.
func (s *LocationSeries) SortByDate() {
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.Dates[idx[a]].Before(s.Dates[idx[b]])
	})

	s.Dates = reorderTimes(s.Dates, idx)
	for _, col := range s.columns() {
		*col = reorderFloats(*col, idx)
	}
}

// LatestPopulation returns the last non-missing population value, or NaN if
// population was never reported for this location.
func (s *LocationSeries) LatestPopulation() float64 {
	for i := s.Len() - 1; i >= 0; i-- {
		if !math.IsNaN(s.Population[i]) {
			return s.Population[i]
		}
	}
	return math.NaN()
}

func (s *LocationSeries) columns() []*[]float64 {
	return []*[]float64{
		&s.TotalCases, &s.NewCases,
		&s.TotalDeaths, &s.NewDeaths,
		&s.TotalVaccinations, &s.PeopleVaccinated, &s.PeopleFullyVaccinated,
		&s.Population,
		&s.SmoothedNewCases, &s.DeathRate, &s.PctFullyVaccinated,
	}
}

// Column returns a raw metric column by its dataset column name. Derived
// columns are not addressable this way.
func (s *LocationSeries) Column(name string) []float64 {
	switch name {
	case ColTotalCases:
		return s.TotalCases
	case ColNewCases:
		return s.NewCases
	case ColTotalDeaths:
		return s.TotalDeaths
	case ColNewDeaths:
		return s.NewDeaths
	case ColTotalVaccinations:
		return s.TotalVaccinations
	case ColPeopleVaccinated:
		return s.PeopleVaccinated
	case ColPeopleFullyVaccinated:
		return s.PeopleFullyVaccinated
	case ColPopulation:
		return s.Population
	}
	return nil
}

// SetColumn replaces a raw metric column by its dataset column name.
func (s *LocationSeries) SetColumn(name string, vals []float64) {
	switch name {
	case ColTotalCases:
		s.TotalCases = vals
	case ColNewCases:
		s.NewCases = vals
	case ColTotalDeaths:
		s.TotalDeaths = vals
	case ColNewDeaths:
		s.NewDeaths = vals
	case ColTotalVaccinations:
		s.TotalVaccinations = vals
	case ColPeopleVaccinated:
		s.PeopleVaccinated = vals
	case ColPeopleFullyVaccinated:
		s.PeopleFullyVaccinated = vals
	case ColPopulation:
		s.Population = vals
	}
}

func reorderFloats(vals []float64, idx []int) []float64 {
	if vals == nil {
		return nil
	}
	res := make([]float64, len(vals))
	for i, j := range idx {
		res[i] = vals[j]
	}
	return res
}

func reorderTimes(vals []time.Time, idx []int) []time.Time {
	res := make([]time.Time, len(vals))
	for i, j := range idx {
		res[i] = vals[j]
	}
	return res
}

// Snapshot is the chronologically last observation of a location together
// with its derived metrics. It feeds bar charts, choropleth maps and the
// ranking tables.
type Snapshot struct {
	Location           string
	ISOCode            string
	Date               time.Time
	TotalCases         float64
	TotalDeaths        float64
	NewCases           float64
	SmoothedNewCases   float64
	DeathRate          float64
	PctFullyVaccinated float64
	Population         float64
}

// Dataset is the cleaned output of the loader: per-location series
// partitioned into the three views the pipeline works with.
type Dataset struct {
	// Countries holds every country-level location (aggregates excluded).
	Countries []*LocationSeries
	// Aggregates holds continent and other pseudo-location rows.
	Aggregates []*LocationSeries
	// Selected holds the configured countries of interest.
	Selected []*LocationSeries
}
