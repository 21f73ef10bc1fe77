package analysis

import (
	"math"

	"github.com/epitools/covidtrends/pkg/covid"
)

// Latest returns the chronologically last observation of a series together
// with its derived metrics. The series must be sorted by date.
func Latest(s *covid.LocationSeries) covid.Snapshot {
	snap := covid.Snapshot{
		Location:           s.Location,
		ISOCode:            s.ISOCode,
		TotalCases:         math.NaN(),
		TotalDeaths:        math.NaN(),
		NewCases:           math.NaN(),
		SmoothedNewCases:   math.NaN(),
		DeathRate:          math.NaN(),
		PctFullyVaccinated: math.NaN(),
		Population:         s.LatestPopulation(),
	}
	n := s.Len()
	if n == 0 {
		return snap
	}
	i := n - 1
	snap.Date = s.Dates[i]
	snap.TotalCases = at(s.TotalCases, i)
	snap.TotalDeaths = at(s.TotalDeaths, i)
	snap.NewCases = at(s.NewCases, i)
	snap.SmoothedNewCases = at(s.SmoothedNewCases, i)
	snap.DeathRate = at(s.DeathRate, i)
	snap.PctFullyVaccinated = at(s.PctFullyVaccinated, i)
	return snap
}

// Snapshots returns the latest snapshot of every series.
func Snapshots(series []*covid.LocationSeries) []covid.Snapshot {
	res := make([]covid.Snapshot, 0, len(series))
	for _, s := range series {
		res = append(res, Latest(s))
	}
	return res
}

func at(vals []float64, i int) float64 {
	if i < 0 || i >= len(vals) {
		return math.NaN()
	}
	return vals[i]
}
