package analysis

import (
	"github.com/epitools/covidtrends/pkg/covid"
)

// Summary is the fully transformed output of the analysis phase: the
// selected countries with their derived columns populated, plus latest
// snapshots for both the selection and the full country-level view (the
// latter feeds the choropleth maps).
type Summary struct {
	Selected       []*covid.LocationSeries
	Snapshots      []covid.Snapshot
	WorldSnapshots []covid.Snapshot
}

// Summarize runs the transform phase over a cleaned dataset: forward-fill
// of the key metrics, smoothed new cases, death rate and vaccination
// percentage per location, then latest snapshots.
//
// The vaccination percentage uses each location's latest known population
// for every observation, matching the source analysis.
func Summarize(ds *covid.Dataset, window int) *Summary {
	// Selected series may alias entries of Countries; transform each
	// series exactly once.
	done := make(map[*covid.LocationSeries]bool)
	for _, s := range ds.Selected {
		if !done[s] {
			transform(s, window)
			done[s] = true
		}
	}
	for _, s := range ds.Countries {
		if !done[s] {
			transform(s, window)
			done[s] = true
		}
	}

	return &Summary{
		Selected:       ds.Selected,
		Snapshots:      Snapshots(ds.Selected),
		WorldSnapshots: Snapshots(ds.Countries),
	}
}

func transform(s *covid.LocationSeries, window int) {
	FillSeries(s)
	s.SmoothedNewCases = RollingMean(s.NewCases, window)
	s.DeathRate = DeathRate(s.TotalDeaths, s.TotalCases)
	s.PctFullyVaccinated = VaccinationPct(s.PeopleFullyVaccinated, s.LatestPopulation())
}
