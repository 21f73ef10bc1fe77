// Package covid defines the domain model for the analysis pipeline.
//
// This package has no I/O dependencies. It describes the externally-defined
// OWID CSV schema (column names, the date layout), the fixed analysis scope
// (countries of interest, aggregate pseudo-locations), and the in-memory
// representation of per-location time series.
//
// Missing numeric values are represented as NaN throughout. Derived metrics
// stay NaN wherever their inputs are NaN or a denominator is zero; nothing
// is silently coerced to zero.
package covid

// Column names of the upstream dataset. The schema is owned by the data
// provider; these constants are the only place the raw names appear.
const (
	ColLocation              = "location"
	ColISOCode               = "iso_code"
	ColDate                  = "date"
	ColTotalCases            = "total_cases"
	ColNewCases              = "new_cases"
	ColTotalDeaths           = "total_deaths"
	ColNewDeaths             = "new_deaths"
	ColTotalVaccinations     = "total_vaccinations"
	ColPeopleVaccinated      = "people_vaccinated"
	ColPeopleFullyVaccinated = "people_fully_vaccinated"
	ColPopulation            = "population"
)

// DateLayout is the date format used by the upstream dataset.
const DateLayout = "2006-01-02"

// RequiredColumns returns the columns the pipeline reads. A dataset missing
// any of them is rejected as malformed.
func RequiredColumns() []string {
	return []string{
		ColLocation,
		ColISOCode,
		ColDate,
		ColTotalCases,
		ColNewCases,
		ColTotalDeaths,
		ColNewDeaths,
		ColTotalVaccinations,
		ColPeopleVaccinated,
		ColPeopleFullyVaccinated,
		ColPopulation,
	}
}

// ForwardFillColumns returns the key metrics that are forward-filled within
// each location's chronological sequence. Daily deltas (new_cases,
// new_deaths) are deliberately not filled: carrying a delta forward would
// fabricate events.
func ForwardFillColumns() []string {
	return []string{
		ColTotalCases,
		ColTotalDeaths,
		ColTotalVaccinations,
		ColPeopleVaccinated,
		ColPeopleFullyVaccinated,
		ColPopulation,
	}
}

// DefaultCountries returns the fixed set of locations the comparative
// charts and rankings cover. Changing analysis scope is a configuration
// edit, not a code change.
func DefaultCountries() []string {
	return []string{
		"United States",
		"India",
		"Brazil",
		"France",
		"Germany",
		"United Kingdom",
		"Italy",
		"Russia",
		"Turkey",
		"Spain",
	}
}

// AggregateLocations returns the pseudo-locations the upstream dataset
// interleaves with real countries: continents, income bands and "World".
// These must never appear in country-level comparisons.
func AggregateLocations() []string {
	return []string{
		"World",
		"Africa",
		"Asia",
		"Europe",
		"European Union",
		"International",
		"North America",
		"Oceania",
		"South America",
		"High income",
		"Low income",
		"Lower middle income",
		"Upper middle income",
	}
}

// IsAggregate reports whether a location name belongs to the aggregate
// exclusion set.
func IsAggregate(location string) bool {
	for _, v := range AggregateLocations() {
		if v == location {
			return true
		}
	}
	return false
}
