package analysis

import "math"

// DeathRate computes total deaths as a percentage of total cases for each
// observation. The result is NaN wherever deaths or cases are missing, or
// cases are zero: a case-fatality rate without cases is undefined, not 0%.
func DeathRate(deaths, cases []float64) []float64 {
	res := make([]float64, len(deaths))
	for i := range deaths {
		if i >= len(cases) {
			res[i] = math.NaN()
			continue
		}
		d, c := deaths[i], cases[i]
		if math.IsNaN(d) || math.IsNaN(c) || c == 0 {
			res[i] = math.NaN()
			continue
		}
		res[i] = d / c * 100
	}
	return res
}

// VaccinationPct computes fully-vaccinated counts as a percentage of a
// location's latest known population. The stored value is not clamped;
// clamping to [0,100] is a display concern (see ClampPct).
func VaccinationPct(fullyVaccinated []float64, population float64) []float64 {
	res := make([]float64, len(fullyVaccinated))
	for i, v := range fullyVaccinated {
		if math.IsNaN(v) || math.IsNaN(population) || population == 0 {
			res[i] = math.NaN()
			continue
		}
		res[i] = v / population * 100
	}
	return res
}

// ClampPct limits a percentage to [0,100] for display. NaN passes through.
func ClampPct(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return v
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
