package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Used for round-tripping covidtrends.yaml and Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	if s := c.Dataset.URL; s != "" {
		res = append(res, OptDatasetURL(s))
	}
	if d := c.Dataset.Timeout; d > 0 {
		res = append(res, OptDatasetTimeout(d))
	}
	res = append(res, OptDatasetProgress(c.Dataset.Progress))

	if len(c.Analysis.Countries) > 0 {
		res = append(res, OptCountries(c.Analysis.Countries))
	}
	if len(c.Analysis.Aggregates) > 0 {
		res = append(res, OptAggregates(c.Analysis.Aggregates))
	}
	if i := c.Analysis.RollingWindow; i > 0 {
		res = append(res, OptRollingWindow(i))
	}
	if i := c.Analysis.TopN; i > 0 {
		res = append(res, OptTopN(i))
	}

	if s := c.Output.Dir; s != "" {
		res = append(res, OptOutputDir(s))
	}
	if c.Output.WidthInches > 0 && c.Output.HeightInches > 0 {
		res = append(res, OptOutputSize(c.Output.WidthInches, c.Output.HeightInches))
	}
	res = append(res, OptOutputExcel(c.Output.Excel))

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		warn("%s cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		warn("%s has to be a positive number, ignoring %d", name, i)
	}
	return res
}

func isValidFloat(name string, f float64) bool {
	res := f > 0
	if !res {
		warn("%s has to be a positive number, ignoring %v", name, f)
	}
	return res
}

func isValidDuration(name string, d time.Duration) bool {
	res := d > 0
	if !res {
		warn("%s has to be a positive duration, ignoring %s", name, d)
	}
	return res
}

func isValidList(name string, items []string) bool {
	res := len(items) > 0
	if !res {
		warn("%s cannot be empty, ignoring", name)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"stderr": s, "stdout": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	warn("%s does not support '%s' as a value. Valid values are: %s. Ignoring",
		name, val, strings.Join(vals, ", "))
	return false
}
