package config

import (
	"strings"
	"time"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatasetURL sets the dataset URL or local file path.
func OptDatasetURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset URL", s) {
			c.Dataset.URL = s
		}
	}
}

// OptDatasetTimeout bounds the dataset download.
func OptDatasetTimeout(d time.Duration) Option {
	return func(c *Config) {
		if isValidDuration("Dataset Timeout", d) {
			c.Dataset.Timeout = d
		}
	}
}

// OptDatasetProgress enables or disables the download progress bar.
func OptDatasetProgress(b bool) Option {
	return func(c *Config) {
		c.Dataset.Progress = b
	}
}

// OptCountries sets the countries-of-interest allow-list.
func OptCountries(locations []string) Option {
	cleaned := cleanList(locations)
	return func(c *Config) {
		if isValidList("Analysis Countries", cleaned) {
			c.Analysis.Countries = cleaned
		}
	}
}

// OptAggregates sets the aggregate pseudo-location exclusion list.
func OptAggregates(locations []string) Option {
	cleaned := cleanList(locations)
	return func(c *Config) {
		if isValidList("Analysis Aggregates", cleaned) {
			c.Analysis.Aggregates = cleaned
		}
	}
}

// OptRollingWindow sets the trailing window of the smoothed new-cases
// series, in observations.
func OptRollingWindow(i int) Option {
	return func(c *Config) {
		if isValidInt("Rolling Window", i) {
			c.Analysis.RollingWindow = i
		}
	}
}

// OptTopN sets the length of the ranking tables.
func OptTopN(i int) Option {
	return func(c *Config) {
		if isValidInt("Top N", i) {
			c.Analysis.TopN = i
		}
	}
}

// OptOutputDir sets the directory rendered artifacts are written to.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Dir", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputSize sets the static chart dimensions in inches.
func OptOutputSize(width, height float64) Option {
	return func(c *Config) {
		if isValidFloat("Output Width", width) &&
			isValidFloat("Output Height", height) {
			c.Output.WidthInches = width
			c.Output.HeightInches = height
		}
	}
}

// OptOutputExcel enables or disables the summary workbook.
func OptOutputExcel(b bool) Option {
	return func(c *Config) {
		c.Output.Excel = b
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where logs go.
// Valid values: "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

func cleanList(items []string) []string {
	var res []string
	for _, v := range items {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
