// Package config provides configuration management for covidtrends.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings to stderr.
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > covidtrends.yaml
// > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with a warning - config remains valid
package config

import (
	"path/filepath"
	"time"

	"github.com/epitools/covidtrends/pkg/covid"
)

// AppName is used in generating file system paths and the env prefix.
const AppName = "covidtrends"

// DefaultDatasetURL is the upstream OWID per-country, per-day dataset.
const DefaultDatasetURL = "https://covid.ourworldindata.org/data/owid-covid-data.csv"

// Config represents the complete covidtrends configuration.
type Config struct {
	// Dataset describes where the CSV comes from.
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`

	// Analysis fixes the scope and parameters of the derived metrics.
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`

	// Output controls rendered artifacts.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DatasetConfig describes the dataset source.
type DatasetConfig struct {
	// URL is an http(s) URL or a local file path to the CSV.
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout bounds the whole download.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// Progress enables the download progress bar.
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

// AnalysisConfig fixes the analysis scope.
type AnalysisConfig struct {
	// Countries is the allow-list of locations the comparative charts and
	// rankings cover.
	Countries []string `mapstructure:"countries" yaml:"countries"`

	// Aggregates is the exclusion list of pseudo-locations (continents,
	// income bands, "World") that must never enter country-level views.
	Aggregates []string `mapstructure:"aggregates" yaml:"aggregates"`

	// RollingWindow is the trailing window of the smoothed new-cases
	// series, in observations.
	RollingWindow int `mapstructure:"rolling_window" yaml:"rolling_window"`

	// TopN is the length of the ranking tables.
	TopN int `mapstructure:"top_n" yaml:"top_n"`
}

// OutputConfig controls rendered artifacts.
type OutputConfig struct {
	// Dir receives chart PNGs, choropleth HTML and the optional workbook.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// WidthInches and HeightInches size the static charts.
	WidthInches  float64 `mapstructure:"width_inches" yaml:"width_inches"`
	HeightInches float64 `mapstructure:"height_inches" yaml:"height_inches"`

	// Excel enables writing the summary workbook (summary.xlsx).
	Excel bool `mapstructure:"excel" yaml:"excel"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
	// Destination is STDERR or STDOUT. Reports go to stdout, so logs
	// default to stderr.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	return &Config{
		Dataset: DatasetConfig{
			URL:      DefaultDatasetURL,
			Timeout:  5 * time.Minute,
			Progress: true,
		},
		Analysis: AnalysisConfig{
			Countries:     covid.DefaultCountries(),
			Aggregates:    covid.AggregateLocations(),
			RollingWindow: 7,
			TopN:          5,
		},
		Output: OutputConfig{
			Dir:          "covidtrends-output",
			WidthInches:  10,
			HeightInches: 6,
			Excel:        false,
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
	}
}

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/covidtrends by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ConfigFilePath returns the full path to the config file.
// Returns ~/.config/covidtrends/covidtrends.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), AppName+".yaml")
}
