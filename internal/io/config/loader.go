// Package config provides I/O operations for loading configuration from
// files, environment variables and flags. This is an impure package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/epitools/covidtrends/pkg/config"
)

// LoadResult reports where the effective configuration came from.
type LoadResult struct {
	Config *config.Config
	// Source is "file", "defaults+env" or "defaults".
	Source     string
	SourcePath string
}

// Load reads configuration from a YAML file and returns a Config merged
// over the built-in defaults. If configPath is empty, it searches default
// locations:
//   - ./covidtrends.yaml
//   - ~/.config/covidtrends/covidtrends.yaml
//
// Environment variables with the COVIDTRENDS_ prefix override file values
// (dataset.url becomes COVIDTRENDS_DATASET_URL).
func Load(configPath string) (*LoadResult, error) {
	cfg := config.New()

	v := viper.New()
	v.SetConfigType("yaml")
	registerDefaults(v, cfg)

	v.SetEnvPrefix(strings.ToUpper(config.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(config.AppName)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(config.ConfigDir(homeDir))
		}
	}

	source := "file"
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// An explicitly named config file must exist.
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		source = "defaults"
		if hasEnvOverrides() {
			source = "defaults+env"
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Round-trip through options so loaded values get the same validation
	// as flag values; invalid entries fall back to defaults with warnings.
	validated := config.New()
	validated.Update(cfg.ToOptions())

	return &LoadResult{
		Config:     validated,
		Source:     source,
		SourcePath: v.ConfigFileUsed(),
	}, nil
}

// registerDefaults makes every key known to viper so environment
// variables are picked up by Unmarshal.
func registerDefaults(v *viper.Viper, cfg *config.Config) {
	v.SetDefault("dataset.url", cfg.Dataset.URL)
	v.SetDefault("dataset.timeout", cfg.Dataset.Timeout)
	v.SetDefault("dataset.progress", cfg.Dataset.Progress)
	v.SetDefault("analysis.countries", cfg.Analysis.Countries)
	v.SetDefault("analysis.aggregates", cfg.Analysis.Aggregates)
	v.SetDefault("analysis.rolling_window", cfg.Analysis.RollingWindow)
	v.SetDefault("analysis.top_n", cfg.Analysis.TopN)
	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("output.width_inches", cfg.Output.WidthInches)
	v.SetDefault("output.height_inches", cfg.Output.HeightInches)
	v.SetDefault("output.excel", cfg.Output.Excel)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.destination", cfg.Log.Destination)
}

func hasEnvOverrides() bool {
	prefix := strings.ToUpper(config.AppName) + "_"
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

// ConfigFileExists reports whether a config file is present in one of the
// default search locations.
func ConfigFileExists() (bool, error) {
	if _, err := os.Stat(config.AppName + ".yaml"); err == nil {
		return true, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return false, fmt.Errorf("failed to get user home directory: %w", err)
	}
	if _, err := os.Stat(config.ConfigFilePath(homeDir)); err == nil {
		return true, nil
	}
	return false, nil
}

// BindFlags overrides config values with CLI flags that were set on the
// command. CLI flags take precedence over file and environment values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var opts []config.Option
	if cmd.Flags().Changed("source") {
		opts = append(opts, config.OptDatasetURL(v.GetString("source")))
	}
	if cmd.Flags().Changed("timeout") {
		opts = append(opts, config.OptDatasetTimeout(v.GetDuration("timeout")))
	}
	if cmd.Flags().Changed("no-progress") {
		opts = append(opts, config.OptDatasetProgress(!v.GetBool("no-progress")))
	}
	if cmd.Flags().Changed("countries") {
		opts = append(opts, config.OptCountries(v.GetStringSlice("countries")))
	}
	if cmd.Flags().Changed("window") {
		opts = append(opts, config.OptRollingWindow(v.GetInt("window")))
	}
	if cmd.Flags().Changed("top") {
		opts = append(opts, config.OptTopN(v.GetInt("top")))
	}
	if cmd.Flags().Changed("output") {
		opts = append(opts, config.OptOutputDir(v.GetString("output")))
	}
	if cmd.Flags().Changed("excel") {
		opts = append(opts, config.OptOutputExcel(v.GetBool("excel")))
	}
	if cmd.Flags().Changed("log-level") {
		opts = append(opts, config.OptLogLevel(v.GetString("log-level")))
	}

	cfg.Update(opts)
	return cfg, nil
}

// defaultPathFor returns the path the generated config is written to.
func defaultPathFor(homeDir string) string {
	return filepath.Join(config.ConfigDir(homeDir), config.AppName+".yaml")
}
