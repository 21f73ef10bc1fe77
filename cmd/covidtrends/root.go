package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	chartsio "github.com/epitools/covidtrends/internal/io/charts"
	ioconfig "github.com/epitools/covidtrends/internal/io/config"
	"github.com/epitools/covidtrends/internal/io/dataset"
	"github.com/epitools/covidtrends/internal/io/fetch"
	reportio "github.com/epitools/covidtrends/internal/io/report"
	pkgconfig "github.com/epitools/covidtrends/pkg/config"
	"github.com/epitools/covidtrends/pkg/logger"
	"github.com/epitools/covidtrends/pkg/pipeline"
)

var (
	cfgFile string
	cfg     *pkgconfig.Config
	log     *slog.Logger
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "covidtrends",
		Short: "covidtrends analyzes a public COVID-19 dataset",
		Long: `covidtrends is a one-shot analysis tool for the OWID COVID-19 dataset.

It downloads the per-country, per-day CSV, cleans it (date parsing,
aggregate-row exclusion, forward-filling of cumulative metrics), derives
summary metrics (7-day smoothed new cases, case-fatality rate,
vaccination percentage) and produces:
  - line charts (linear and log scale) and bar charts as PNG
  - world choropleth maps as HTML
  - top-N ranking tables and findings on stdout

Subcommands select the output phase:
  - run:    charts and report
  - charts: charts only
  - report: report only

Configuration precedence (highest to lowest):
  1. CLI flags (--source, --countries, etc.)
  2. Environment variables (COVIDTRENDS_*)
  3. Config file (covidtrends.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (dataset.url → COVIDTRENDS_DATASET_URL).

  Examples:
    COVIDTRENDS_DATASET_URL        Dataset URL or local path
    COVIDTRENDS_ANALYSIS_TOP_N     Ranking table length
    COVIDTRENDS_OUTPUT_DIR         Chart output directory
    COVIDTRENDS_LOG_LEVEL          Log level (debug/info/warn/error)`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}
				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults
						fmt.Fprintf(os.Stderr,
							"Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Fprintf(os.Stderr,
							"Generated default config at: %s\n", generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			if cfg, err = ioconfig.BindFlags(cmd, cfg); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			switch result.Source {
			case "file":
				fmt.Fprintf(os.Stderr, "Using config from: %s\n", result.SourcePath)
			case "defaults+env":
				fmt.Fprintln(os.Stderr,
					"Using built-in defaults with environment variable overrides")
			case "defaults":
				fmt.Fprintln(os.Stderr, "Using built-in defaults (no config file)")
			}

			log = logger.New(&cfg.Log).With("run_id", uuid.NewString())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./covidtrends.yaml or ~/.config/covidtrends/)")
	rootCmd.PersistentFlags().String("source", "",
		"dataset URL or local CSV path")
	rootCmd.PersistentFlags().Duration("timeout", 0,
		"download timeout")
	rootCmd.PersistentFlags().Bool("no-progress", false,
		"disable the download progress bar")
	rootCmd.PersistentFlags().StringSlice("countries", nil,
		"countries of interest (comma-separated)")
	rootCmd.PersistentFlags().Int("window", 0,
		"rolling window for smoothed new cases, in observations")
	rootCmd.PersistentFlags().Int("top", 0,
		"length of the ranking tables")
	rootCmd.PersistentFlags().String("output", "",
		"output directory for rendered charts")
	rootCmd.PersistentFlags().Bool("excel", false,
		"also write summary.xlsx to the output directory")
	rootCmd.PersistentFlags().String("log-level", "",
		"log level (debug/info/warn/error)")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for covidtrends")

	rootCmd.AddCommand(getRunCmd())
	rootCmd.AddCommand(getChartsCmd())
	rootCmd.AddCommand(getReportCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *pkgconfig.Config {
	return cfg
}

// runPipeline wires the pipeline from the loaded config and executes the
// selected phases.
func runPipeline(ctx context.Context, phases pipeline.Phases) error {
	cfg := getConfig()

	client := fetch.New(cfg.Dataset.Timeout, cfg.Dataset.Progress, log)
	loader := dataset.NewLoader(client, cfg, log)
	renderer := chartsio.NewRenderer(cfg, log)
	reporter := reportio.NewReporter(cfg, log)

	p := pipeline.New(loader, renderer, reporter, log, cfg.Analysis.RollingWindow)
	return p.Run(ctx, phases)
}
