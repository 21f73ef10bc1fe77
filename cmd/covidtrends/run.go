package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/epitools/covidtrends/pkg/pipeline"
)

func getRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Download the dataset, render all charts and print the report",
		Long: `Run executes the full analysis: download and clean the dataset,
derive summary metrics, render line, bar and choropleth charts into the
output directory, and print top-N ranking tables and findings to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(context.Background(),
				pipeline.Phases{Charts: true, Report: true})
		},
	}
}
