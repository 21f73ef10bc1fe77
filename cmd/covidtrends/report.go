package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/epitools/covidtrends/pkg/pipeline"
)

func getReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Download the dataset and print the report only",
		Long: `Report downloads and cleans the dataset, derives summary metrics
and prints top-N ranking tables and findings to stdout. No charts are
rendered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(context.Background(),
				pipeline.Phases{Report: true})
		},
	}
}
