package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/epitools/covidtrends/pkg/pipeline"
)

func getChartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charts",
		Short: "Download the dataset and render charts only",
		Long: `Charts downloads and cleans the dataset, derives summary metrics
and renders line and bar charts (PNG) and world choropleth maps (HTML)
into the output directory. No report is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(context.Background(),
				pipeline.Phases{Charts: true})
		},
	}
}
