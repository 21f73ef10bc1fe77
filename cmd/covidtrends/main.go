// Package main provides the covidtrends CLI application.
// covidtrends downloads a public COVID-19 dataset, derives summary
// metrics and renders charts and ranking tables.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
