// Package charts renders the analysis output: time-series line charts
// (linear and log scale) and bar charts as PNG via gonum/plot, and world
// choropleth maps as self-contained HTML via go-echarts.
//
// Rendering is best-effort: a failed choropleth (typically missing
// geometry assets offline) is logged and skipped, and the caller treats
// any returned error as non-fatal for the rest of the run.
package charts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/config"
)

// Renderer implements pipeline.Renderer.
type Renderer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(cfg *config.Config, logger *slog.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// Render draws every chart into the output directory.
func (r *Renderer) Render(_ context.Context, sum *analysis.Summary) error {
	if err := os.MkdirAll(r.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	lines := []struct {
		col   analysis.Column
		title string
		yLab  string
		file  string
		log   bool
	}{
		{analysis.TotalCasesColumn, "Total COVID-19 cases", "Cases", "total_cases.png", false},
		{analysis.TotalCasesColumn, "Total COVID-19 cases (log scale)", "Cases", "total_cases_log.png", true},
		{analysis.TotalDeathsColumn, "Total COVID-19 deaths", "Deaths", "total_deaths.png", false},
		{analysis.TotalDeathsColumn, "Total COVID-19 deaths (log scale)", "Deaths", "total_deaths_log.png", true},
		{analysis.SmoothedColumn,
			fmt.Sprintf("Daily new cases (%d-day average)", r.cfg.Analysis.RollingWindow),
			"New cases", "smoothed_new_cases.png", false},
	}
	for _, v := range lines {
		pv := analysis.PivotMetric(sum.Selected, v.col)
		if err := r.lineChart(pv, v.title, v.yLab, v.file, v.log); err != nil {
			return err
		}
	}

	bars := []struct {
		metric analysis.Metric
		title  string
		yLab   string
		file   string
		clamp  bool
	}{
		{analysis.ByTotalCases, "Total cases by country", "Cases", "bar_total_cases.png", false},
		{analysis.ByTotalDeaths, "Total deaths by country", "Deaths", "bar_total_deaths.png", false},
		{analysis.ByVaccination, "Fully vaccinated (% of population)", "Percent", "bar_pct_vaccinated.png", true},
	}
	for _, v := range bars {
		if err := r.barChart(sum.Snapshots, v.metric, v.title, v.yLab, v.file, v.clamp); err != nil {
			return err
		}
	}

	// Choropleths bind latest values of every country to the world map.
	// Failures here are tolerated: log and move on.
	maps := []struct {
		metric analysis.Metric
		title  string
		file   string
		clamp  bool
	}{
		{analysis.ByTotalCases, "Total cases", "map_total_cases.html", false},
		{analysis.ByTotalDeaths, "Total deaths", "map_total_deaths.html", false},
		{analysis.ByVaccination, "Fully vaccinated (%)", "map_pct_vaccinated.html", true},
	}
	for _, v := range maps {
		if err := r.choropleth(sum.WorldSnapshots, v.metric, v.title, v.file, v.clamp); err != nil {
			r.logger.Warn("choropleth rendering failed, skipping",
				"file", v.file, "error", err)
		}
	}

	r.logger.Info("charts rendered", "dir", r.cfg.Output.Dir)
	return nil
}

func (r *Renderer) outPath(file string) string {
	return filepath.Join(r.cfg.Output.Dir, file)
}
