// Package report prints the ranking tables and narrative findings to
// stdout, and optionally writes a summary workbook next to the charts.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/config"
	"github.com/epitools/covidtrends/pkg/covid"
)

// Reporter implements pipeline.Reporter.
type Reporter struct {
	cfg    *config.Config
	logger *slog.Logger
	w      io.Writer
}

// NewReporter creates a Reporter writing to stdout.
func NewReporter(cfg *config.Config, logger *slog.Logger) *Reporter {
	return NewReporterWithWriter(cfg, logger, os.Stdout)
}

// NewReporterWithWriter creates a Reporter writing to w. Split out so
// tests can capture output.
func NewReporterWithWriter(cfg *config.Config, logger *slog.Logger, w io.Writer) *Reporter {
	return &Reporter{cfg: cfg, logger: logger, w: w}
}

// Report prints the top-N tables and findings. When the Excel output is
// enabled it also writes summary.xlsx into the output directory.
func (r *Reporter) Report(_ context.Context, sum *analysis.Summary) error {
	n := r.cfg.Analysis.TopN

	tables := []struct {
		title  string
		metric analysis.Metric
		format func(float64) string
	}{
		{"Top countries by total cases", analysis.ByTotalCases, count},
		{"Top countries by total deaths", analysis.ByTotalDeaths, count},
		{"Top countries by vaccination rate", analysis.ByVaccination, percent},
	}

	for _, tbl := range tables {
		top := analysis.TopN(sum.Snapshots, n, tbl.metric)
		if err := r.printTable(tbl.title, top, tbl.metric, tbl.format); err != nil {
			return err
		}
	}

	if err := r.printFindings(sum); err != nil {
		return err
	}

	if r.cfg.Output.Excel {
		if err := r.writeWorkbook(sum); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) printTable(title string, top []covid.Snapshot,
	metric analysis.Metric, format func(float64) string,
) error {
	if _, err := fmt.Fprintf(r.w, "\n%s\n", title); err != nil {
		return err
	}
	if len(top) == 0 {
		_, err := fmt.Fprintln(r.w, "  (no data)")
		return err
	}
	for i, s := range top {
		_, err := fmt.Fprintf(r.w, "  %d. %-16s %14s  (as of %s)\n",
			i+1, s.Location, format(metric(s)), s.Date.Format(covid.DateLayout))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) printFindings(sum *analysis.Summary) error {
	if _, err := fmt.Fprintf(r.w, "\nFindings\n"); err != nil {
		return err
	}

	var totalCases, totalDeaths float64
	for _, s := range sum.Snapshots {
		if !math.IsNaN(s.TotalCases) {
			totalCases += s.TotalCases
		}
		if !math.IsNaN(s.TotalDeaths) {
			totalDeaths += s.TotalDeaths
		}
	}

	lines := []string{
		fmt.Sprintf("The %d selected countries report %s cases and %s deaths combined.",
			len(sum.Snapshots), count(totalCases), count(totalDeaths)),
	}
	if top := analysis.TopN(sum.Snapshots, 1, analysis.ByTotalCases); len(top) > 0 {
		lines = append(lines, fmt.Sprintf(
			"%s leads the selection in total cases with %s.",
			top[0].Location, count(top[0].TotalCases)))
	}
	if top := analysis.TopN(sum.Snapshots, 1, analysis.ByVaccination); len(top) > 0 {
		lines = append(lines, fmt.Sprintf(
			"%s has the highest share of fully vaccinated people at %s.",
			top[0].Location, percent(top[0].PctFullyVaccinated)))
	}
	if top := analysis.TopN(sum.Snapshots, 1, analysis.ByDeathRate); len(top) > 0 {
		lines = append(lines, fmt.Sprintf(
			"%s shows the highest case-fatality rate at %s.",
			top[0].Location, percent(top[0].DeathRate)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(r.w, "  - %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func count(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return humanize.Comma(int64(v))
}

func percent(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", analysis.ClampPct(v))
}
