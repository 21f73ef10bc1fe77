package report_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/epitools/covidtrends/internal/io/report"
	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/config"
	"github.com/epitools/covidtrends/pkg/covid"
)

func testSummary() *analysis.Summary {
	date := time.Date(2021, 11, 1, 0, 0, 0, 0, time.UTC)
	snaps := []covid.Snapshot{
		{Location: "United States", ISOCode: "USA", Date: date,
			TotalCases: 45_000_000, TotalDeaths: 750_000,
			DeathRate: 1.66, PctFullyVaccinated: 58, Population: 331_000_000},
		{Location: "India", ISOCode: "IND", Date: date,
			TotalCases: 34_000_000, TotalDeaths: 450_000,
			DeathRate: 1.32, PctFullyVaccinated: 30, Population: 1_380_000_000},
		{Location: "Brazil", ISOCode: "BRA", Date: date,
			TotalCases: 21_000_000, TotalDeaths: 610_000,
			DeathRate: 2.9, PctFullyVaccinated: 55, Population: 212_000_000},
		{Location: "Germany", ISOCode: "DEU", Date: date,
			TotalCases: 4_500_000, TotalDeaths: 96_000,
			DeathRate: 2.13, PctFullyVaccinated: 66, Population: 83_000_000},
		{Location: "France", ISOCode: "FRA", Date: date,
			TotalCases: 7_000_000, TotalDeaths: 117_000,
			DeathRate: 1.67, PctFullyVaccinated: 68, Population: 67_000_000},
		{Location: "Turkey", ISOCode: "TUR", Date: date,
			TotalCases: 7_800_000, TotalDeaths: 68_000,
			DeathRate: 0.87, PctFullyVaccinated: math.NaN(), Population: 84_000_000},
	}
	return &analysis.Summary{Snapshots: snaps, WorldSnapshots: snaps}
}

func newReporter(t *testing.T, opts ...config.Option) (*report.Reporter, *bytes.Buffer, *config.Config) {
	t.Helper()
	cfg := config.New()
	cfg.Update(opts)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return report.NewReporterWithWriter(cfg, logger, &buf), &buf, cfg
}

func TestReportTables(t *testing.T) {
	r, buf, _ := newReporter(t)
	require.NoError(t, r.Report(context.Background(), testSummary()))
	out := buf.String()

	assert.Contains(t, out, "Top countries by total cases")
	assert.Contains(t, out, "Top countries by total deaths")
	assert.Contains(t, out, "Top countries by vaccination rate")

	// Ranked descending: United States first by cases.
	assert.Contains(t, out, "1. United States")
	assert.Contains(t, out, "45,000,000")
}

func TestReportTopNTruncation(t *testing.T) {
	r, buf, _ := newReporter(t, config.OptTopN(2))
	require.NoError(t, r.Report(context.Background(), testSummary()))

	assert.Contains(t, buf.String(), "2. India")
	assert.NotContains(t, buf.String(), "3. Brazil")
}

func TestReportExcludesUnrankable(t *testing.T) {
	r, buf, _ := newReporter(t)
	require.NoError(t, r.Report(context.Background(), testSummary()))

	// Turkey has no vaccination value; it cannot appear in that table.
	out := buf.String()
	idx := bytes.Index([]byte(out), []byte("vaccination rate"))
	require.Greater(t, idx, 0)
	assert.NotContains(t, out[idx:], "Turkey")
}

func TestReportFindings(t *testing.T) {
	r, buf, _ := newReporter(t)
	require.NoError(t, r.Report(context.Background(), testSummary()))
	out := buf.String()

	assert.Contains(t, out, "Findings")
	assert.Contains(t, out, "United States leads the selection in total cases")
	assert.Contains(t, out, "France has the highest share of fully vaccinated people")
	assert.Contains(t, out, "Brazil shows the highest case-fatality rate")
}

func TestReportWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r, _, cfg := newReporter(t,
		config.OptOutputDir(dir),
		config.OptOutputExcel(true),
	)
	require.NoError(t, r.Report(context.Background(), testSummary()))

	path := filepath.Join(cfg.Output.Dir, "summary.xlsx")
	_, err := os.Stat(path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Latest")
	assert.Contains(t, f.GetSheetList(), "Rankings")

	loc, err := f.GetCellValue("Latest", "A2")
	require.NoError(t, err)
	assert.Equal(t, "United States", loc)
}

func TestReportNoWorkbookByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r, _, _ := newReporter(t, config.OptOutputDir(dir))
	require.NoError(t, r.Report(context.Background(), testSummary()))

	_, err := os.Stat(filepath.Join(dir, "summary.xlsx"))
	assert.True(t, os.IsNotExist(err))
}
