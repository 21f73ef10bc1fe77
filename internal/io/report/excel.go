package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/covid"
)

const workbookName = "summary.xlsx"

// writeWorkbook exports the latest snapshot of every selected country and
// the ranking tables to summary.xlsx in the output directory.
func (r *Reporter) writeWorkbook(sum *analysis.Summary) error {
	if err := os.MkdirAll(r.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const latest = "Latest"
	f.SetSheetName("Sheet1", latest)

	headers := []string{
		"Location", "ISO code", "Date", "Total cases", "Total deaths",
		"Death rate (%)", "Fully vaccinated (%)", "Population",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(latest, cell, h); err != nil {
			return err
		}
		_ = f.SetColWidth(latest, cell[:1], cell[:1], 18)
	}

	for i, s := range sum.Snapshots {
		row := i + 2
		cells := []any{
			s.Location, s.ISOCode, s.Date.Format(covid.DateLayout),
			cellValue(s.TotalCases), cellValue(s.TotalDeaths),
			cellValue(s.DeathRate),
			cellValue(analysis.ClampPct(s.PctFullyVaccinated)),
			cellValue(s.Population),
		}
		for j, v := range cells {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(latest, cell, v); err != nil {
				return err
			}
		}
	}

	if err := r.writeRankingsSheet(f, sum); err != nil {
		return err
	}

	path := filepath.Join(r.cfg.Output.Dir, workbookName)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook: %w", err)
	}
	r.logger.Info("workbook written", "path", path)
	return nil
}

func (r *Reporter) writeRankingsSheet(f *excelize.File, sum *analysis.Summary) error {
	const sheet = "Rankings"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	tables := []struct {
		title  string
		metric analysis.Metric
	}{
		{"By total cases", analysis.ByTotalCases},
		{"By total deaths", analysis.ByTotalDeaths},
		{"By vaccination rate", analysis.ByVaccination},
	}

	row := 1
	for _, tbl := range tables {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tbl.title); err != nil {
			return err
		}
		row++
		for i, s := range analysis.TopN(sum.Snapshots, r.cfg.Analysis.TopN, tbl.metric) {
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1); err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.Location); err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cellValue(tbl.metric(s))); err != nil {
				return err
			}
			row++
		}
		row++
	}
	return nil
}

// cellValue converts NaN to an empty cell; spreadsheets have no NaN.
func cellValue(v float64) any {
	if math.IsNaN(v) {
		return ""
	}
	return v
}
