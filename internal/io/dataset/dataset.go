// Package dataset loads the raw CSV into memory and cleans it: schema
// validation, date parsing, partitioning into country-level, aggregate and
// selected views, chronological sorting per location.
package dataset

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/epitools/covidtrends/internal/io/fetch"
	"github.com/epitools/covidtrends/pkg/config"
	"github.com/epitools/covidtrends/pkg/covid"
)

// Loader implements pipeline.Fetcher over an HTTP or file source.
type Loader struct {
	client *fetch.Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(client *fetch.Client, cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{client: client, cfg: cfg, logger: logger}
}

// Fetch downloads, parses and cleans the dataset. Any failure here is
// fatal for the run: unreachable source, malformed CSV, missing required
// columns or unparseable dates.
func (l *Loader) Fetch(ctx context.Context) (*covid.Dataset, error) {
	rc, err := l.client.Open(ctx, l.cfg.Dataset.URL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	df := dataframe.ReadCSV(rc,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(metricTypes()),
		dataframe.NaNValues([]string{"", "NA", "NaN"}),
	)
	if df.Err != nil {
		return nil, ParseError(df.Err)
	}

	if err := validateColumns(df.Names()); err != nil {
		return nil, err
	}

	// Keep only the columns the pipeline reads.
	df = df.Select(covid.RequiredColumns())
	if df.Err != nil {
		return nil, ParseError(df.Err)
	}
	if df.Nrow() == 0 {
		return nil, EmptyDatasetError(l.cfg.Dataset.URL)
	}
	l.logger.Info("dataset parsed", "rows", humanize.Comma(int64(df.Nrow())))

	bySeries, order, err := groupByLocation(df)
	if err != nil {
		return nil, err
	}

	return l.partition(bySeries, order), nil
}

func metricTypes() map[string]series.Type {
	types := make(map[string]series.Type)
	for _, col := range covid.RequiredColumns() {
		switch col {
		case covid.ColLocation, covid.ColISOCode, covid.ColDate:
			types[col] = series.String
		default:
			types[col] = series.Float
		}
	}
	return types
}

func validateColumns(names []string) error {
	present := make(map[string]bool, len(names))
	for _, v := range names {
		present[v] = true
	}
	for _, col := range covid.RequiredColumns() {
		if !present[col] {
			return MissingColumnError(col)
		}
	}
	return nil
}

// groupByLocation converts the frame into per-location column-oriented
// series, preserving first-seen location order.
func groupByLocation(df dataframe.DataFrame) (map[string]*covid.LocationSeries, []string, error) {
	locations := df.Col(covid.ColLocation).Records()
	isoCodes := df.Col(covid.ColISOCode).Records()
	dates := df.Col(covid.ColDate).Records()

	metrics := make(map[string][]float64)
	for _, col := range covid.RequiredColumns() {
		switch col {
		case covid.ColLocation, covid.ColISOCode, covid.ColDate:
		default:
			metrics[col] = df.Col(col).Float()
		}
	}

	bySeries := make(map[string]*covid.LocationSeries)
	var order []string

	for i, loc := range locations {
		s, ok := bySeries[loc]
		if !ok {
			s = &covid.LocationSeries{Location: loc, ISOCode: isoCodes[i]}
			bySeries[loc] = s
			order = append(order, loc)
		}

		date, err := time.Parse(covid.DateLayout, dates[i])
		if err != nil {
			return nil, nil, DateError(i+2, dates[i], err)
		}
		s.Dates = append(s.Dates, date)

		for col, vals := range metrics {
			s.SetColumn(col, append(s.Column(col), vals[i]))
		}
	}

	for _, s := range bySeries {
		s.SortByDate()
	}
	return bySeries, order, nil
}

// partition splits the per-location series into the three views of the
// pipeline. Aggregate pseudo-locations never enter the country-level view.
func (l *Loader) partition(bySeries map[string]*covid.LocationSeries, order []string) *covid.Dataset {
	aggregates := toSet(l.cfg.Analysis.Aggregates)
	selected := toSet(l.cfg.Analysis.Countries)

	ds := &covid.Dataset{}
	for _, loc := range order {
		s := bySeries[loc]
		if aggregates[loc] {
			ds.Aggregates = append(ds.Aggregates, s)
			continue
		}
		ds.Countries = append(ds.Countries, s)
		if selected[loc] {
			ds.Selected = append(ds.Selected, s)
		}
	}

	if missing := len(l.cfg.Analysis.Countries) - len(ds.Selected); missing > 0 {
		l.logger.Warn("some configured countries are absent from the dataset",
			"missing", missing)
	}
	return ds
}

func toSet(items []string) map[string]bool {
	res := make(map[string]bool, len(items))
	for _, v := range items {
		res[v] = true
	}
	return res
}
