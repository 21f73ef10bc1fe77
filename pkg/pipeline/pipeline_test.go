package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/covid"
	"github.com/epitools/covidtrends/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	ds  *covid.Dataset
	err error
}

func (f *fakeFetcher) Fetch(_ context.Context) (*covid.Dataset, error) {
	return f.ds, f.err
}

type fakeRenderer struct {
	called bool
	err    error
	got    *analysis.Summary
}

func (r *fakeRenderer) Render(_ context.Context, sum *analysis.Summary) error {
	r.called = true
	r.got = sum
	return r.err
}

type fakeReporter struct {
	called bool
	err    error
}

func (r *fakeReporter) Report(_ context.Context, _ *analysis.Summary) error {
	r.called = true
	return r.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smallDataset() *covid.Dataset {
	s := &covid.LocationSeries{
		Location:   "Alfaland",
		ISOCode:    "ALF",
		Dates:      []time.Time{time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
		TotalCases: []float64{10},
		NewCases:   []float64{10},
		Population: []float64{1000},
	}
	return &covid.Dataset{
		Countries: []*covid.LocationSeries{s},
		Selected:  []*covid.LocationSeries{s},
	}
}

func TestRunAllPhases(t *testing.T) {
	rend := &fakeRenderer{}
	rep := &fakeReporter{}
	p := pipeline.New(&fakeFetcher{ds: smallDataset()}, rend, rep, discard(), 7)

	err := p.Run(context.Background(), pipeline.Phases{Charts: true, Report: true})
	require.NoError(t, err)

	assert.True(t, rend.called)
	assert.True(t, rep.called)
	require.NotNil(t, rend.got)
	assert.Len(t, rend.got.Snapshots, 1)
}

func TestRunFetchFailureIsFatal(t *testing.T) {
	boom := errors.New("connection refused")
	rend := &fakeRenderer{}
	rep := &fakeReporter{}
	p := pipeline.New(&fakeFetcher{err: boom}, rend, rep, discard(), 7)

	err := p.Run(context.Background(), pipeline.Phases{Charts: true, Report: true})
	require.ErrorIs(t, err, boom)

	assert.False(t, rend.called, "no phase runs after a load failure")
	assert.False(t, rep.called)
}

func TestRunRenderFailureIsTolerated(t *testing.T) {
	rend := &fakeRenderer{err: errors.New("no map geometry")}
	rep := &fakeReporter{}
	p := pipeline.New(&fakeFetcher{ds: smallDataset()}, rend, rep, discard(), 7)

	err := p.Run(context.Background(), pipeline.Phases{Charts: true, Report: true})
	require.NoError(t, err, "chart failures must not abort the run")
	assert.True(t, rep.called, "report still executes")
}

func TestRunReportFailureIsFatal(t *testing.T) {
	boom := errors.New("broken pipe")
	rep := &fakeReporter{err: boom}
	p := pipeline.New(&fakeFetcher{ds: smallDataset()}, &fakeRenderer{}, rep, discard(), 7)

	err := p.Run(context.Background(), pipeline.Phases{Report: true})
	require.ErrorIs(t, err, boom)
}

func TestRunSkipsUnselectedPhases(t *testing.T) {
	rend := &fakeRenderer{}
	rep := &fakeReporter{}
	p := pipeline.New(&fakeFetcher{ds: smallDataset()}, rend, rep, discard(), 7)

	require.NoError(t, p.Run(context.Background(), pipeline.Phases{Report: true}))
	assert.False(t, rend.called)
	assert.True(t, rep.called)
}
