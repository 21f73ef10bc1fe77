// Package pipeline orchestrates one analysis run: fetch and clean the
// dataset, derive the summary metrics, render charts, print the report.
//
// The pipeline is synchronous: each phase fully completes before the next
// begins. Chart rendering failures are tolerated (logged, run continues);
// loader failures abort the run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/epitools/covidtrends/pkg/analysis"
	"github.com/epitools/covidtrends/pkg/covid"
)

// Fetcher loads and cleans the dataset: fetch, parse, partition,
// chronological sort.
type Fetcher interface {
	Fetch(ctx context.Context) (*covid.Dataset, error)
}

// Renderer draws charts from the transformed summary.
type Renderer interface {
	Render(ctx context.Context, sum *analysis.Summary) error
}

// Reporter prints ranking tables and findings, and optionally writes the
// summary workbook.
type Reporter interface {
	Report(ctx context.Context, sum *analysis.Summary) error
}

// Phases selects which output phases of a run execute. The load and
// transform phases always run.
type Phases struct {
	Charts bool
	Report bool
}

// Pipeline wires the run together.
type Pipeline struct {
	fetcher  Fetcher
	renderer Renderer
	reporter Reporter
	logger   *slog.Logger
	window   int
}

// New creates a Pipeline. The window is the rolling-mean window for
// smoothed new cases.
func New(f Fetcher, r Renderer, rep Reporter, logger *slog.Logger, window int) *Pipeline {
	return &Pipeline{
		fetcher:  f,
		renderer: r,
		reporter: rep,
		logger:   logger,
		window:   window,
	}
}

// Run executes the selected phases in order.
func (p *Pipeline) Run(ctx context.Context, phases Phases) error {
	start := time.Now()

	ds, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	p.logger.Info("dataset loaded",
		"countries", len(ds.Countries),
		"aggregates", len(ds.Aggregates),
		"selected", len(ds.Selected),
	)

	sum := analysis.Summarize(ds, p.window)
	p.logger.Info("metrics derived", "window", p.window)

	if phases.Charts {
		// Rendering problems (commonly missing geometry or fonts) must not
		// abort the rest of the run.
		if err := p.renderer.Render(ctx, sum); err != nil {
			p.logger.Warn("chart rendering failed, continuing", "error", err)
		}
	}

	if phases.Report {
		if err := p.reporter.Report(ctx, sum); err != nil {
			return fmt.Errorf("reporting: %w", err)
		}
	}

	p.logger.Info("run complete", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}
