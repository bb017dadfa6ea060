package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reviewkit/peerscore/internal/domain"
	"github.com/reviewkit/peerscore/internal/ports"
)

// Runner wires one scoring run end to end: load and classify the input
// files, build the goal model, aggregate, and render. All collaborators
// arrive through ports so the pipeline can be exercised with fakes.
type Runner struct {
	// Loader reads and classifies the input files.
	Loader ports.DocumentLoader

	// Aggregator reduces goals and ratings into per-person results.
	Aggregator ports.Aggregator

	// Renderer formats the final report.
	Renderer ports.Renderer

	// Log receives run diagnostics. Optional; nil disables logging.
	Log *slog.Logger
}

// Run executes the pipeline over paths and writes the report to out.
//
// Per-file problems degrade to invalid-file warnings inside the report.
// Only two conditions fail the run: no input file classifying as a goals
// document (domain.ErrNoGoalsDocument) and an aggregation error. When
// several goals documents are supplied the first in argument order wins
// and the rest are logged and ignored.
func (r *Runner) Run(ctx context.Context, cfg *Config, paths []string, out io.Writer) error {
	docs, err := r.Loader.Load(ctx, paths)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}

	var (
		goalsDocs []domain.Document
		ratings   []domain.RatingsDocument
		invalid   []string
	)
	for _, doc := range docs {
		switch doc.Kind {
		case domain.KindGoals:
			goalsDocs = append(goalsDocs, doc)
		case domain.KindRatings:
			ratings = append(ratings, *doc.Ratings)
		default:
			invalid = append(invalid, doc.Name)
		}
	}

	if len(goalsDocs) == 0 {
		return fmt.Errorf("%w: none of the %d input files matched the goals shape", domain.ErrNoGoalsDocument, len(paths))
	}
	if len(goalsDocs) > 1 && r.Log != nil {
		r.Log.Warn("multiple goals documents supplied, using the first",
			"used", goalsDocs[0].Name,
			"ignored", len(goalsDocs)-1)
	}

	goals := domain.NewGoalSet(goalsDocs[0].Goals)
	names := goals.Names(cfg.Founders)

	results, totals, err := r.Aggregator.Aggregate(names, goals, ratings, cfg.Founders)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	if r.Log != nil {
		r.Log.Debug("aggregation complete",
			"people", len(results),
			"ratings_documents", len(ratings),
			"invalid_files", len(invalid))
	}

	return r.Renderer.Render(out, domain.Report{
		Invalid: invalid,
		Results: results,
		Totals:  totals,
	})
}
