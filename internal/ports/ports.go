// Package ports defines the interfaces that connect the application layer
// to the infrastructure adapters. They enable dependency inversion and
// make the run pipeline testable with fakes.
package ports

import (
	"context"
	"io"

	"github.com/reviewkit/peerscore/internal/domain"
)

// Classifier decides which document shape a raw input file matches.
// Implementations must be pure: the same bytes always classify the same
// way, and classification never fails; unmatched input is KindInvalid.
type Classifier interface {
	// Classify parses data and returns the tagged document for it.
	// name is carried through for reporting and carries no semantics.
	Classify(name string, data []byte) domain.Document
}

// DocumentLoader reads and classifies a batch of input files.
// Implementations must preserve input order and isolate per-file
// failures: an unreadable file becomes an invalid document, it never
// aborts sibling loads.
type DocumentLoader interface {
	// Load reads every path and returns one document per path, in order.
	// The error is reserved for context cancellation.
	Load(ctx context.Context, paths []string) ([]domain.Document, error)
}

// Aggregator reduces the goal model and all ratings documents into
// per-person results. Implementations must be deterministic and free of
// shared mutable state: aggregating the same inputs twice yields
// identical results.
type Aggregator interface {
	// Name returns a unique identifier for this aggregator, used in
	// logging and debugging.
	Name() string

	// Aggregate produces one PersonResult per name, preserving the input
	// order of names, plus the run-level totals.
	Aggregate(names []string, goals *domain.GoalSet, docs []domain.RatingsDocument, founders []string) ([]domain.PersonResult, domain.RunTotals, error)

	// Validate checks that the aggregator is properly configured.
	Validate() error
}

// Renderer formats a finished report for humans.
type Renderer interface {
	// Render writes the report to w. It makes no exit-code decisions.
	Render(w io.Writer, report domain.Report) error
}
