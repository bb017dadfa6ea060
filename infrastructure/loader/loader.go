// Package loader reads and classifies input files concurrently.
// Files are independent and read-only, so every load runs in its own
// goroutine; a failed read degrades to an invalid document and never
// aborts sibling loads.
package loader

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/reviewkit/peerscore/internal/domain"
	"github.com/reviewkit/peerscore/internal/ports"
)

var _ ports.DocumentLoader = (*Loader)(nil)

// Loader is the file-based DocumentLoader implementation.
type Loader struct {
	classifier ports.Classifier
}

// New creates a Loader that classifies file contents with classifier.
func New(classifier ports.Classifier) *Loader {
	return &Loader{classifier: classifier}
}

// Load reads every path concurrently and returns one document per path,
// preserving input order. Unreadable files become invalid documents.
// The returned error is reserved for context cancellation.
func (l *Loader) Load(ctx context.Context, paths []string) ([]domain.Document, error) {
	docs := make([]domain.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				docs[i] = domain.InvalidDocument(path)
				return nil
			}
			docs[i] = l.classifier.Classify(path, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
