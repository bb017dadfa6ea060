// Package application orchestrates a scoring run: it layers configuration,
// classifies raw input documents, and drives the load -> aggregate ->
// render pipeline through the ports interfaces.
package application

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/reviewkit/peerscore/internal/domain"
	"github.com/reviewkit/peerscore/internal/ports"
)

// Package-level validator instance shared by document parsing and
// configuration loading.
var validate = validator.New()

var _ ports.Classifier = (*DocumentClassifier)(nil)

// DocumentClassifier implements shape classification as a sequence of
// explicit validating parses: the first shape whose parse succeeds wins,
// and input matching no shape is invalid. Classification is pure and
// never fails; malformed JSON simply classifies as invalid.
type DocumentClassifier struct{}

// NewDocumentClassifier creates a stateless document classifier.
func NewDocumentClassifier() *DocumentClassifier { return &DocumentClassifier{} }

// Classify parses data against the goals shape, then the ratings shape.
// Files matching neither, including unparsable JSON, classify as invalid.
func (c *DocumentClassifier) Classify(name string, data []byte) domain.Document {
	if goals, err := ParseGoals(data); err == nil {
		return domain.GoalsDocument(name, goals)
	}
	if ratings, err := ParseRatings(data); err == nil {
		return domain.RatingsDoc(name, ratings)
	}
	return domain.InvalidDocument(name)
}

// ParseGoals decodes data as a goals document: a non-empty JSON array of
// goal records, each carrying an id. Extra fields on records are ignored;
// a record without an id fails the parse.
func ParseGoals(data []byte) ([]domain.Goal, error) {
	var goals []domain.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("decode goals: document has no goal records")
	}
	for i, g := range goals {
		if err := validate.Struct(g); err != nil {
			return nil, fmt.Errorf("goal record %d: %w", i, err)
		}
	}
	return goals, nil
}

// ParseRatings decodes data as a ratings document: a JSON object with a
// reviewer name and an ordered list of votes, each vote the tuple
// [goalID, [[person, score], ...]].
func ParseRatings(data []byte) (domain.RatingsDocument, error) {
	var doc domain.RatingsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.RatingsDocument{}, fmt.Errorf("decode ratings: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return domain.RatingsDocument{}, fmt.Errorf("ratings document: %w", err)
	}
	return doc, nil
}
