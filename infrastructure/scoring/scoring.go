// Package scoring implements the weighted score aggregation engine:
// collecting every qualifying reviewer vote per person, weighting by
// main-goal status, and reducing to a rounded final score with
// partial-completion detection.
package scoring

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Common errors returned by aggregator implementations.
var (
	// ErrEmptyName is returned when creating an aggregator without a name.
	ErrEmptyName = errors.New("aggregator name cannot be empty")

	// ErrNilGoals is returned when Aggregate receives no goal model.
	ErrNilGoals = errors.New("goal set is required for aggregation")
)

// Package-level validator instance for configuration validation.
var validate = validator.New()
