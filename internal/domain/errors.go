package domain

import "errors"

// Common domain errors that can occur while building the goal model
// and aggregating scores.
var (
	// ErrGoalNotFound indicates that a goal id does not exist in the GoalSet.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrNoGoalsDocument indicates that no input file classified as a goals
	// document. A run cannot proceed without one.
	ErrNoGoalsDocument = errors.New("no goals document")

	// ErrNoFounders indicates that the founders roster is missing or empty.
	ErrNoFounders = errors.New("founders list is empty")

	// ErrNoNames indicates that aggregation was invoked with an empty roster.
	ErrNoNames = errors.New("no names to aggregate")
)
