package domain

import (
	"encoding/json"
	"fmt"
)

// PersonScore is one (person, score) pair inside a vote. On the wire it is
// a two-element JSON array: ["Tom", 5].
type PersonScore struct {
	Person string
	Score  float64
}

// UnmarshalJSON decodes the ["name", score] tuple form.
func (ps *PersonScore) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("person score: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("person score: want [name, score], got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &ps.Person); err != nil {
		return fmt.Errorf("person score name: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &ps.Score); err != nil {
		return fmt.Errorf("person score value: %w", err)
	}
	return nil
}

// Vote records one reviewer's scores against one goal. On the wire it is
// a two-element JSON array: ["g1", [["Tom", 5], ["Ann", 4]]].
type Vote struct {
	GoalID string
	Scores []PersonScore
}

// UnmarshalJSON decodes the [goalID, [pairs...]] tuple form.
func (v *Vote) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("vote: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("vote: want [goal id, scores], got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &v.GoalID); err != nil {
		return fmt.Errorf("vote goal id: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &v.Scores); err != nil {
		return fmt.Errorf("vote scores: %w", err)
	}
	return nil
}

// ScoreFor returns the score this vote assigns to person, if any.
// When a person appears more than once within the vote, the first
// entry wins.
func (v Vote) ScoreFor(person string) (float64, bool) {
	for _, ps := range v.Scores {
		if ps.Person == person {
			return ps.Score, true
		}
	}
	return 0, false
}

// RatingsDocument is one reviewer's full submission: who voted and the
// ordered votes they cast. A reviewer's votes for themselves are excluded
// during aggregation, silently.
type RatingsDocument struct {
	// Reviewer identifies who cast these votes.
	Reviewer string `json:"reviewer" validate:"required"`

	// Votes holds the ordered sequence of per-goal score assignments.
	Votes []Vote `json:"votes"`
}
