// Package domain contains the core entities of the peer-review scoring
// model: the goal hierarchy, reviewer ratings, and per-person results.
// All types are immutable after construction and safe for concurrent reads.
package domain

import "fmt"

// Goal is a single node in the goal hierarchy.
// A goal may be owned by exactly one person or be purely organizational
// (empty Owner). Goals flagged as main carry extra weight during scoring.
type Goal struct {
	// ID uniquely identifies this goal within its document.
	ID string `json:"id" validate:"required"`

	// ParentID references the parent goal. Empty marks a root goal.
	// A reference to an id that does not exist is tolerated; such goals
	// are treated as roots.
	ParentID string `json:"parentId,omitempty"`

	// Owner is the name of the person responsible for this goal.
	// Empty means the goal is organizational and unowned.
	Owner string `json:"owner,omitempty"`

	// Main marks a main goal. Votes on main goals weigh more than votes
	// on regular goals.
	Main bool `json:"isMain,omitempty"`
}

// GoalSet is an immutable view over one goals document. It answers the
// membership and classification queries the aggregator needs: id lookup,
// main-goal checks, ownership, and the required-raters roster.
type GoalSet struct {
	goals []Goal
	byID  map[string]int
}

// NewGoalSet builds a GoalSet from the goals of one classified document.
// When two goals share an id, the first occurrence wins.
func NewGoalSet(goals []Goal) *GoalSet {
	gs := &GoalSet{
		goals: make([]Goal, len(goals)),
		byID:  make(map[string]int, len(goals)),
	}
	copy(gs.goals, goals)
	for i, g := range gs.goals {
		if _, ok := gs.byID[g.ID]; !ok {
			gs.byID[g.ID] = i
		}
	}
	return gs
}

// Resolve looks up a goal by id.
// It returns ErrGoalNotFound when the id does not exist in this set.
func (gs *GoalSet) Resolve(goalID string) (Goal, error) {
	i, ok := gs.byID[goalID]
	if !ok {
		return Goal{}, fmt.Errorf("%w: %q", ErrGoalNotFound, goalID)
	}
	return gs.goals[i], nil
}

// IsMain reports whether goalID names a main goal. The answer depends only
// on the goal's main flag, never on its position in the tree. Unknown ids
// are not main.
func (gs *GoalSet) IsMain(goalID string) bool {
	i, ok := gs.byID[goalID]
	return ok && gs.goals[i].Main
}

// Names returns the full roster: every goal owner in document order,
// followed by founders that do not already own a goal, in founders order.
// Names are deduplicated and compared case-sensitively.
func (gs *GoalSet) Names(founders []string) []string {
	seen := make(map[string]struct{}, len(gs.goals)+len(founders))
	names := make([]string, 0, len(gs.goals)+len(founders))
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, g := range gs.goals {
		add(g.Owner)
	}
	for _, f := range founders {
		add(f)
	}
	return names
}

// DirectGoals returns the goals owned directly by person, in document
// order. Descendant goals owned by others are not included.
func (gs *GoalSet) DirectGoals(person string) []Goal {
	var out []Goal
	for _, g := range gs.goals {
		if g.Owner == person {
			out = append(out, g)
		}
	}
	return out
}

// RequiredRaters returns the people expected to have rated person:
// the full roster minus the person themselves. Founders are never
// required to rate themselves; everyone else rates everyone.
// The result is the denominator for partial-completion detection,
// not an input to the score itself.
func (gs *GoalSet) RequiredRaters(person string, founders []string) []string {
	names := gs.Names(founders)
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != person {
			out = append(out, n)
		}
	}
	return out
}

// Roots returns the goals with no resolvable parent, in document order.
// Goals whose ParentID dangles count as roots.
func (gs *GoalSet) Roots() []Goal {
	var out []Goal
	for _, g := range gs.goals {
		if g.ParentID == "" {
			out = append(out, g)
			continue
		}
		if _, ok := gs.byID[g.ParentID]; !ok {
			out = append(out, g)
		}
	}
	return out
}

// Len returns the total number of goals in the set.
func (gs *GoalSet) Len() int { return len(gs.goals) }

// MainLen returns the number of main goals in the set.
func (gs *GoalSet) MainLen() int {
	n := 0
	for _, g := range gs.goals {
		if g.Main {
			n++
		}
	}
	return n
}
