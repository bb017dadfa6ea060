package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalSet_Resolve(t *testing.T) {
	gs := NewGoalSet([]Goal{
		{ID: "g1", Owner: "Tom", Main: true},
		{ID: "g2", ParentID: "g1", Owner: "Jerry"},
	})

	goal, err := gs.Resolve("g2")
	require.NoError(t, err)
	assert.Equal(t, "Jerry", goal.Owner)
	assert.Equal(t, "g1", goal.ParentID)

	_, err = gs.Resolve("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalSet_Resolve_DuplicateIDFirstWins(t *testing.T) {
	gs := NewGoalSet([]Goal{
		{ID: "g1", Owner: "Tom"},
		{ID: "g1", Owner: "Jerry"},
	})

	goal, err := gs.Resolve("g1")
	require.NoError(t, err)
	assert.Equal(t, "Tom", goal.Owner)
}

// IsMain must depend only on the main flag, never on tree position.
func TestGoalSet_IsMain(t *testing.T) {
	tests := []struct {
		name   string
		goals  []Goal
		goalID string
		want   bool
	}{
		{
			name:   "main root goal",
			goals:  []Goal{{ID: "g1", Main: true}},
			goalID: "g1",
			want:   true,
		},
		{
			name: "main leaf goal under non-main parent",
			goals: []Goal{
				{ID: "g1"},
				{ID: "g2", ParentID: "g1", Main: true},
			},
			goalID: "g2",
			want:   true,
		},
		{
			name: "non-main leaf under main parent",
			goals: []Goal{
				{ID: "g1", Main: true},
				{ID: "g2", ParentID: "g1"},
			},
			goalID: "g2",
			want:   false,
		},
		{
			name:   "unknown id is not main",
			goals:  []Goal{{ID: "g1", Main: true}},
			goalID: "nope",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGoalSet(tt.goals)
			assert.Equal(t, tt.want, gs.IsMain(tt.goalID))
		})
	}
}

func TestGoalSet_Names(t *testing.T) {
	tests := []struct {
		name     string
		goals    []Goal
		founders []string
		want     []string
	}{
		{
			name: "owners in document order then unseen founders",
			goals: []Goal{
				{ID: "g1", Owner: "Ann"},
				{ID: "g2"},
				{ID: "g3", Owner: "Bob"},
			},
			founders: []string{"Zoe", "Ann"},
			want:     []string{"Ann", "Bob", "Zoe"},
		},
		{
			name: "duplicate owners collapse to first occurrence",
			goals: []Goal{
				{ID: "g1", Owner: "Ann"},
				{ID: "g2", Owner: "Ann"},
			},
			founders: nil,
			want:     []string{"Ann"},
		},
		{
			name:     "founders only when nothing is owned",
			goals:    []Goal{{ID: "g1"}},
			founders: []string{"Tom", "Jerry"},
			want:     []string{"Tom", "Jerry"},
		},
		{
			name: "names are case-sensitive",
			goals: []Goal{
				{ID: "g1", Owner: "ann"},
				{ID: "g2", Owner: "Ann"},
			},
			founders: nil,
			want:     []string{"ann", "Ann"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGoalSet(tt.goals)
			assert.Equal(t, tt.want, gs.Names(tt.founders))
		})
	}
}

func TestGoalSet_DirectGoals(t *testing.T) {
	gs := NewGoalSet([]Goal{
		{ID: "g1", Owner: "Tom", Main: true},
		{ID: "g2", Owner: "Jerry"},
		{ID: "g3", ParentID: "g1", Owner: "Tom"},
		{ID: "g4"},
	})

	tom := gs.DirectGoals("Tom")
	require.Len(t, tom, 2)
	assert.Equal(t, "g1", tom[0].ID)
	assert.Equal(t, "g3", tom[1].ID)

	assert.Len(t, gs.DirectGoals("Jerry"), 1)
	assert.Empty(t, gs.DirectGoals("Nobody"))
}

func TestGoalSet_RequiredRaters(t *testing.T) {
	gs := NewGoalSet([]Goal{
		{ID: "g1", Owner: "Ann"},
		{ID: "g2", Owner: "Bob"},
	})
	founders := []string{"Tom", "Jerry"}

	tests := []struct {
		person string
		want   []string
	}{
		// A founder is rated by everyone, never by themselves.
		{person: "Tom", want: []string{"Ann", "Bob", "Jerry"}},
		{person: "Jerry", want: []string{"Ann", "Bob", "Tom"}},
		// A non-founder is rated by the full roster minus themselves.
		{person: "Ann", want: []string{"Bob", "Tom", "Jerry"}},
	}

	for _, tt := range tests {
		t.Run(tt.person, func(t *testing.T) {
			got := gs.RequiredRaters(tt.person, founders)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, tt.person)
		})
	}
}

func TestGoalSet_Roots_ToleratesDanglingParent(t *testing.T) {
	gs := NewGoalSet([]Goal{
		{ID: "g1"},
		{ID: "g2", ParentID: "g1"},
		{ID: "g3", ParentID: "ghost"},
	})

	roots := gs.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "g1", roots[0].ID)
	assert.Equal(t, "g3", roots[1].ID)
}

func TestGoalSet_Counts(t *testing.T) {
	gs := NewGoalSet([]Goal{
		{ID: "g1", Main: true},
		{ID: "g2"},
		{ID: "g3", Main: true},
	})

	assert.Equal(t, 3, gs.Len())
	assert.Equal(t, 2, gs.MainLen())
}
