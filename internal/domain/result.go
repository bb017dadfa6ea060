package domain

// CollectedScore is one score accumulated for a person from one reviewer's
// vote on one goal, together with the weight that vote carries.
type CollectedScore struct {
	// Score is the raw numeric score the reviewer assigned.
	Score float64

	// Weight reflects the rated goal: the configured main-goal weight for
	// main goals, 1 otherwise.
	Weight float64
}

// PersonResult is the aggregation outcome for one person.
type PersonResult struct {
	// Name is the person this result belongs to.
	Name string

	// Scores lists every collected (score, weight) pair, in the order the
	// ratings documents and their votes were supplied.
	Scores []CollectedScore

	// Required lists the people expected to have rated this person.
	Required []string

	// DirectGoals counts the goals this person owns directly.
	DirectGoals int

	// DirectMainGoals counts the owned goals flagged as main.
	DirectMainGoals int

	// Partial is true when fewer scores were collected than raters were
	// required. It compares counts only, not who contributed.
	Partial bool

	// Final is the weighted mean of the collected scores, rounded, or the
	// configured no-data sentinel when nothing was collected.
	Final float64
}

// RunTotals carries the run-level sums the report footer needs.
type RunTotals struct {
	// ScoresRequired is the sum of required-rater counts across people.
	ScoresRequired int

	// ScoresCollected is the sum of collected-score counts across people.
	ScoresCollected int

	// Goals is the total number of goals in the goals document.
	Goals int

	// MainGoals is the number of those goals flagged as main.
	MainGoals int
}

// Ratio returns the completion ratio, collected over required.
// A run that requires nothing counts as complete.
func (t RunTotals) Ratio() float64 {
	if t.ScoresRequired == 0 {
		return 1
	}
	return float64(t.ScoresCollected) / float64(t.ScoresRequired)
}

// Report is everything the renderer needs to produce the final output.
type Report struct {
	// Invalid lists the input files that failed to classify, in input order.
	Invalid []string

	// Results holds one entry per person, in roster order.
	Results []PersonResult

	// Totals carries the run-level sums.
	Totals RunTotals
}
