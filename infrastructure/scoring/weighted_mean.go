package scoring

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/reviewkit/peerscore/internal/domain"
	"github.com/reviewkit/peerscore/internal/ports"
)

var _ ports.Aggregator = (*WeightedMeanAggregator)(nil)

// WeightedMeanAggregator reduces reviewer votes into per-person results
// using a weighted mean: each collected score contributes score * weight
// to the numerator and weight to the denominator, where main-goal votes
// carry the configured MainWeight and everything else weighs 1.
//
// Policies pinned by tests:
//   - A reviewer's votes for themselves are excluded, silently.
//   - A vote referencing an unknown goal id still counts, at weight 1,
//     so a typo in the goals file never discards a reviewer's score.
//   - A person with no collected scores gets the NoDataScore sentinel.
//   - Rounding is half away from zero at RoundDigits decimal places.
//
// The aggregator is stateless and deterministic: aggregating identical
// inputs twice yields identical results. Safe for concurrent use.
type WeightedMeanAggregator struct {
	// name is the unique identifier for this aggregator instance.
	name string
	// config contains the validated configuration parameters.
	config Config
}

// Config controls the aggregation arithmetic. Configuration is immutable
// after creation and validated for consistency.
type Config struct {
	// MainWeight is the weight applied to votes on main goals.
	// Regular goals always weigh 1.
	MainWeight float64 `yaml:"main_weight" json:"main_weight" validate:"min=1"`

	// RoundDigits is the number of decimal places kept in final scores.
	RoundDigits int `yaml:"round_digits" json:"round_digits" validate:"min=0,max=6"`

	// NoDataScore is the sentinel reported for a person with no collected
	// scores, marking them as unrated rather than scored at zero.
	NoDataScore float64 `yaml:"no_data_score" json:"no_data_score"`
}

// DefaultConfig returns the standard configuration: 3x main-goal weight,
// two decimal places, and -1 as the unrated sentinel.
func DefaultConfig() Config {
	return Config{
		MainWeight:  3,
		RoundDigits: 2,
		NoDataScore: -1,
	}
}

// New creates a WeightedMeanAggregator with a validated configuration.
// Returns ErrEmptyName if name is empty, or a validation error when the
// configuration violates its constraints.
func New(name string, config Config) (*WeightedMeanAggregator, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &WeightedMeanAggregator{name: name, config: config}, nil
}

// NewFromConfig creates a WeightedMeanAggregator from a configuration map,
// overlaying the supplied keys onto DefaultConfig. This is the boundary
// adapter for configuration supplied as loose key-value data.
func NewFromConfig(id string, config map[string]any) (ports.Aggregator, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return New(id, cfg)
}

// Name returns the unique identifier for this aggregator instance.
func (a *WeightedMeanAggregator) Name() string { return a.name }

// Validate verifies the aggregator configuration is consistent.
func (a *WeightedMeanAggregator) Validate() error {
	if err := validate.Struct(a.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// Aggregate produces one PersonResult per name, preserving input order,
// plus the run-level totals for the completion ratio.
//
// For each name it collects every qualifying (score, weight) pair across
// all ratings documents, computes the required-raters baseline and direct
// goal counts from the goal model, flags partial completion by count
// comparison, and reduces the pairs into the rounded final score.
//
// Returns ErrNilGoals without a goal model and domain.ErrNoNames for an
// empty roster. Votes not mentioning a name contribute nothing; a person
// nobody rated is not an error, they carry the sentinel score.
func (a *WeightedMeanAggregator) Aggregate(
	names []string,
	goals *domain.GoalSet,
	docs []domain.RatingsDocument,
	founders []string,
) ([]domain.PersonResult, domain.RunTotals, error) {
	if goals == nil {
		return nil, domain.RunTotals{}, ErrNilGoals
	}
	if len(names) == 0 {
		return nil, domain.RunTotals{}, domain.ErrNoNames
	}

	totals := domain.RunTotals{
		Goals:     goals.Len(),
		MainGoals: goals.MainLen(),
	}

	results := make([]domain.PersonResult, 0, len(names))
	for _, name := range names {
		res := domain.PersonResult{
			Name:     name,
			Scores:   a.collect(name, goals, docs),
			Required: goals.RequiredRaters(name, founders),
		}
		for _, g := range goals.DirectGoals(name) {
			res.DirectGoals++
			if g.Main {
				res.DirectMainGoals++
			}
		}
		res.Partial = len(res.Scores) < len(res.Required)
		res.Final = a.finalScore(res.Scores)

		totals.ScoresRequired += len(res.Required)
		totals.ScoresCollected += len(res.Scores)
		results = append(results, res)
	}
	return results, totals, nil
}

// collect gathers every (score, weight) pair for name across all ratings
// documents, in document and vote order. Self-ratings are skipped.
func (a *WeightedMeanAggregator) collect(
	name string,
	goals *domain.GoalSet,
	docs []domain.RatingsDocument,
) []domain.CollectedScore {
	var out []domain.CollectedScore
	for _, doc := range docs {
		if doc.Reviewer == name {
			continue
		}
		for _, vote := range doc.Votes {
			score, ok := vote.ScoreFor(name)
			if !ok {
				continue
			}
			weight := 1.0
			if goals.IsMain(vote.GoalID) {
				weight = a.config.MainWeight
			}
			out = append(out, domain.CollectedScore{Score: score, Weight: weight})
		}
	}
	return out
}

// finalScore reduces the collected pairs into the weighted mean, rounded
// to RoundDigits places. With nothing collected the denominator is zero
// and the NoDataScore sentinel is returned instead of dividing.
func (a *WeightedMeanAggregator) finalScore(scores []domain.CollectedScore) float64 {
	var total, divider float64
	for _, s := range scores {
		total += s.Score * s.Weight
		divider += s.Weight
	}
	if divider == 0 {
		return a.config.NoDataScore
	}
	return roundTo(total/divider, a.config.RoundDigits)
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(x float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(x*pow) / pow
}
