package leaguestanding

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/football-tables/internal/domain/league"
)

// Ranker orders standings by points, then goal difference, then goals for,
// all descending. Rows that tie on every key keep their input order.
type Ranker struct {
	// SkipGoalDifference drops goal difference from the tie-break chain, so
	// equal points are split by goals scored alone.
	SkipGoalDifference bool
}

// NewRanker builds the ranker for a catalogue tie-break rule ("" for the default).
func NewRanker(rule string) (Ranker, error) {
	switch rule {
	case "":
		return Ranker{}, nil
	case league.TieBreakGoalsFor:
		return Ranker{SkipGoalDifference: true}, nil
	default:
		return Ranker{}, fmt.Errorf("%w: %q", league.ErrUnknownTieBreak, rule)
	}
}

// Less reports whether a finishes above b.
func (r Ranker) Less(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if !r.SkipGoalDifference && a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}

// Rank returns a sorted copy of rows with Rank set to the finishing position.
func (r Ranker) Rank(rows []Standing) []Standing {
	out := make([]Standing, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		return r.Less(out[i], out[j])
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
