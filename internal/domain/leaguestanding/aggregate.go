package leaguestanding

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/team"
)

var ErrInvalidPointsPerWin = errors.New("points per win must be positive")

// Aggregate folds fixtures into one standing per team. Rows come back in the
// order teams first appear in the fixture list. A team without fixtures gets
// no row.
func Aggregate(fixtures []fixture.Fixture, pointsPerWin int, registry team.Registry) ([]Standing, error) {
	if pointsPerWin <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPointsPerWin, pointsPerWin)
	}

	index := make(map[string]int)
	rows := make([]Standing, 0)

	slot := func(code string) int {
		i, ok := index[code]
		if !ok {
			i = len(rows)
			index[code] = i
			rows = append(rows, Standing{TeamCode: code, Team: registry.Name(code)})
		}
		return i
	}

	for _, item := range fixtures {
		// Resolve both slots before taking pointers; append may move rows.
		home, away := slot(item.Home), slot(item.Away)

		winner := item.Winner()
		rows[home].record(item.HomeScore, item.AwayScore, item.Sequence, pointsPerWin, outcomeFor(winner, item.Home))
		rows[away].record(item.AwayScore, item.HomeScore, item.Sequence, pointsPerWin, outcomeFor(winner, item.Away))
	}

	return rows, nil
}

type outcome int

const (
	drawn outcome = iota
	won
	lost
)

func outcomeFor(winner, code string) outcome {
	switch winner {
	case "":
		return drawn
	case code:
		return won
	default:
		return lost
	}
}

func (s *Standing) record(scored, conceded, sequence, pointsPerWin int, result outcome) {
	s.Played++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	s.LastSequence = sequence

	switch result {
	case won:
		s.Won++
		s.Points += pointsPerWin
	case lost:
		s.Lost++
	default:
		s.Draw++
		s.Points++
	}

	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
}
