package leaguestanding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
)

var ErrMalformedTable = errors.New("malformed published table")

const columnRank = "R"

// ParsePublishedTable reads a pasted league table of tab separated cells. The
// first line lists column keys (R T G W D L F A E P, any order, T required).
// Rows keep their published order. Goal difference may use the unicode minus sign.
func ParsePublishedTable(lines []string) ([]Standing, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a header and at least one row", ErrMalformedTable)
	}

	header := fixture.SplitCells(lines[0])
	seen := make(map[string]bool, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		key := header[i]
		if key != columnRank && !knownField(Field(key)) {
			return nil, fmt.Errorf("%w: unknown column %q", ErrMalformedTable, key)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformedTable, key)
		}
		seen[key] = true
	}
	if !seen[string(FieldTeam)] {
		return nil, fmt.Errorf("%w: column %q is required", ErrMalformedTable, FieldTeam)
	}

	rows := make([]Standing, 0, len(lines)-1)
	for lineIdx, line := range lines[1:] {
		cells := fixture.SplitCells(line)
		if len(cells) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedTable, lineIdx+1, len(cells), len(header))
		}

		var row Standing
		for col, key := range header {
			if err := setColumn(&row, key, strings.TrimSpace(cells[col])); err != nil {
				return nil, fmt.Errorf("%w: row %d column %s: %v", ErrMalformedTable, lineIdx+1, key, err)
			}
		}
		if row.Team == "" {
			return nil, fmt.Errorf("%w: row %d has no team name", ErrMalformedTable, lineIdx+1)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func knownField(f Field) bool {
	if f == FieldTeam {
		return true
	}
	for _, item := range DefaultFields {
		if item == f {
			return true
		}
	}
	return false
}

func setColumn(row *Standing, key, value string) error {
	if Field(key) == FieldTeam {
		row.Team = value
		return nil
	}

	n, err := strconv.Atoi(strings.ReplaceAll(value, "−", "-"))
	if err != nil {
		return err
	}
	if n < 0 && Field(key) != FieldGoalDifference && Field(key) != FieldPoints {
		return fmt.Errorf("negative value %d", n)
	}

	switch key {
	case columnRank:
		row.Rank = n
	case string(FieldPlayed):
		row.Played = n
	case string(FieldWon):
		row.Won = n
	case string(FieldDraw):
		row.Draw = n
	case string(FieldLost):
		row.Lost = n
	case string(FieldGoalsFor):
		row.GoalsFor = n
	case string(FieldGoalsAgainst):
		row.GoalsAgainst = n
	case string(FieldGoalDifference):
		row.GoalDifference = n
	case string(FieldPoints):
		row.Points = n
	}
	return nil
}
