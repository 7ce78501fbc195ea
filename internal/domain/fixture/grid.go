package fixture

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrMalformedGrid = errors.New("malformed result grid")

const cellSeparator = "\t"

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// scoreSeparators are the dash variants seen in exported result grids. The
// en dash is what the usual export sources emit.
var scoreSeparators = []string{"–", "—", "−", "-"}

// SplitLines splits a raw export into lines and drops empty ones.
func SplitLines(raw string) []string {
	parts := lineBreak.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// SplitCells splits one grid line into its tab separated cells.
func SplitCells(line string) []string {
	return strings.Split(line, cellSeparator)
}

// ValidateShape checks that the grid is square once the header row and the
// label column are removed.
func ValidateShape(lines []string) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: grid is empty", ErrMalformedGrid)
	}
	header := SplitCells(lines[0])
	if len(header) != len(lines) {
		return fmt.Errorf("%w: header has %d teams, grid has %d rows", ErrMalformedGrid, len(header)-1, len(lines)-1)
	}
	if len(header) < 2 {
		return fmt.Errorf("%w: grid has no teams", ErrMalformedGrid)
	}
	seen := make(map[string]int, len(header)-1)
	for i, code := range header[1:] {
		if first, ok := seen[code]; ok {
			return fmt.Errorf("%w: team %q repeated in columns %d and %d", ErrMalformedGrid, code, first, i+1)
		}
		seen[code] = i + 1
	}
	return nil
}

// ParseGrid turns a result grid into fixtures. Line 0 holds the team codes
// after a label cell; every following line holds one home team's results
// against each column team. Diagonal cells are never read.
func ParseGrid(lines []string) ([]Fixture, error) {
	if err := ValidateShape(lines); err != nil {
		return nil, err
	}

	codes := SplitCells(lines[0])
	teams := len(codes) - 1
	out := make([]Fixture, 0, teams*(teams-1))

	sequence := 0
	for x := 1; x < len(lines); x++ {
		cells := SplitCells(lines[x])
		for y := 1; y < len(codes); y++ {
			if x == y {
				continue
			}
			// A trailing empty diagonal cell may be trimmed by the export.
			if y >= len(cells) {
				return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, x, len(cells), len(codes))
			}

			home, away, err := ParseScore(cells[y])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d (%s v %s): %v", ErrMalformedGrid, x, y, codes[x], codes[y], err)
			}

			sequence++
			out = append(out, Fixture{
				Home:      codes[x],
				Away:      codes[y],
				HomeScore: home,
				AwayScore: away,
				Sequence:  sequence,
			})
		}
	}

	return out, nil
}

// ParseScore parses a "home–away" score cell.
func ParseScore(cell string) (int, int, error) {
	value := strings.TrimSpace(cell)
	if value == "" {
		return 0, 0, fmt.Errorf("empty score cell")
	}

	for _, sep := range scoreSeparators {
		left, right, found := strings.Cut(value, sep)
		if !found {
			continue
		}
		home, err := parseGoals(left)
		if err != nil {
			return 0, 0, fmt.Errorf("home goals %q: %w", left, err)
		}
		away, err := parseGoals(right)
		if err != nil {
			return 0, 0, fmt.Errorf("away goals %q: %w", right, err)
		}
		return home, away, nil
	}

	return 0, 0, fmt.Errorf("no score separator in %q", value)
}

func parseGoals(v string) (int, error) {
	goals, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	if goals < 0 {
		return 0, fmt.Errorf("negative goals")
	}
	return goals, nil
}
