package team

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
)

var (
	ErrUnknownTeamCode  = errors.New("unknown team code")
	ErrTeamNameMismatch = errors.New("team name mismatch")
)

// Issue is one registry problem found at a grid position.
type Issue struct {
	Position int
	Code     string
	// Expected is the name written in the grid row, Actual the registry name.
	Expected string
	Actual   string
	Err      error
}

// Fix returns the registry entry that would resolve the issue.
func (i Issue) Fix() string {
	return fmt.Sprintf("{ %s: %s }", i.Code, i.Expected)
}

func (i Issue) Error() string {
	if errors.Is(i.Err, ErrUnknownTeamCode) {
		return fmt.Sprintf("%s: code=%s expected=%q", i.Err, i.Code, i.Expected)
	}
	return fmt.Sprintf("%s: code=%s expected=%q actual=%q", i.Err, i.Code, i.Expected, i.Actual)
}

// ValidationError collects every registry issue in a grid.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Error())
	}
	return fmt.Sprintf("team registry check failed (%d issues): %s", len(e.Issues), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Issues))
	for _, issue := range e.Issues {
		out = append(out, issue.Err)
	}
	return out
}

// ValidateGrid checks the header codes of a result grid against the registry,
// position by position, using the row labels as the expected names.
func ValidateGrid(lines []string, registry Registry) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: grid is empty", fixture.ErrMalformedGrid)
	}

	codes := fixture.SplitCells(lines[0])[1:]
	names := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		names = append(names, fixture.SplitCells(line)[0])
	}
	if len(codes) != len(names) {
		return fmt.Errorf("%w: %d codes for %d rows", fixture.ErrMalformedGrid, len(codes), len(names))
	}

	var issues []Issue
	for i, code := range codes {
		actual, ok := registry[code]
		switch {
		case !ok:
			issues = append(issues, Issue{Position: i, Code: code, Expected: names[i], Err: ErrUnknownTeamCode})
		case actual != names[i]:
			issues = append(issues, Issue{Position: i, Code: code, Expected: names[i], Actual: actual, Err: ErrTeamNameMismatch})
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
