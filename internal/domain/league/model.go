package league

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrUnknownCountry  = errors.New("unknown country")
	ErrUnknownLeague   = errors.New("unknown league")
	ErrPointsNotMapped = errors.New("points are not mapped for the season")
	ErrInvalidSeason   = errors.New("invalid season")
	ErrOverlappingEras = errors.New("overlapping points eras")
	ErrUnknownTieBreak = errors.New("unknown tie-break rule")
)

var seasonPattern = regexp.MustCompile(`^\d{4}$`)

// TieBreakGoalsFor ranks equal points by goals scored only.
const TieBreakGoalsFor = "goals-for"

// PointsEra is an inclusive range of season start years with a fixed
// number of points for a win.
type PointsEra struct {
	Begin  int
	End    int
	Points int
}

func (e PointsEra) Covers(year int) bool {
	return e.Begin <= year && year <= e.End
}

// League is one competition of a country.
type League struct {
	Code string
	Dir  string
	Name string
	Eras []PointsEra
}

// PointsForWin returns the points awarded for a win in the season starting in year.
func (l League) PointsForWin(year int) (int, error) {
	for _, era := range l.Eras {
		if era.Covers(year) {
			return era.Points, nil
		}
	}
	return 0, fmt.Errorf("%w: league=%s season=%d", ErrPointsNotMapped, l.Code, year)
}

// ValidateEras rejects era sets where one season would map to two values.
func (l League) ValidateEras() error {
	for i := range l.Eras {
		for j := i + 1; j < len(l.Eras); j++ {
			a, b := l.Eras[i], l.Eras[j]
			if a.Begin <= b.End && b.Begin <= a.End {
				return fmt.Errorf("%w: league=%s %d-%d and %d-%d", ErrOverlappingEras, l.Code, a.Begin, a.End, b.Begin, b.End)
			}
		}
	}
	return nil
}

// Country groups leagues stored under one data directory.
type Country struct {
	Code    string
	Dir     string
	Leagues map[string]League
}

// Identity names one season run: country code, league code, season start year.
type Identity struct {
	Country string
	League  string
	Season  int
}

func (i Identity) String() string {
	return fmt.Sprintf("%s/%s/%d", i.Country, i.League, i.Season)
}

// CorrectionRule is a manual points adjustment for one team in one season.
type CorrectionRule struct {
	Identity
	Team        string
	PointsDelta int
}

// TieBreakRule overrides the ranking tie-break for one season.
type TieBreakRule struct {
	Identity
	Rule string
}

// ParseSeason parses a four digit season start year.
func ParseSeason(v string) (int, error) {
	if !seasonPattern.MatchString(v) {
		return 0, fmt.Errorf("%w: %q not a valid year, expected YYYY", ErrInvalidSeason, v)
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSeason, v, err)
	}
	return year, nil
}

// SeasonLabel renders the directory label of a season, e.g. 1992-1993.
func SeasonLabel(year int) string {
	return fmt.Sprintf("%d-%d", year, year+1)
}

// SeasonDirectory locates one season folder under the data root.
type SeasonDirectory struct {
	CountryDir string
	LeagueDir  string
	Label      string
}

func (d SeasonDirectory) String() string {
	return d.CountryDir + "/" + d.LeagueDir + "/" + d.Label
}
