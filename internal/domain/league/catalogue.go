package league

import (
	"fmt"
	"sort"
)

// Catalogue is the static league configuration: supported countries and
// leagues, points eras, manual corrections and tie-break exceptions.
type Catalogue struct {
	Countries   map[string]Country
	Corrections []CorrectionRule
	TieBreaks   []TieBreakRule
}

// Season is a fully resolved run target.
type Season struct {
	Identity
	Country      Country
	League       League
	Label        string
	PointsForWin int
}

func (s Season) Directory() SeasonDirectory {
	return SeasonDirectory{CountryDir: s.Country.Dir, LeagueDir: s.League.Dir, Label: s.Label}
}

// Resolve maps the codes given on the command line to directories, league
// metadata and the points value of the season.
func (c Catalogue) Resolve(countryCode, leagueCode string, year int) (Season, error) {
	country, ok := c.Countries[countryCode]
	if !ok {
		return Season{}, fmt.Errorf("%w: %s", ErrUnknownCountry, countryCode)
	}
	lg, ok := country.Leagues[leagueCode]
	if !ok {
		return Season{}, fmt.Errorf("%w: country=%s league=%s", ErrUnknownLeague, countryCode, leagueCode)
	}

	points, err := lg.PointsForWin(year)
	if err != nil {
		return Season{}, err
	}

	return Season{
		Identity:     Identity{Country: countryCode, League: leagueCode, Season: year},
		Country:      country,
		League:       lg,
		Label:        SeasonLabel(year),
		PointsForWin: points,
	}, nil
}

// TieBreakFor returns the tie-break rule configured for id, or "".
func (c Catalogue) TieBreakFor(id Identity) string {
	for _, rule := range c.TieBreaks {
		if rule.Identity == id {
			return rule.Rule
		}
	}
	return ""
}

// CountryCodes returns the configured country codes in sorted order.
func (c Catalogue) CountryCodes() []string {
	out := make([]string, 0, len(c.Countries))
	for code := range c.Countries {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// LeagueCodes returns the league codes of a country in sorted order.
func (c Country) LeagueCodes() []string {
	out := make([]string, 0, len(c.Leagues))
	for code := range c.Leagues {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
