package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-tables/internal/domain/league"
)

// SeasonInput names a season the way it is typed on the command line.
type SeasonInput struct {
	Country string
	League  string
	Season  string
}

func resolveSeason(catalogue league.Catalogue, input SeasonInput) (league.Season, error) {
	country := strings.TrimSpace(input.Country)
	leagueCode := strings.TrimSpace(input.League)
	if country == "" {
		return league.Season{}, fmt.Errorf("%w: country code is required", ErrInvalidInput)
	}
	if leagueCode == "" {
		return league.Season{}, fmt.Errorf("%w: league code is required", ErrInvalidInput)
	}

	year, err := league.ParseSeason(strings.TrimSpace(input.Season))
	if err != nil {
		return league.Season{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	season, err := catalogue.Resolve(country, leagueCode, year)
	if err != nil {
		return league.Season{}, fmt.Errorf("resolve season: %w", err)
	}
	return season, nil
}

func requireFile(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: export file name is required", ErrInvalidInput)
	}
	return name, nil
}
