package leaguestanding

import (
	"context"

	"github.com/riskibarqy/football-tables/internal/domain/league"
)

type Repository interface {
	// GetSummary loads the trusted summary table of a season.
	GetSummary(ctx context.Context, dir league.SeasonDirectory) (Table, bool, error)
	ReplaceSummary(ctx context.Context, dir league.SeasonDirectory, table Table) error
	ReplaceStandings(ctx context.Context, dir league.SeasonDirectory, table Table) error
}
