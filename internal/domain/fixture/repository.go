package fixture

import (
	"context"

	"github.com/riskibarqy/football-tables/internal/domain/league"
)

type Repository interface {
	ReplaceBySeason(ctx context.Context, dir league.SeasonDirectory, fixtures []Fixture) error
	// CountBySeason reports how many fixtures are stored, and whether a file exists at all.
	CountBySeason(ctx context.Context, dir league.SeasonDirectory) (int, bool, error)
}

// ExportReader returns the non-empty lines of a raw export dropped into the temp directory.
type ExportReader interface {
	ReadLines(ctx context.Context, name string) ([]string, error)
}
