package league

import "context"

type Repository interface {
	ListSeasonDirectories(ctx context.Context, countryDir string) ([]SeasonDirectory, error)
}
