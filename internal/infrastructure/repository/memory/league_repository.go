package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-tables/internal/domain/league"
)

type SeasonRepository struct {
	mu               sync.RWMutex
	seasonsByCountry map[string][]league.SeasonDirectory
}

func NewSeasonRepository(dirs []league.SeasonDirectory) *SeasonRepository {
	repo := &SeasonRepository{seasonsByCountry: make(map[string][]league.SeasonDirectory)}
	for _, dir := range dirs {
		repo.Add(dir)
	}
	return repo
}

func (r *SeasonRepository) Add(dir league.SeasonDirectory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.seasonsByCountry[dir.CountryDir]
	for _, item := range rows {
		if item == dir {
			return
		}
	}
	rows = append(rows, dir)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LeagueDir != rows[j].LeagueDir {
			return rows[i].LeagueDir < rows[j].LeagueDir
		}
		return rows[i].Label < rows[j].Label
	})
	r.seasonsByCountry[dir.CountryDir] = rows
}

func (r *SeasonRepository) ListSeasonDirectories(_ context.Context, countryDir string) ([]league.SeasonDirectory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.seasonsByCountry[countryDir]
	out := make([]league.SeasonDirectory, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}
