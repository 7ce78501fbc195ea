package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/league"
)

type FixtureRepository struct {
	mu               sync.RWMutex
	fixturesBySeason map[league.SeasonDirectory][]fixture.Fixture
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{fixturesBySeason: make(map[league.SeasonDirectory][]fixture.Fixture)}
}

func (r *FixtureRepository) ReplaceBySeason(_ context.Context, dir league.SeasonDirectory, fixtures []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]fixture.Fixture, 0, len(fixtures))
	items = append(items, fixtures...)
	r.fixturesBySeason[dir] = items
	return nil
}

func (r *FixtureRepository) CountBySeason(_ context.Context, dir league.SeasonDirectory) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.fixturesBySeason[dir]
	return len(items), ok, nil
}

func (r *FixtureRepository) ListBySeason(dir league.SeasonDirectory) []fixture.Fixture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.fixturesBySeason[dir]
	out := make([]fixture.Fixture, 0, len(items))
	out = append(out, items...)
	return out
}
