package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-tables/internal/domain/team"
)

type TeamRepository struct {
	mu                sync.RWMutex
	registryByCountry map[string]team.Registry
}

func NewTeamRepository(registries map[string]team.Registry) *TeamRepository {
	registryByCountry := make(map[string]team.Registry, len(registries))
	for countryDir, registry := range registries {
		registryByCountry[countryDir] = cloneRegistry(registry)
	}

	return &TeamRepository{registryByCountry: registryByCountry}
}

// GetRegistry returns an empty registry for unknown countries, so every grid team is reported.
func (r *TeamRepository) GetRegistry(_ context.Context, countryDir string) (team.Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneRegistry(r.registryByCountry[countryDir]), nil
}

func (r *TeamRepository) PutRegistry(countryDir string, registry team.Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registryByCountry[countryDir] = cloneRegistry(registry)
}

func cloneRegistry(registry team.Registry) team.Registry {
	out := make(team.Registry, len(registry))
	for code, name := range registry {
		out[code] = name
	}
	return out
}
