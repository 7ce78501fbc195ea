package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
)

type ExportRepository struct {
	mu      sync.RWMutex
	exports map[string]string
}

func NewExportRepository(exports map[string]string) *ExportRepository {
	repo := &ExportRepository{exports: make(map[string]string, len(exports))}
	for name, raw := range exports {
		repo.exports[name] = raw
	}
	return repo
}

func (r *ExportRepository) ReadLines(_ context.Context, name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.exports[name]
	if !ok {
		return nil, fmt.Errorf("export %q not found", name)
	}
	return fixture.SplitLines(raw), nil
}
