package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
)

type StandingRepository struct {
	mu        sync.RWMutex
	summaries map[league.SeasonDirectory]leaguestanding.Table
	standings map[league.SeasonDirectory]leaguestanding.Table
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{
		summaries: make(map[league.SeasonDirectory]leaguestanding.Table),
		standings: make(map[league.SeasonDirectory]leaguestanding.Table),
	}
}

func (r *StandingRepository) GetSummary(_ context.Context, dir league.SeasonDirectory) (leaguestanding.Table, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.summaries[dir]
	return cloneTable(table), ok, nil
}

func (r *StandingRepository) ReplaceSummary(_ context.Context, dir league.SeasonDirectory, table leaguestanding.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summaries[dir] = cloneTable(table)
	return nil
}

func (r *StandingRepository) ReplaceStandings(_ context.Context, dir league.SeasonDirectory, table leaguestanding.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.standings[dir] = cloneTable(table)
	return nil
}

func (r *StandingRepository) GetStandings(dir league.SeasonDirectory) (leaguestanding.Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.standings[dir]
	return cloneTable(table), ok
}

func cloneTable(table leaguestanding.Table) leaguestanding.Table {
	out := table
	if table.Rows != nil {
		out.Rows = make([]leaguestanding.Standing, len(table.Rows))
		copy(out.Rows, table.Rows)
	}
	return out
}
