package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-tables/internal/platform/logging"
)

const (
	defaultCensusWorkers = 4
	defaultCensusTeams   = 20
)

// SeasonCensus is the metadata of one season folder.
type SeasonCensus struct {
	Teams    int `json:"teams"`
	Matches  int `json:"matches"`
	Recorded int `json:"recorded"`
}

// Census is keyed by country dir, league dir and season label.
type Census map[string]map[string]map[string]SeasonCensus

func (c Census) add(dir league.SeasonDirectory, item SeasonCensus) {
	leagues, ok := c[dir.CountryDir]
	if !ok {
		leagues = make(map[string]map[string]SeasonCensus)
		c[dir.CountryDir] = leagues
	}
	seasons, ok := leagues[dir.LeagueDir]
	if !ok {
		seasons = make(map[string]SeasonCensus)
		leagues[dir.LeagueDir] = seasons
	}
	seasons[dir.Label] = item
}

type CensusConfig struct {
	Workers      int
	DefaultTeams int
}

// CensusService crawls the season folders of every catalogue country.
type CensusService struct {
	catalogue    league.Catalogue
	seasonRepo   league.Repository
	standingRepo leaguestanding.Repository
	fixtureRepo  fixture.Repository
	cfg          CensusConfig
	logger       *logging.Logger
}

func NewCensusService(
	catalogue league.Catalogue,
	seasonRepo league.Repository,
	standingRepo leaguestanding.Repository,
	fixtureRepo fixture.Repository,
	cfg CensusConfig,
	logger *logging.Logger,
) *CensusService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultCensusWorkers
	}
	if cfg.DefaultTeams <= 0 {
		cfg.DefaultTeams = defaultCensusTeams
	}

	return &CensusService{
		catalogue:    catalogue,
		seasonRepo:   seasonRepo,
		standingRepo: standingRepo,
		fixtureRepo:  fixtureRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

type censusRow struct {
	dir  league.SeasonDirectory
	item SeasonCensus
}

func (s *CensusService) Run(ctx context.Context) (Census, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CensusService.Run")
	defer span.End()

	var dirs []league.SeasonDirectory
	for _, code := range s.catalogue.CountryCodes() {
		countryDir := s.catalogue.Countries[code].Dir
		items, err := s.seasonRepo.ListSeasonDirectories(ctx, countryDir)
		if err != nil {
			return nil, fmt.Errorf("list seasons of %s: %w", countryDir, err)
		}
		dirs = append(dirs, items...)
	}

	out := make(Census)
	if len(dirs) == 0 {
		return out, nil
	}

	workerCount := s.cfg.Workers
	if workerCount > len(dirs) {
		workerCount = len(dirs)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan censusRow, len(dirs))
	var workers sync.WaitGroup
	for _, dir := range dirs {
		dir := dir
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- censusRow{dir: dir, item: s.inspect(ctx, dir)}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		out.add(row.dir, row.item)
	}

	s.logger.InfoContext(ctx, "census completed", "seasons", len(dirs), "workers", workerCount)
	return out, nil
}

func (s *CensusService) inspect(ctx context.Context, dir league.SeasonDirectory) SeasonCensus {
	teams := s.cfg.DefaultTeams
	summary, found, err := s.standingRepo.GetSummary(ctx, dir)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "unreadable summary, using default team count", "dir", dir.String(), "error", err)
	case found && summary.Teams > 0:
		teams = summary.Teams
	}

	recorded, _, err := s.fixtureRepo.CountBySeason(ctx, dir)
	if err != nil {
		s.logger.WarnContext(ctx, "unreadable matches", "dir", dir.String(), "error", err)
		recorded = 0
	}

	return SeasonCensus{
		Teams:    teams,
		Matches:  teams * (teams - 1),
		Recorded: recorded,
	}
}
