package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-tables/internal/domain/team"
	"github.com/riskibarqy/football-tables/internal/platform/id"
	"github.com/riskibarqy/football-tables/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type VerifyInput struct {
	SeasonInput
	// File is the grid export inside the temp directory.
	File string
	// StrictNames also compares team names row by row.
	StrictNames bool
	// DryRun verifies without writing matches.json and standings.json.
	DryRun bool
}

type VerifyResult struct {
	RunID      string
	Season     league.Season
	Fixtures   []fixture.Fixture
	Computed   leaguestanding.Table
	Trusted    leaguestanding.Table
	Correction leaguestanding.Correction
	Report     leaguestanding.Report
	Persisted  bool
}

type VerificationService struct {
	catalogue    league.Catalogue
	exports      fixture.ExportReader
	teamRepo     team.Repository
	standingRepo leaguestanding.Repository
	fixtureRepo  fixture.Repository
	ids          id.Generator
	logger       *logging.Logger
}

func NewVerificationService(
	catalogue league.Catalogue,
	exports fixture.ExportReader,
	teamRepo team.Repository,
	standingRepo leaguestanding.Repository,
	fixtureRepo fixture.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *VerificationService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}

	return &VerificationService{
		catalogue:    catalogue,
		exports:      exports,
		teamRepo:     teamRepo,
		standingRepo: standingRepo,
		fixtureRepo:  fixtureRepo,
		ids:          ids,
		logger:       logger,
	}
}

type verificationInputs struct {
	lines    []string
	registry team.Registry
	trusted  leaguestanding.Table
	found    bool
}

// Verify recomputes a season table from a results grid and compares it with
// the trusted summary. When the tables match and DryRun is off, fixtures and
// standings are persisted. A failed comparison returns the populated result
// together with a *leaguestanding.VerificationError.
func (s *VerificationService) Verify(ctx context.Context, input VerifyInput) (VerifyResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VerificationService.Verify", seasonAttributes(input.SeasonInput)...)
	defer span.End()

	file, err := requireFile(input.File)
	if err != nil {
		return VerifyResult{}, err
	}
	season, err := resolveSeason(s.catalogue, input.SeasonInput)
	if err != nil {
		return VerifyResult{}, err
	}
	ranker, err := leaguestanding.NewRanker(s.catalogue.TieBreakFor(season.Identity))
	if err != nil {
		return VerifyResult{}, fmt.Errorf("build ranker: %w", err)
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return VerifyResult{}, fmt.Errorf("generate run id: %w", err)
	}
	logger := s.logger.With("run_id", runID, "season", season.Identity.String())
	logger.InfoContext(ctx, "verification started",
		"file", file,
		"dir", season.Directory().String(),
		"points_per_win", season.PointsForWin,
	)

	in, err := s.loadInputs(ctx, file, season)
	if err != nil {
		return VerifyResult{}, err
	}

	if err := fixture.ValidateShape(in.lines); err != nil {
		return VerifyResult{}, err
	}
	if err := team.ValidateGrid(in.lines, in.registry); err != nil {
		return VerifyResult{}, err
	}
	fixtures, err := fixture.ParseGrid(in.lines)
	if err != nil {
		return VerifyResult{}, err
	}
	if !in.found {
		return VerifyResult{}, fmt.Errorf("%w: summary for %s", ErrNotFound, season.Directory())
	}
	if in.trusted.Incomplete() {
		return VerifyResult{}, fmt.Errorf("%w: %s", ErrIncompleteSummary, season.Directory())
	}

	rows, err := leaguestanding.Aggregate(fixtures, season.PointsForWin, in.registry)
	if err != nil {
		return VerifyResult{}, err
	}
	rows, correction := leaguestanding.ApplyCorrection(rows, season.Identity, s.catalogue.Corrections)
	s.logCorrection(ctx, logger, correction)

	computed := leaguestanding.NewTable(in.trusted.Name, ranker.Rank(rows))
	fields := leaguestanding.DefaultFields
	if input.StrictNames {
		fields = append([]leaguestanding.Field{leaguestanding.FieldTeam}, fields...)
	}
	report, err := leaguestanding.Verify(computed.Rows, in.trusted.Rows, fields...)
	if err != nil {
		return VerifyResult{}, err
	}

	result := VerifyResult{
		RunID:      runID,
		Season:     season,
		Fixtures:   fixtures,
		Computed:   computed,
		Trusted:    in.trusted,
		Correction: correction,
		Report:     report,
	}
	if err := report.Err(); err != nil {
		logger.WarnContext(ctx, "verification failed",
			"total_errors", report.TotalErrors,
			"failed_rows", len(report.FailedRows()),
		)
		return result, err
	}

	logger.InfoContext(ctx, "verification passed", "teams", computed.Teams, "fixtures", len(fixtures))
	if input.DryRun {
		logger.InfoContext(ctx, "dry run, skip persisting")
		return result, nil
	}

	// Standings go first so a failed write never leaves fixtures newer than
	// the table they were verified against.
	dir := season.Directory()
	if err := s.standingRepo.ReplaceStandings(ctx, dir, computed); err != nil {
		return result, fmt.Errorf("persist standings: %w", err)
	}
	if err := s.fixtureRepo.ReplaceBySeason(ctx, dir, fixtures); err != nil {
		logger.ErrorContext(ctx, "fixtures not persisted after standings", "dir", dir.String(), "error", err)
		return result, fmt.Errorf("persist fixtures (standings for %s already written by run %s): %w", dir.String(), runID, err)
	}
	result.Persisted = true
	logger.InfoContext(ctx, "season persisted", "dir", dir.String())

	return result, nil
}

// loadInputs reads the grid, the team registry and the trusted summary concurrently.
func (s *VerificationService) loadInputs(ctx context.Context, file string, season league.Season) (verificationInputs, error) {
	var out verificationInputs
	dir := season.Directory()

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		lines, err := s.exports.ReadLines(ctx, file)
		if err != nil {
			return fmt.Errorf("read grid export: %w", err)
		}
		out.lines = lines
		return nil
	})
	p.Go(func(ctx context.Context) error {
		registry, err := s.teamRepo.GetRegistry(ctx, season.Country.Dir)
		if err != nil {
			return fmt.Errorf("get team registry: %w", err)
		}
		out.registry = registry
		return nil
	})
	p.Go(func(ctx context.Context) error {
		trusted, found, err := s.standingRepo.GetSummary(ctx, dir)
		if err != nil {
			return fmt.Errorf("get summary: %w", err)
		}
		out.trusted, out.found = trusted, found
		return nil
	})

	if err := p.Wait(); err != nil {
		return verificationInputs{}, err
	}
	return out, nil
}

func (s *VerificationService) logCorrection(ctx context.Context, logger *logging.Logger, correction leaguestanding.Correction) {
	if correction.Rule == nil {
		return
	}

	rule := correction.Rule
	if !correction.TeamFound {
		logger.WarnContext(ctx, "correction rule matched no team", "team", rule.Team, "points", rule.PointsDelta)
	} else {
		logger.InfoContext(ctx, "correction applied", "team", rule.Team, "points", rule.PointsDelta)
	}
	for _, ignored := range correction.Ignored {
		logger.WarnContext(ctx, "additional correction rule ignored", "team", ignored.Team, "points", ignored.PointsDelta)
	}
}
