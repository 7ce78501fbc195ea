package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-tables/internal/platform/logging"
)

type SummaryInput struct {
	SeasonInput
	// File is the pasted published table inside the temp directory.
	File string
}

type SummaryResult struct {
	Season league.Season
	Table  leaguestanding.Table
}

// SummaryService turns a published league table into the trusted summary.json baseline.
type SummaryService struct {
	catalogue    league.Catalogue
	exports      fixture.ExportReader
	standingRepo leaguestanding.Repository
	logger       *logging.Logger
}

func NewSummaryService(
	catalogue league.Catalogue,
	exports fixture.ExportReader,
	standingRepo leaguestanding.Repository,
	logger *logging.Logger,
) *SummaryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SummaryService{
		catalogue:    catalogue,
		exports:      exports,
		standingRepo: standingRepo,
		logger:       logger,
	}
}

func (s *SummaryService) Import(ctx context.Context, input SummaryInput) (SummaryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Import", seasonAttributes(input.SeasonInput)...)
	defer span.End()

	file, err := requireFile(input.File)
	if err != nil {
		return SummaryResult{}, err
	}
	season, err := resolveSeason(s.catalogue, input.SeasonInput)
	if err != nil {
		return SummaryResult{}, err
	}

	lines, err := s.exports.ReadLines(ctx, file)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("read published table: %w", err)
	}
	rows, err := leaguestanding.ParsePublishedTable(lines)
	if err != nil {
		if errors.Is(err, leaguestanding.ErrMalformedTable) {
			return SummaryResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return SummaryResult{}, err
	}

	table := leaguestanding.NewTable(SummaryName(season), rows)
	dir := season.Directory()
	if err := s.standingRepo.ReplaceSummary(ctx, dir, table); err != nil {
		return SummaryResult{}, fmt.Errorf("persist summary: %w", err)
	}

	s.logger.InfoContext(ctx, "summary imported",
		"season", season.Identity.String(),
		"dir", dir.String(),
		"teams", table.Teams,
	)
	return SummaryResult{Season: season, Table: table}, nil
}

// SummaryName is the display name stored in summary.json, e.g.
// "Premier League 1992-1993 Season".
func SummaryName(season league.Season) string {
	return fmt.Sprintf("%s %s Season", season.League.Name, season.Label)
}
