package app

import (
	"fmt"

	"github.com/riskibarqy/football-tables/internal/config"
	"github.com/riskibarqy/football-tables/internal/infrastructure/repository/filesystem"
	"github.com/riskibarqy/football-tables/internal/interfaces/cli"
	idgen "github.com/riskibarqy/football-tables/internal/platform/id"
	"github.com/riskibarqy/football-tables/internal/platform/logging"
	"github.com/riskibarqy/football-tables/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRootCommand wires the filesystem repositories and services behind the cli.
func NewRootCommand(cfg config.Config, logger *logging.Logger) (*cobra.Command, error) {
	catalogue, err := config.LoadCatalogue(cfg.CataloguePath)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	layout := filesystem.NewLayout(cfg.DataRoot, cfg.TempDir)
	exportRepo := filesystem.NewExportRepository(layout)
	teamRepo := filesystem.NewTeamRepository(layout)
	summaryRepo := filesystem.NewSummaryRepository(layout)
	matchRepo := filesystem.NewMatchRepository(layout)
	seasonRepo := filesystem.NewSeasonRepository(layout)

	verificationSvc := usecase.NewVerificationService(
		catalogue,
		exportRepo,
		teamRepo,
		summaryRepo,
		matchRepo,
		idgen.NewUUIDGenerator(),
		logger,
	)
	summarySvc := usecase.NewSummaryService(catalogue, exportRepo, summaryRepo, logger)
	censusSvc := usecase.NewCensusService(
		catalogue,
		seasonRepo,
		summaryRepo,
		matchRepo,
		usecase.CensusConfig{
			Workers:      cfg.CensusWorkers,
			DefaultTeams: cfg.CensusDefaultTeams,
		},
		logger,
	)
	catalogueSvc := usecase.NewCatalogueService(catalogue)

	handler := cli.NewHandler(verificationSvc, summarySvc, censusSvc, catalogueSvc, logger)
	return handler.RootCommand(), nil
}
