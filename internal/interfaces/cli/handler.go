package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-tables/internal/domain/team"
	"github.com/riskibarqy/football-tables/internal/platform/logging"
	"github.com/riskibarqy/football-tables/internal/usecase"
	"github.com/spf13/cobra"
)

type Verifier interface {
	Verify(ctx context.Context, input usecase.VerifyInput) (usecase.VerifyResult, error)
}

type SummaryImporter interface {
	Import(ctx context.Context, input usecase.SummaryInput) (usecase.SummaryResult, error)
}

type CensusRunner interface {
	Run(ctx context.Context) (usecase.Census, error)
}

type CatalogueLister interface {
	Overview(ctx context.Context) usecase.CatalogueOverview
}

type Handler struct {
	verifier  Verifier
	summaries SummaryImporter
	census    CensusRunner
	catalogue CatalogueLister
	validator *validator.Validate
	logger    *logging.Logger
}

func NewHandler(
	verifier Verifier,
	summaries SummaryImporter,
	census CensusRunner,
	catalogue CatalogueLister,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		verifier:  verifier,
		summaries: summaries,
		census:    census,
		catalogue: catalogue,
		validator: validator.New(),
		logger:    logger,
	}
}

// seasonFlags are the flags shared by commands that target one season.
type seasonFlags struct {
	File    string `validate:"required"`
	Country string `validate:"required,alphanum"`
	League  string `validate:"required,alphanum"`
	Season  string `validate:"required,numeric,len=4"`
}

func (f *seasonFlags) bind(cmd *cobra.Command, fileUsage string) {
	cmd.Flags().StringVar(&f.File, "f", "", fileUsage)
	cmd.Flags().StringVar(&f.Country, "c", "", "country code, e.g. eng")
	cmd.Flags().StringVar(&f.League, "l", "", "league code, e.g. pl")
	cmd.Flags().StringVar(&f.Season, "s", "", "season start year, e.g. 1992")
}

func (f seasonFlags) seasonInput() usecase.SeasonInput {
	return usecase.SeasonInput{Country: f.Country, League: f.League, Season: f.Season}
}

func (h *Handler) validate(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// RootCommand builds the tables command tree.
func (h *Handler) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tables",
		Short: "Verify football league tables against recorded results",
		Long: `Recomputes league tables from results grids and checks them
against trusted published tables before storing them for the viewer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			h.logger.DebugContext(cmd.Context(), "command started", "command", cmd.Name())
		},
	}

	root.AddCommand(
		h.verifyCommand(),
		h.summaryCommand(),
		h.censusCommand(),
		h.configCommand(),
	)
	return root
}

func (h *Handler) verifyCommand() *cobra.Command {
	var (
		flags       seasonFlags
		strictNames bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Recompute a season table from a results grid and verify it",
		Long: `Parses a results grid from the temp directory, checks its team codes
against the country registry, computes the table and compares it with the
season summary. Matches and standings are saved only when nothing differs.

Team names are not compared by default, so two teams level on every stat
may swap places without an error. Pass --strict-names to compare them too.

Example:
  tables verify --f grid.txt --c eng --l pl --s 1992`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := h.validate(ctx, flags); err != nil {
				return err
			}

			reporter := NewReporter(cmd.OutOrStdout())
			result, err := h.verifier.Verify(ctx, usecase.VerifyInput{
				SeasonInput: flags.seasonInput(),
				File:        flags.File,
				StrictNames: strictNames,
				DryRun:      dryRun,
			})

			var registryErr *team.ValidationError
			switch {
			case errors.As(err, &registryErr):
				reporter.RegistryIssues(registryErr)
				return err
			case err != nil && len(result.Report.Rows) == 0:
				return err
			}

			reporter.Verification(result)
			return err
		},
	}

	flags.bind(cmd, "results grid file inside the temp directory")
	cmd.Flags().BoolVar(&strictNames, "strict-names", false, "also compare team names row by row (off by default)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "verify without saving matches and standings")
	return cmd
}

func (h *Handler) summaryCommand() *cobra.Command {
	var flags seasonFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Store a published table as the trusted season summary",
		Long: `Reads a pasted table from the temp directory. The first line holds
column keys (R T G W D L F A E P), one row per team follows.

Example:
  tables summary --f table.txt --c eng --l pl --s 1992`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := h.validate(ctx, flags); err != nil {
				return err
			}

			result, err := h.summaries.Import(ctx, usecase.SummaryInput{
				SeasonInput: flags.seasonInput(),
				File:        flags.File,
			})
			if err != nil {
				return err
			}
			NewReporter(cmd.OutOrStdout()).Summary(result)
			return nil
		},
	}

	flags.bind(cmd, "published table file inside the temp directory")
	return cmd
}

func (h *Handler) censusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "census",
		Short: "Print team and match counts of every stored season as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			census, err := h.census.Run(cmd.Context())
			if err != nil {
				return err
			}
			return NewReporter(cmd.OutOrStdout()).Census(census)
		},
	}
}

func (h *Handler) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "List configured countries, leagues, points eras and exceptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			NewReporter(cmd.OutOrStdout()).Catalogue(h.catalogue.Overview(cmd.Context()))
			return nil
		},
	}
}
