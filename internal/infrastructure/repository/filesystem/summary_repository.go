package filesystem

import (
	"context"
	"os"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
	"github.com/valyala/bytebufferpool"
)

// SummaryRepository stores season tables: the trusted summary.json baseline
// and the verified standings.json written after a clean run.
type SummaryRepository struct {
	layout    Layout
	validator *validator.Validate
}

func NewSummaryRepository(layout Layout) *SummaryRepository {
	return &SummaryRepository{
		layout:    layout,
		validator: validator.New(),
	}
}

func (r *SummaryRepository) GetSummary(ctx context.Context, dir league.SeasonDirectory) (leaguestanding.Table, bool, error) {
	path := r.layout.SummaryFile(dir)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return leaguestanding.Table{}, false, nil
		}
		return leaguestanding.Table{}, false, crerr.Wrapf(err, "read summary %s", path)
	}

	var model summaryFileModel
	if err := sonic.Unmarshal(raw, &model); err != nil {
		return leaguestanding.Table{}, false, crerr.Wrapf(err, "decode summary %s", path)
	}
	if err := r.validator.StructCtx(ctx, model); err != nil {
		return leaguestanding.Table{}, false, crerr.Wrapf(err, "validate summary %s", path)
	}

	return model.toDomain(), true, nil
}

func (r *SummaryRepository) ReplaceSummary(_ context.Context, dir league.SeasonDirectory, table leaguestanding.Table) error {
	return r.writeTable(r.layout.SummaryFile(dir), table)
}

func (r *SummaryRepository) ReplaceStandings(_ context.Context, dir league.SeasonDirectory, table leaguestanding.Table) error {
	return r.writeTable(r.layout.StandingsFile(dir), table)
}

func (r *SummaryRepository) writeTable(path string, table leaguestanding.Table) error {
	rows := make([]standingRowModel, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, toStandingRowModel(row))
	}

	name, err := sonic.Marshal(table.Name)
	if err != nil {
		return crerr.Wrap(err, "marshal table name")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("{\n  \"name\": ")
	_, _ = buf.Write(name)
	_, _ = buf.WriteString(",\n  \"teams\": ")
	_, _ = buf.WriteString(strconv.Itoa(table.Teams))
	_, _ = buf.WriteString(",\n  \"table\": ")
	if err := writeRowsPerLine(buf, "  ", rows); err != nil {
		return crerr.Wrapf(err, "encode %s", path)
	}
	_, _ = buf.WriteString("\n}\n")

	return writeFileAtomic(path, buf.Bytes())
}
