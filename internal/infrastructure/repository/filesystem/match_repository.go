package filesystem

import (
	"context"
	"os"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/valyala/bytebufferpool"
)

// MatchRepository stores the verified fixture list of a season in matches.json.
type MatchRepository struct {
	layout Layout
}

func NewMatchRepository(layout Layout) *MatchRepository {
	return &MatchRepository{layout: layout}
}

func (r *MatchRepository) ReplaceBySeason(_ context.Context, dir league.SeasonDirectory, fixtures []fixture.Fixture) error {
	rows := make([]matchRowModel, 0, len(fixtures))
	for _, item := range fixtures {
		rows = append(rows, toMatchRowModel(item))
	}

	path := r.layout.MatchesFile(dir)
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := writeRowsPerLine(buf, "", rows); err != nil {
		return crerr.Wrapf(err, "encode %s", path)
	}
	_ = buf.WriteByte('\n')

	return writeFileAtomic(path, buf.Bytes())
}

func (r *MatchRepository) CountBySeason(_ context.Context, dir league.SeasonDirectory) (int, bool, error) {
	path := r.layout.MatchesFile(dir)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, crerr.Wrapf(err, "read matches %s", path)
	}

	var rows []matchRowModel
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return 0, true, crerr.Wrapf(err, "decode matches %s", path)
	}
	return len(rows), true, nil
}
