package filesystem

import (
	"context"
	"os"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tables/internal/domain/fixture"
)

var ErrExportNotFound = crerr.New("export file not found")

// ExportRepository reads raw tab separated exports dropped into the temp directory.
type ExportRepository struct {
	layout Layout
}

func NewExportRepository(layout Layout) *ExportRepository {
	return &ExportRepository{layout: layout}
}

func (r *ExportRepository) ReadLines(_ context.Context, name string) ([]string, error) {
	if name == "" {
		return nil, crerr.New("export file name is required")
	}

	path := r.layout.ExportFile(name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, crerr.Mark(crerr.Wrapf(err, "read export %s", path), ErrExportNotFound)
		}
		return nil, crerr.Wrapf(err, "read export %s", path)
	}

	return fixture.SplitLines(string(raw)), nil
}
