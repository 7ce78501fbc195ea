package filesystem

import (
	"context"
	"os"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tables/internal/domain/team"
)

var ErrRegistryNotFound = crerr.New("team registry not found")

// TeamRepository reads the per-country code to name catalogue.
type TeamRepository struct {
	layout Layout
}

func NewTeamRepository(layout Layout) *TeamRepository {
	return &TeamRepository{layout: layout}
}

func (r *TeamRepository) GetRegistry(_ context.Context, countryDir string) (team.Registry, error) {
	path := r.layout.TeamsFile(countryDir)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, crerr.Mark(crerr.Wrapf(err, "read team registry %s", path), ErrRegistryNotFound)
		}
		return nil, crerr.Wrapf(err, "read team registry %s", path)
	}

	var names map[string]string
	if err := sonic.Unmarshal(raw, &names); err != nil {
		return nil, crerr.Wrapf(err, "decode team registry %s", path)
	}

	return team.Registry(names), nil
}
