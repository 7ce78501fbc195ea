package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-tables/internal/domain/league"
)

// SeasonRepository lists the <country>/<league>/<season> folders on disk.
type SeasonRepository struct {
	layout Layout
}

func NewSeasonRepository(layout Layout) *SeasonRepository {
	return &SeasonRepository{layout: layout}
}

func (r *SeasonRepository) ListSeasonDirectories(_ context.Context, countryDir string) ([]league.SeasonDirectory, error) {
	leagues, err := listDirs(r.layout.CountryDir(countryDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, crerr.Wrapf(err, "list leagues of %s", countryDir)
	}

	var out []league.SeasonDirectory
	for _, leagueDir := range leagues {
		seasons, err := listDirs(filepath.Join(r.layout.CountryDir(countryDir), leagueDir))
		if err != nil {
			return nil, crerr.Wrapf(err, "list seasons of %s/%s", countryDir, leagueDir)
		}
		for _, label := range seasons {
			out = append(out, league.SeasonDirectory{CountryDir: countryDir, LeagueDir: leagueDir, Label: label})
		}
	}

	return out, nil
}

func listDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		out = append(out, entry.Name())
	}
	sort.Strings(out)
	return out, nil
}
