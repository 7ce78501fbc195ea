package filesystem

import (
	"path/filepath"

	"github.com/riskibarqy/football-tables/internal/domain/league"
)

const (
	teamsFile     = "teams.json"
	summaryFile   = "summary.json"
	matchesFile   = "matches.json"
	standingsFile = "standings.json"
)

// Layout resolves file locations under the data root:
//
//	<root>/<country>/teams.json
//	<root>/<country>/<league>/<season>/{summary,matches,standings}.json
//	<temp>/<export file>
type Layout struct {
	Root    string
	TempDir string
}

func NewLayout(root, tempDir string) Layout {
	return Layout{Root: root, TempDir: tempDir}
}

func (l Layout) ExportFile(name string) string {
	return filepath.Join(l.TempDir, filepath.Base(name))
}

func (l Layout) CountryDir(countryDir string) string {
	return filepath.Join(l.Root, countryDir)
}

func (l Layout) TeamsFile(countryDir string) string {
	return filepath.Join(l.Root, countryDir, teamsFile)
}

func (l Layout) SeasonDir(dir league.SeasonDirectory) string {
	return filepath.Join(l.Root, dir.CountryDir, dir.LeagueDir, dir.Label)
}

func (l Layout) SummaryFile(dir league.SeasonDirectory) string {
	return filepath.Join(l.SeasonDir(dir), summaryFile)
}

func (l Layout) MatchesFile(dir league.SeasonDirectory) string {
	return filepath.Join(l.SeasonDir(dir), matchesFile)
}

func (l Layout) StandingsFile(dir league.SeasonDirectory) string {
	return filepath.Join(l.SeasonDir(dir), standingsFile)
}
