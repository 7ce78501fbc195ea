package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-tables/internal/domain/team"
)

func TestSampleGridMatchesSampleSummary(t *testing.T) {
	lines := fixture.SplitLines(SampleGrid)
	if err := team.ValidateGrid(lines, SampleRegistries()["england"]); err != nil {
		t.Fatalf("validate sample grid: %v", err)
	}
	fixtures, err := fixture.ParseGrid(lines)
	if err != nil {
		t.Fatalf("parse sample grid: %v", err)
	}
	rows, err := leaguestanding.Aggregate(fixtures, 3, SampleRegistries()["england"])
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	ranked := leaguestanding.Ranker{}.Rank(rows)
	report, err := leaguestanding.Verify(ranked, SampleSummary().Rows, leaguestanding.FieldTeam)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !report.OK() {
		t.Fatalf("sample grid does not reproduce sample summary: %+v", report.FailedRows())
	}
}

func TestStandingRepository_CopiesTables(t *testing.T) {
	ctx := context.Background()
	repo := NewStandingRepository()
	dir := SampleSeasonDirectory()

	table := SampleSummary()
	if err := repo.ReplaceSummary(ctx, dir, table); err != nil {
		t.Fatalf("replace summary: %v", err)
	}
	table.Rows[0].Points = 0

	got, found, err := repo.GetSummary(ctx, dir)
	if err != nil || !found {
		t.Fatalf("get summary: found=%v err=%v", found, err)
	}
	if got.Rows[0].Points != 8 {
		t.Fatalf("stored summary was mutated through caller slice")
	}

	if _, ok := repo.GetStandings(dir); ok {
		t.Fatalf("expected no standings before replace")
	}
}

func TestFixtureRepository_CountBySeason(t *testing.T) {
	ctx := context.Background()
	repo := NewFixtureRepository()
	dir := SampleSeasonDirectory()

	if _, found, _ := repo.CountBySeason(ctx, dir); found {
		t.Fatalf("expected no fixtures before replace")
	}
	if err := repo.ReplaceBySeason(ctx, dir, []fixture.Fixture{{Home: "ARS", Away: "CHE", Sequence: 1}}); err != nil {
		t.Fatalf("replace fixtures: %v", err)
	}
	count, found, err := repo.CountBySeason(ctx, dir)
	if err != nil || !found || count != 1 {
		t.Fatalf("unexpected count: count=%d found=%v err=%v", count, found, err)
	}
}

func TestSeasonRepository_ListSorted(t *testing.T) {
	repo := NewSeasonRepository([]league.SeasonDirectory{
		{CountryDir: "england", LeagueDir: "premierLeague", Label: "1993-1994"},
		{CountryDir: "england", LeagueDir: "championship", Label: "1992-1993"},
		{CountryDir: "england", LeagueDir: "premierLeague", Label: "1992-1993"},
		{CountryDir: "england", LeagueDir: "premierLeague", Label: "1992-1993"},
	})

	got, err := repo.ListSeasonDirectories(context.Background(), "england")
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(got) != 3 || got[0].LeagueDir != "championship" || got[2].Label != "1993-1994" {
		t.Fatalf("unexpected seasons: %+v", got)
	}
}
