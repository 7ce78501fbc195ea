package leaguestanding

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/riskibarqy/football-tables/internal/domain/fixture"
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/team"
)

var testIdentity = league.Identity{Country: "eng", League: "pl", Season: 1992}

func threeTeamFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{Home: "A", Away: "B", HomeScore: 2, AwayScore: 1, Sequence: 1},
		{Home: "B", Away: "C", HomeScore: 1, AwayScore: 1, Sequence: 2},
		{Home: "C", Away: "A", HomeScore: 0, AwayScore: 3, Sequence: 3},
	}
}

func threeTeamRegistry() team.Registry {
	return team.Registry{"A": "Alpha", "B": "Bravo", "C": "Charlie"}
}

func TestAggregate_ThreeTeams(t *testing.T) {
	got, err := Aggregate(threeTeamFixtures(), 3, threeTeamRegistry())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	want := []Standing{
		{TeamCode: "A", Team: "Alpha", Played: 2, Won: 2, GoalsFor: 5, GoalsAgainst: 1, GoalDifference: 4, Points: 6, LastSequence: 3},
		{TeamCode: "B", Team: "Bravo", Played: 2, Draw: 1, Lost: 1, GoalsFor: 2, GoalsAgainst: 3, GoalDifference: -1, Points: 1, LastSequence: 2},
		{TeamCode: "C", Team: "Charlie", Played: 2, Draw: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 4, GoalDifference: -3, Points: 1, LastSequence: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected standings (-want +got):\n%s", diff)
	}

	ranked := Ranker{}.Rank(got)
	if codes(ranked) != "ABC" {
		t.Fatalf("unexpected order: %s", codes(ranked))
	}
	if ranked[0].Rank != 1 || ranked[2].Rank != 3 {
		t.Fatalf("unexpected rank numbers: %+v", ranked)
	}
}

func TestAggregate_PointsPerWin(t *testing.T) {
	got, err := Aggregate(threeTeamFixtures(), 2, threeTeamRegistry())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if got[0].Points != 4 {
		t.Fatalf("expected 4 points at 2 per win, got %d", got[0].Points)
	}

	if _, err := Aggregate(threeTeamFixtures(), 0, threeTeamRegistry()); !errors.Is(err, ErrInvalidPointsPerWin) {
		t.Fatalf("expected ErrInvalidPointsPerWin, got %v", err)
	}
}

func TestAggregate_TeamWithoutFixturesIsAbsent(t *testing.T) {
	registry := threeTeamRegistry()
	registry["D"] = "Delta"

	got, err := Aggregate(threeTeamFixtures(), 3, registry)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
}

func TestAggregate_Invariants(t *testing.T) {
	var fixtures []fixture.Fixture
	codes := []string{"A", "B", "C", "D", "E", "F"}
	seq := 0
	for x, home := range codes {
		for y, away := range codes {
			if x == y {
				continue
			}
			seq++
			fixtures = append(fixtures, fixture.Fixture{
				Home:      home,
				Away:      away,
				HomeScore: (x*7 + y*3) % 4,
				AwayScore: (x*2 + y*5) % 3,
				Sequence:  seq,
			})
		}
	}

	rows, err := Aggregate(fixtures, 3, team.Registry{})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	var wins, losses, draws, goalsFor, goalsAgainst int
	for _, row := range rows {
		if row.Played != row.Won+row.Draw+row.Lost {
			t.Fatalf("games invariant broken: %+v", row)
		}
		if row.GoalDifference != row.GoalsFor-row.GoalsAgainst {
			t.Fatalf("goal difference invariant broken: %+v", row)
		}
		if row.Played != 2*(len(codes)-1) {
			t.Fatalf("unexpected games played: %+v", row)
		}
		wins += row.Won
		losses += row.Lost
		draws += row.Draw
		goalsFor += row.GoalsFor
		goalsAgainst += row.GoalsAgainst
	}
	if wins != losses {
		t.Fatalf("total wins %d != total losses %d", wins, losses)
	}
	if draws%2 != 0 {
		t.Fatalf("total draws must be even, got %d", draws)
	}
	if goalsFor != goalsAgainst {
		t.Fatalf("total goals for %d != against %d", goalsFor, goalsAgainst)
	}

	corrected, _ := ApplyCorrection(rows, testIdentity, []league.CorrectionRule{
		{Identity: testIdentity, Team: "C", PointsDelta: -9},
	})
	for _, row := range corrected {
		if row.Played != row.Won+row.Draw+row.Lost {
			t.Fatalf("games invariant broken after correction: %+v", row)
		}
	}
}

func TestApplyCorrection_ReordersTable(t *testing.T) {
	rows, err := Aggregate(threeTeamFixtures(), 3, threeTeamRegistry())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	rules := []league.CorrectionRule{
		{Identity: league.Identity{Country: "eng", League: "pl", Season: 1993}, Team: "Alpha", PointsDelta: -10},
		{Identity: testIdentity, Team: "Bravo", PointsDelta: -1},
	}
	corrected, result := ApplyCorrection(rows, testIdentity, rules)

	if result.Rule == nil || result.Rule.Team != "Bravo" || !result.TeamFound {
		t.Fatalf("unexpected correction result: %+v", result)
	}
	if corrected[1].Points != 0 {
		t.Fatalf("expected Bravo on 0 points, got %d", corrected[1].Points)
	}
	if rows[1].Points != 1 {
		t.Fatalf("input rows must not be modified, got %d", rows[1].Points)
	}
	if corrected[0].Points != 6 || corrected[2].Points != 1 {
		t.Fatalf("other rows must pass through: %+v", corrected)
	}

	ranked := Ranker{}.Rank(corrected)
	if codes(ranked) != "ACB" {
		t.Fatalf("expected Charlie above Bravo after correction, got %s", codes(ranked))
	}
}

func TestApplyCorrection_FirstMatchWins(t *testing.T) {
	rows, _ := Aggregate(threeTeamFixtures(), 3, threeTeamRegistry())
	rules := []league.CorrectionRule{
		{Identity: testIdentity, Team: "C", PointsDelta: 2},
		{Identity: testIdentity, Team: "B", PointsDelta: -1},
	}

	corrected, result := ApplyCorrection(rows, testIdentity, rules)
	if result.Rule.Team != "C" || len(result.Ignored) != 1 {
		t.Fatalf("unexpected correction result: %+v", result)
	}
	if corrected[2].Points != 3 || corrected[1].Points != 1 {
		t.Fatalf("unexpected points: %+v", corrected)
	}
}

func TestApplyCorrection_NoMatch(t *testing.T) {
	rows, _ := Aggregate(threeTeamFixtures(), 3, threeTeamRegistry())

	corrected, result := ApplyCorrection(rows, testIdentity, nil)
	if result.Rule != nil {
		t.Fatalf("expected no rule, got %+v", result.Rule)
	}
	if diff := cmp.Diff(rows, corrected); diff != "" {
		t.Fatalf("rows must pass through unchanged:\n%s", diff)
	}

	_, result = ApplyCorrection(rows, testIdentity, []league.CorrectionRule{{Identity: testIdentity, Team: "Zulu", PointsDelta: -3}})
	if result.Rule == nil || result.TeamFound {
		t.Fatalf("expected a matched rule without a team, got %+v", result)
	}
}

func TestRanker_TieBreaks(t *testing.T) {
	rows := []Standing{
		{TeamCode: "A", Points: 50, GoalDifference: 10, GoalsFor: 40},
		{TeamCode: "B", Points: 50, GoalDifference: 12, GoalsFor: 30},
		{TeamCode: "C", Points: 50, GoalDifference: 10, GoalsFor: 45},
		{TeamCode: "D", Points: 51, GoalDifference: -5, GoalsFor: 20},
	}

	if got := codes(Ranker{}.Rank(rows)); got != "DBCA" {
		t.Fatalf("unexpected default order: %s", got)
	}

	ranker, err := NewRanker(league.TieBreakGoalsFor)
	if err != nil {
		t.Fatalf("new ranker: %v", err)
	}
	if got := codes(ranker.Rank(rows)); got != "DCAB" {
		t.Fatalf("unexpected goals-for order: %s", got)
	}

	if _, err := NewRanker("head-to-head"); !errors.Is(err, league.ErrUnknownTieBreak) {
		t.Fatalf("expected ErrUnknownTieBreak, got %v", err)
	}
}

func TestRanker_WideRanges(t *testing.T) {
	// A packed points*10000+diff*100+goalsFor key would put B first here.
	rows := []Standing{
		{TeamCode: "A", Points: 40, GoalDifference: -1, GoalsFor: 2},
		{TeamCode: "B", Points: 40, GoalDifference: -5, GoalsFor: 120},
	}
	if got := codes(Ranker{}.Rank(rows)); got != "AB" {
		t.Fatalf("unexpected order: %s", got)
	}
}

func TestRanker_StableAndIdempotent(t *testing.T) {
	rows := []Standing{
		{TeamCode: "A", Points: 10, GoalDifference: 1, GoalsFor: 5},
		{TeamCode: "B", Points: 12},
		{TeamCode: "C", Points: 10, GoalDifference: 1, GoalsFor: 5},
		{TeamCode: "D", Points: 10, GoalDifference: 1, GoalsFor: 5},
	}

	first := Ranker{}.Rank(rows)
	if codes(first) != "BACD" {
		t.Fatalf("exact ties must keep input order: %s", codes(first))
	}
	second := Ranker{}.Rank(first)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("ranking a ranked table changed it:\n%s", diff)
	}
}

func TestVerify(t *testing.T) {
	rows, _ := Aggregate(threeTeamFixtures(), 3, threeTeamRegistry())
	ranked := Ranker{}.Rank(rows)

	trusted := make([]Standing, len(ranked))
	copy(trusted, ranked)

	report, err := Verify(ranked, trusted)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !report.OK() || report.Err() != nil || len(report.Rows) != 3 {
		t.Fatalf("expected clean report, got %+v", report)
	}

	trusted[0].Points = 5
	report, err = Verify(ranked, trusted)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if report.TotalErrors != 1 {
		t.Fatalf("expected 1 error, got %d", report.TotalErrors)
	}
	failed := report.FailedRows()
	if len(failed) != 1 || failed[0].Index != 0 {
		t.Fatalf("unexpected failed rows: %+v", failed)
	}
	want := []FieldMismatch{{Field: FieldPoints, Computed: "6", Trusted: "5"}}
	if diff := cmp.Diff(want, failed[0].Mismatches); diff != "" {
		t.Fatalf("unexpected mismatches (-want +got):\n%s", diff)
	}

	verr := report.Err()
	if !errors.Is(verr, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", verr)
	}
	var typed *VerificationError
	if !errors.As(verr, &typed) || typed.Report.TotalErrors != 1 {
		t.Fatalf("expected report on error, got %v", verr)
	}
}

func TestVerify_PositionalNotByName(t *testing.T) {
	rows, _ := Aggregate(threeTeamFixtures(), 3, threeTeamRegistry())
	ranked := Ranker{}.Rank(rows)

	trusted := []Standing{ranked[0], ranked[2], ranked[1]}
	report, err := Verify(ranked, trusted)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if report.OK() {
		t.Fatalf("swapped rows must be reported")
	}

	sameStats := []Standing{ranked[0], ranked[1], ranked[2]}
	sameStats[1].Team = "Somebody Else"
	report, _ = Verify(ranked, sameStats)
	if !report.OK() {
		t.Fatalf("names are not compared by default: %+v", report.FailedRows())
	}
	report, _ = Verify(ranked, sameStats, append([]Field{FieldTeam}, DefaultFields...)...)
	if report.TotalErrors != 1 {
		t.Fatalf("expected name mismatch when requested, got %d", report.TotalErrors)
	}
}

func TestVerify_RowCountMismatch(t *testing.T) {
	rows, _ := Aggregate(threeTeamFixtures(), 3, threeTeamRegistry())

	_, err := Verify(rows, rows[:2])
	if !errors.Is(err, ErrRowCountMismatch) {
		t.Fatalf("expected ErrRowCountMismatch, got %v", err)
	}
}

func TestTable(t *testing.T) {
	table := NewTable("Premier League 1992-1993 Season", []Standing{{TeamCode: "A"}, {TeamCode: "B"}})
	if table.Teams != 2 || table.Incomplete() {
		t.Fatalf("unexpected table: %+v", table)
	}
	if !(Table{Name: IncompleteTableName}).Incomplete() {
		t.Fatalf("expected noname table to be incomplete")
	}
}

func TestFieldValue(t *testing.T) {
	row := Standing{Team: "Alpha", Played: 1, Won: 2, Draw: 3, Lost: 4, GoalsFor: 5, GoalsAgainst: 6, GoalDifference: -1, Points: 9}
	got := make([]string, 0, len(DefaultFields))
	for _, f := range DefaultFields {
		got = append(got, f.Value(row))
	}
	want := []string{"1", "2", "3", "4", "5", "6", "-1", "9"}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
	if FieldTeam.Value(row) != "Alpha" {
		t.Fatalf("unexpected team value")
	}
}

func codes(rows []Standing) string {
	out := ""
	for _, row := range rows {
		out += row.TeamCode
	}
	return out
}
