package memory

import (
	"github.com/riskibarqy/football-tables/internal/domain/league"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-tables/internal/domain/team"
)

// A three club double round robin used by service and cli tests.
const SampleGridFile = "grid.txt"

const SampleGrid = "Home \\ Away\tARS\tAVL\tCHE\n" +
	"Arsenal\t\t2–1\t1–1\n" +
	"Aston Villa\t0–0\t\t3–2\n" +
	"Chelsea\t0–1\t2–0\t\n"

func SampleSeasonDirectory() league.SeasonDirectory {
	return league.SeasonDirectory{CountryDir: "england", LeagueDir: "premierLeague", Label: "1992-1993"}
}

func SampleCatalogue() league.Catalogue {
	return league.Catalogue{
		Countries: map[string]league.Country{
			"eng": {
				Code: "eng",
				Dir:  "england",
				Leagues: map[string]league.League{
					"pl": {
						Code: "pl",
						Dir:  "premierLeague",
						Name: "Premier League",
						Eras: []league.PointsEra{{Begin: 1992, End: 2100, Points: 3}},
					},
					"d1": {
						Code: "d1",
						Dir:  "firstDivision",
						Name: "First Division",
						Eras: []league.PointsEra{
							{Begin: 1888, End: 1980, Points: 2},
							{Begin: 1981, End: 1991, Points: 3},
						},
					},
				},
			},
		},
	}
}

func SampleRegistries() map[string]team.Registry {
	return map[string]team.Registry{
		"england": {
			"ARS": "Arsenal",
			"AVL": "Aston Villa",
			"CHE": "Chelsea",
		},
	}
}

// SampleSummary is the trusted table matching SampleGrid at three points a win.
func SampleSummary() leaguestanding.Table {
	return leaguestanding.NewTable("Premier League 1992-1993 Season", []leaguestanding.Standing{
		{Rank: 1, Team: "Arsenal", Played: 4, Won: 2, Draw: 2, Lost: 0, GoalsFor: 4, GoalsAgainst: 2, GoalDifference: 2, Points: 8},
		{Rank: 2, Team: "Chelsea", Played: 4, Won: 1, Draw: 1, Lost: 2, GoalsFor: 5, GoalsAgainst: 5, GoalDifference: 0, Points: 4},
		{Rank: 3, Team: "Aston Villa", Played: 4, Won: 1, Draw: 1, Lost: 2, GoalsFor: 4, GoalsAgainst: 6, GoalDifference: -2, Points: 4},
	})
}
