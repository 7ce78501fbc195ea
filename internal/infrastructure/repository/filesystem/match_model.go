package filesystem

import "github.com/riskibarqy/football-tables/internal/domain/fixture"

type matchRowModel struct {
	Home      string `json:"H"`
	Away      string `json:"A"`
	HomeScore int    `json:"S"`
	AwayScore int    `json:"C"`
	Sequence  int    `json:"I"`
}

func toMatchRowModel(f fixture.Fixture) matchRowModel {
	return matchRowModel{
		Home:      f.Home,
		Away:      f.Away,
		HomeScore: f.HomeScore,
		AwayScore: f.AwayScore,
		Sequence:  f.Sequence,
	}
}
