package filesystem

import "github.com/riskibarqy/football-tables/internal/domain/leaguestanding"

type summaryFileModel struct {
	Name  string             `json:"name"`
	Teams int                `json:"teams"`
	Table []standingRowModel `json:"table" validate:"dive"`
}

// standingRowModel uses the short keys read by the table viewer.
type standingRowModel struct {
	Team           string `json:"T" validate:"required"`
	Rank           int    `json:"R,omitempty" validate:"min=0"`
	Played         int    `json:"G" validate:"min=0"`
	Won            int    `json:"W" validate:"min=0"`
	Draw           int    `json:"D" validate:"min=0"`
	Lost           int    `json:"L" validate:"min=0"`
	GoalsFor       int    `json:"F" validate:"min=0"`
	GoalsAgainst   int    `json:"A" validate:"min=0"`
	GoalDifference int    `json:"E"`
	Points         int    `json:"P"`
}

func toStandingRowModel(s leaguestanding.Standing) standingRowModel {
	return standingRowModel{
		Team:           s.Team,
		Rank:           s.Rank,
		Played:         s.Played,
		Won:            s.Won,
		Draw:           s.Draw,
		Lost:           s.Lost,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
	}
}

func (m standingRowModel) toDomain() leaguestanding.Standing {
	return leaguestanding.Standing{
		Rank:           m.Rank,
		Team:           m.Team,
		Played:         m.Played,
		Won:            m.Won,
		Draw:           m.Draw,
		Lost:           m.Lost,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
		Points:         m.Points,
	}
}

func (m summaryFileModel) toDomain() leaguestanding.Table {
	rows := make([]leaguestanding.Standing, 0, len(m.Table))
	for _, row := range m.Table {
		rows = append(rows, row.toDomain())
	}
	return leaguestanding.Table{Name: m.Name, Teams: m.Teams, Rows: rows}
}
