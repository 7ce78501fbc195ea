package leaguestanding

import "strconv"

// IncompleteTableName marks a summary file that was scaffolded but never filled in.
const IncompleteTableName = "noname"

// Standing represents a league table row for one team.
type Standing struct {
	Rank           int
	TeamCode       string
	Team           string
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	// LastSequence is the most recent fixture touching the team. Not used for ranking.
	LastSequence int
}

// Table is a named, ordered standings table as stored in a summary file.
type Table struct {
	Name  string
	Teams int
	Rows  []Standing
}

func NewTable(name string, rows []Standing) Table {
	return Table{
		Name:  name,
		Teams: len(rows),
		Rows:  rows,
	}
}

func (t Table) Incomplete() bool {
	return t.Name == IncompleteTableName
}

// Field is one comparable standings column, keyed by its short summary-file key.
type Field string

const (
	FieldTeam           Field = "T"
	FieldPlayed         Field = "G"
	FieldWon            Field = "W"
	FieldDraw           Field = "D"
	FieldLost           Field = "L"
	FieldGoalsFor       Field = "F"
	FieldGoalsAgainst   Field = "A"
	FieldGoalDifference Field = "E"
	FieldPoints         Field = "P"
)

// DefaultFields are compared by Verify unless told otherwise. Team identity is
// covered by row position.
var DefaultFields = []Field{
	FieldPlayed,
	FieldWon,
	FieldDraw,
	FieldLost,
	FieldGoalsFor,
	FieldGoalsAgainst,
	FieldGoalDifference,
	FieldPoints,
}

// Value renders the field of s for comparison and display.
func (f Field) Value(s Standing) string {
	switch f {
	case FieldTeam:
		return s.Team
	case FieldPlayed:
		return strconv.Itoa(s.Played)
	case FieldWon:
		return strconv.Itoa(s.Won)
	case FieldDraw:
		return strconv.Itoa(s.Draw)
	case FieldLost:
		return strconv.Itoa(s.Lost)
	case FieldGoalsFor:
		return strconv.Itoa(s.GoalsFor)
	case FieldGoalsAgainst:
		return strconv.Itoa(s.GoalsAgainst)
	case FieldGoalDifference:
		return strconv.Itoa(s.GoalDifference)
	case FieldPoints:
		return strconv.Itoa(s.Points)
	default:
		return ""
	}
}
