package fixture

// Fixture is one played match read from a season result grid.
type Fixture struct {
	Home      string
	Away      string
	HomeScore int
	AwayScore int
	// Sequence follows reading order of the grid, home team major, starting at 1.
	Sequence int
}

// Winner returns the code of the winning side, or "" for a draw.
func (f Fixture) Winner() string {
	switch {
	case f.HomeScore > f.AwayScore:
		return f.Home
	case f.AwayScore > f.HomeScore:
		return f.Away
	default:
		return ""
	}
}
