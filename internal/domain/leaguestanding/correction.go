package leaguestanding

import "github.com/riskibarqy/football-tables/internal/domain/league"

// Correction describes what ApplyCorrection did.
type Correction struct {
	// Rule is the applied rule, nil when no rule matched the season.
	Rule *league.CorrectionRule
	// Ignored holds further rules for the same season that were not applied.
	Ignored []league.CorrectionRule
	// TeamFound reports whether Rule named a team present in the table.
	TeamFound bool
}

// MatchingCorrections returns every rule for the season, in catalogue order.
func MatchingCorrections(id league.Identity, rules []league.CorrectionRule) []league.CorrectionRule {
	var out []league.CorrectionRule
	for _, rule := range rules {
		if rule.Identity == id {
			out = append(out, rule)
		}
	}
	return out
}

// ApplyCorrection adds the points delta of the first rule matching the season
// to the named team. The team is matched by full name or by code. The input
// slice is not modified.
func ApplyCorrection(rows []Standing, id league.Identity, rules []league.CorrectionRule) ([]Standing, Correction) {
	out := make([]Standing, len(rows))
	copy(out, rows)

	matches := MatchingCorrections(id, rules)
	if len(matches) == 0 {
		return out, Correction{}
	}

	rule := matches[0]
	result := Correction{Rule: &rule, Ignored: matches[1:]}
	for i := range out {
		if out[i].Team == rule.Team || out[i].TeamCode == rule.Team {
			out[i].Points += rule.PointsDelta
			result.TeamFound = true
		}
	}

	return out, result
}
