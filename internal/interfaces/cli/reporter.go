package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-tables/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-tables/internal/domain/team"
	"github.com/riskibarqy/football-tables/internal/usecase"
)

const teamColumnWidth = 24

// Reporter renders command results for a terminal.
type Reporter struct {
	out    io.Writer
	styles Styles
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, styles: NewStyles(out)}
}

// Verification prints computed and trusted rows side by side with the
// mismatch count of each row.
func (r *Reporter) Verification(result usecase.VerifyResult) {
	season := result.Season
	fmt.Fprintln(r.out, r.styles.Title.Render(fmt.Sprintf("%s  (%s, %d pts per win)", result.Trusted.Name, season.Identity, season.PointsForWin)))

	side := formatStandingHeader()
	fmt.Fprintln(r.out, r.styles.Header.Render(side+" | "+side+" | errors"))

	for _, row := range result.Report.Rows {
		line := formatStanding(row.Index+1, row.Computed) + " | " + formatStanding(row.Index+1, row.Trusted)
		style := r.styles.OK
		if !row.OK() {
			style = r.styles.Failed
		}
		fmt.Fprintf(r.out, "%s | %s\n", style.Render(line), r.styles.Count.Render(strconv.Itoa(len(row.Mismatches))))
	}

	for _, row := range result.Report.FailedRows() {
		parts := make([]string, 0, len(row.Mismatches))
		for _, mismatch := range row.Mismatches {
			parts = append(parts, fmt.Sprintf("%s computed=%s trusted=%s", mismatch.Field, mismatch.Computed, mismatch.Trusted))
		}
		fmt.Fprintln(r.out, r.styles.Failed.Render(fmt.Sprintf("row %d: %s", row.Index+1, strings.Join(parts, ", "))))
	}

	if result.Correction.Rule != nil {
		rule := result.Correction.Rule
		fmt.Fprintln(r.out, r.styles.Muted.Render(fmt.Sprintf("correction: %s %+d", rule.Team, rule.PointsDelta)))
	}

	fmt.Fprintf(r.out, "TOTAL ERRORS: %s\n", r.styles.Count.Render(strconv.Itoa(result.Report.TotalErrors)))
	if result.Persisted {
		fmt.Fprintln(r.out, r.styles.OK.Render("saved "+result.Season.Directory().String()))
	}
}

// RegistryIssues lists every grid team the registry does not know, with the
// entry that would fix it.
func (r *Reporter) RegistryIssues(verr *team.ValidationError) {
	fmt.Fprintln(r.out, r.styles.Failed.Render(fmt.Sprintf("team registry check failed: %d issue(s)", len(verr.Issues))))
	for _, issue := range verr.Issues {
		fmt.Fprintf(r.out, "  %s\n    fix: %s\n", issue.Error(), r.styles.Count.Render(issue.Fix()))
	}
}

func (r *Reporter) Summary(result usecase.SummaryResult) {
	fmt.Fprintf(r.out, "%s  %s teams -> %s\n",
		r.styles.Title.Render(result.Table.Name),
		r.styles.Count.Render(strconv.Itoa(result.Table.Teams)),
		result.Season.Directory(),
	)
}

func (r *Reporter) Census(census usecase.Census) error {
	raw, err := sonic.ConfigStd.MarshalIndent(census, "", "  ")
	if err != nil {
		return fmt.Errorf("encode census: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(raw))
	return err
}

func (r *Reporter) Catalogue(overview usecase.CatalogueOverview) {
	for _, country := range overview.Countries {
		fmt.Fprintln(r.out, r.styles.Title.Render(fmt.Sprintf("%s (%s)", country.Code, country.Dir)))
		for _, lg := range country.Leagues {
			eras := make([]string, 0, len(lg.Eras))
			for _, era := range lg.Eras {
				eras = append(eras, fmt.Sprintf("%d-%d: %d", era.Begin, era.End, era.Points))
			}
			fmt.Fprintf(r.out, "  %-6s %-20s %s  %s\n", lg.Code, lg.Dir, lg.Name, r.styles.Muted.Render("["+strings.Join(eras, ", ")+"]"))
		}
	}

	if len(overview.Corrections) > 0 {
		fmt.Fprintln(r.out, r.styles.Title.Render("corrections"))
		for _, rule := range overview.Corrections {
			fmt.Fprintf(r.out, "  %s %s %+d\n", rule.Identity, rule.Team, rule.PointsDelta)
		}
	}
	if len(overview.TieBreaks) > 0 {
		fmt.Fprintln(r.out, r.styles.Title.Render("tie-breaks"))
		for _, rule := range overview.TieBreaks {
			fmt.Fprintf(r.out, "  %s %s\n", rule.Identity, rule.Rule)
		}
	}
}

func formatStandingHeader() string {
	cells := make([]string, 0, len(leaguestanding.DefaultFields))
	for _, field := range leaguestanding.DefaultFields {
		cells = append(cells, fmt.Sprintf("%4s", field))
	}
	return fmt.Sprintf("%2s %-*s%s", "R", teamColumnWidth, "T", strings.Join(cells, ""))
}

func formatStanding(position int, s leaguestanding.Standing) string {
	cells := make([]string, 0, len(leaguestanding.DefaultFields))
	for _, field := range leaguestanding.DefaultFields {
		cells = append(cells, fmt.Sprintf("%4s", field.Value(s)))
	}
	return fmt.Sprintf("%2d %-*.*s%s", position, teamColumnWidth, teamColumnWidth, s.Team, strings.Join(cells, ""))
}
