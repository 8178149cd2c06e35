package afcon

import (
	"errors"
	"fmt"
	"strings"
)

const reportRule = 70

// ReportOptions carries the presentation details that belong to the dataset
// rather than to the analysis: the report title and date line, which group's
// standings to print, and any closing commentary.
type ReportOptions struct {
	Title string
	Date  string
	Group string
	Notes []string
}

// GenerateReport renders the full match analysis report: one section per
// registered fixture (head-to-head comparison plus prediction), the group
// standings table, and the closing notes.
func (a *Analyzer) GenerateReport(opts ReportOptions) (string, error) {
	var b strings.Builder

	bar := strings.Repeat("=", reportRule)
	rule := strings.Repeat("-", reportRule)

	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b, opts.Title)
	fmt.Fprintf(&b, "Date: %s\n", opts.Date)
	fmt.Fprintln(&b, bar)
	fmt.Fprintln(&b)

	for i, f := range a.fixtures {
		fmt.Fprintf(&b, "MATCH %d: %s vs %s\n", i+1, strings.ToUpper(f.Home), strings.ToUpper(f.Away))
		fmt.Fprintln(&b, rule)

		comparison, err := a.CompareTeams(f.Home, f.Away)
		if err != nil {
			if errors.Is(err, ErrTeamNotFound) {
				fmt.Fprintf(&b, "One or both teams not found: %s vs %s\n\n", f.Home, f.Away)
				continue
			}
			return "", err
		}
		b.WriteString(formatComparison(comparison))

		prediction, err := a.PredictOutcome(f.Home, f.Away)
		if err != nil {
			return "", err
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Match Prediction:")
		fmt.Fprintf(&b, "  %s Win Probability: %.1f%%\n", prediction.Home.Name, prediction.Home.WinProbability)
		fmt.Fprintf(&b, "  %s Win Probability: %.1f%%\n", prediction.Away.Name, prediction.Away.WinProbability)
		fmt.Fprintf(&b, "  Expected Goals - %s: %.1f\n", prediction.Home.Name, prediction.Home.ExpectedGoals)
		fmt.Fprintf(&b, "  Expected Goals - %s: %.1f\n", prediction.Away.Name, prediction.Away.ExpectedGoals)
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "GROUP %s STANDINGS\n", opts.Group)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%-5s%-20s%-3s%-3s%-3s%-3s%-4s%-4s%-4s%-4s\n",
		"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts")
	fmt.Fprintln(&b, rule)
	for _, s := range a.AnalyzeGroup(opts.Group) {
		fmt.Fprintf(&b, "%-5d%-20s%-3d%-3d%-3d%-3d%-4d%-4d%-4d%-4d\n",
			s.Position, s.Team, s.Played, s.Wins, s.Draws, s.Losses,
			s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Points)
	}

	if len(opts.Notes) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, bar)
		fmt.Fprintln(&b, "ANALYSIS NOTES:")
		fmt.Fprintln(&b, bar)
		for _, note := range opts.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	return b.String(), nil
}

// formatComparison renders a head-to-head comparison block
func formatComparison(c *Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Match-up: %s\n\n", c.MatchUp)

	fmt.Fprintln(&b, "Rankings:")
	fmt.Fprintf(&b, "  %s: #%d\n", c.Home.Name, c.Home.Rank)
	fmt.Fprintf(&b, "  %s: #%d\n", c.Away.Name, c.Away.Rank)

	fmt.Fprintln(&b, "\nPoints (Group Stage):")
	fmt.Fprintf(&b, "  %s: %d\n", c.Home.Name, c.Home.Points)
	fmt.Fprintf(&b, "  %s: %d\n", c.Away.Name, c.Away.Points)

	fmt.Fprintln(&b, "\nGoal Difference:")
	fmt.Fprintf(&b, "  %s: %d\n", c.Home.Name, c.Home.GoalDifference)
	fmt.Fprintf(&b, "  %s: %d\n", c.Away.Name, c.Away.GoalDifference)

	fmt.Fprintln(&b, "\nOffensive Power (Goals/Match):")
	fmt.Fprintf(&b, "  %s: %.2f\n", c.Home.Name, c.Home.AvgGoals)
	fmt.Fprintf(&b, "  %s: %.2f\n", c.Away.Name, c.Away.AvgGoals)

	fmt.Fprintln(&b, "\nDefensive Strength:")
	fmt.Fprintf(&b, "  %s: %.2f goals/match\n", c.Home.Name, c.Home.DefenseStrength)
	fmt.Fprintf(&b, "  %s: %.2f goals/match\n", c.Away.Name, c.Away.DefenseStrength)

	fmt.Fprintln(&b, "\nWin Percentage:")
	fmt.Fprintf(&b, "  %s: %.2f%%\n", c.Home.Name, c.Home.WinPercentage)
	fmt.Fprintf(&b, "  %s: %.2f%%\n", c.Away.Name, c.Away.WinPercentage)

	fmt.Fprintln(&b, "\nRecent Form:")
	fmt.Fprintf(&b, "  %s: %d matches played\n", c.Home.Name, c.Home.Played)
	fmt.Fprintf(&b, "  %s: %d matches played\n", c.Away.Name, c.Away.Played)

	return b.String()
}
