package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
)

// ParsePlayers reads "4x1,1x3" as four level 1 and one level 3 characters
func ParsePlayers(raw string) ([]v1alpha1.PlayerRow, error) {
	var rows []v1alpha1.PlayerRow
	for _, entry := range splitRoster(raw) {
		quantity, value, err := splitEntry(entry)
		if err != nil {
			return nil, err
		}
		level, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid level in %q", entry)
		}
		rows = append(rows, v1alpha1.PlayerRow{Level: level, Quantity: quantity})
	}
	return rows, nil
}

// ParseMonsters reads "2x1,1x1/2" as two CR 1 and one CR 1/2 monster
func ParseMonsters(raw string) ([]v1alpha1.MonsterRow, error) {
	var rows []v1alpha1.MonsterRow
	for _, entry := range splitRoster(raw) {
		quantity, value, err := splitEntry(entry)
		if err != nil {
			return nil, err
		}
		rows = append(rows, v1alpha1.MonsterRow{Quantity: quantity, ChallengeRating: value})
	}
	return rows, nil
}

func splitRoster(raw string) []string {
	var entries []string
	for _, entry := range strings.Split(raw, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func splitEntry(entry string) (int, string, error) {
	quantityPart, value, ok := strings.Cut(strings.ToLower(entry), "x")
	if !ok {
		return 0, "", fmt.Errorf("expected QUANTITYxVALUE, got %q", entry)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(quantityPart))
	if err != nil {
		return 0, "", fmt.Errorf("invalid quantity in %q", entry)
	}
	return quantity, strings.TrimSpace(value), nil
}

// PrintPlan writes a plan summary
func PrintPlan(w io.Writer, plan *v1alpha1.Plan) {
	if plan == nil {
		return
	}
	fmt.Fprintf(w, "Plan ID: %s\n", plan.ID)
	fmt.Fprintf(w, "Name: %s (version %d)\n", plan.Name, plan.Version)

	fmt.Fprintf(w, "Players:\n")
	for i, row := range plan.Players {
		fmt.Fprintf(w, "  [%d] %d x level %d\n", i, row.Quantity, row.Level)
	}
	fmt.Fprintf(w, "Monsters:\n")
	for i, row := range plan.Monsters {
		fmt.Fprintf(w, "  [%d] %d x CR %s (%d XP)\n", i, row.Quantity, row.ChallengeRating, row.XP)
	}
	printBudgets(w, plan.Budgets, plan.SpentXP, plan.Difficulty)
}

// PrintChart writes a packed chart one row per line, followed by the
// thresholds that fall in that row
func PrintChart(w io.Writer, resp *v1alpha1.ChartResponse) {
	if resp == nil || resp.Chart == nil {
		return
	}
	chart := resp.Chart
	printBudgets(w, resp.Budgets, chart.SpentXP, resp.Difficulty)

	thresholds := []struct {
		name string
		t    v1alpha1.Threshold
	}{
		{"low", chart.Low},
		{"moderate", chart.Moderate},
		{"high", chart.High},
	}

	lastRow := len(chart.Rows) - 1
	for _, named := range thresholds {
		if named.t.Row > lastRow {
			lastRow = named.t.Row
		}
	}

	for row := 0; row <= lastRow; row++ {
		var cells []string
		if row < len(chart.Rows) {
			for _, cell := range chart.Rows[row] {
				cells = append(cells, fmt.Sprintf("[%s %.3f]", cell.ChallengeRating, cell.Width))
			}
		}

		var marks []string
		for _, named := range thresholds {
			if named.t.Row != row {
				continue
			}
			mark := fmt.Sprintf("%s@%.3f", named.name, named.t.Fraction)
			if !named.t.Met {
				mark += " (unmet)"
			}
			marks = append(marks, mark)
		}

		line := fmt.Sprintf("row %d:", row)
		if len(cells) > 0 {
			line += " " + strings.Join(cells, " ")
		}
		if len(marks) > 0 {
			line += "  <- " + strings.Join(marks, ", ")
		}
		fmt.Fprintln(w, line)
	}
}

func printBudgets(w io.Writer, budgets v1alpha1.Budgets, spent int, difficulty string) {
	fmt.Fprintf(w, "Budgets: low %d, moderate %d, high %d\n", budgets.Low, budgets.Moderate, budgets.High)
	fmt.Fprintf(w, "Spent: %d XP (%s)\n", spent, difficulty)
}
