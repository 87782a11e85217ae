package grid

import (
	"math"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
)

// locateThresholds walks the packed cells in row-major order, adding each
// monster's full XP, and marks the first cell at which each budget is
// reached. Budgets never reached are placed in the row after the last
// populated one.
func locateThresholds(g *Grid, budgets dnd5e.Budgets) {
	g.Low = Threshold{XP: budgets.Low}
	g.Moderate = Threshold{XP: budgets.Moderate}
	g.High = Threshold{XP: budgets.High}

	targets := []*Threshold{&g.Low, &g.Moderate, &g.High}

	// A zero budget is met before any monster is placed
	for _, t := range targets {
		if t.XP <= 0 {
			t.Met = true
		}
	}

	cumulative := 0
	for rowIndex, row := range g.Rows {
		start := 0.0
		for _, cell := range row {
			xp := cell.ChallengeRating.XP()
			cumulative += xp

			for _, t := range targets {
				if t.Met || cumulative < t.XP {
					continue
				}
				overshoot := float64(cumulative-t.XP) / float64(xp)
				t.Row = rowIndex
				t.Fraction = clampFraction(start + cell.Width*(1-overshoot))
				t.Met = true
			}

			start += cell.Width
		}
	}

	g.SpentXP = cumulative
	apportionUnmet(g, cumulative)
}

// apportionUnmet spreads the unmet budgets across the synthetic row in
// proportion to their XP gaps. Budgets are ordered, so the met ones always
// form a prefix of low, moderate, high.
func apportionUnmet(g *Grid, spent int) {
	row := len(g.Rows)
	remaining := float64(g.High.XP - spent)

	share := func(t *Threshold) {
		t.Row = row
		t.Fraction = clampFraction(float64(t.XP-spent) / remaining)
	}

	switch {
	case !g.Low.Met:
		share(&g.Low)
		share(&g.Moderate)
		g.High.Row, g.High.Fraction = row, 1
	case !g.Moderate.Met:
		share(&g.Moderate)
		g.High.Row, g.High.Fraction = row, 1
	case !g.High.Met:
		g.High.Row, g.High.Fraction = row, 1
	default:
		// all three spent
	}
}

func clampFraction(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
