package v1alpha1

import (
	"fmt"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

func convertPlanToWire(plan *dnd5e.EncounterPlan) *Plan {
	if plan == nil {
		return nil
	}

	return &Plan{
		ID:         plan.ID,
		Name:       plan.Name,
		Players:    convertPlayerRowsToWire(plan.Party.Rows),
		Monsters:   convertMonsterRowsToWire(plan.Monsters.Rows),
		Budgets:    convertBudgetsToWire(plan.Budgets()),
		SpentXP:    plan.Monsters.XP(),
		Difficulty: string(plan.Difficulty()),
		Version:    plan.Version,
		CreatedAt:  plan.CreatedAt,
		UpdatedAt:  plan.UpdatedAt,
	}
}

func convertPlayerRowsToWire(rows []dnd5e.PlayerRow) []PlayerRow {
	out := make([]PlayerRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, PlayerRow{Level: row.Level, Quantity: row.Quantity})
	}
	return out
}

func convertMonsterRowsToWire(rows []dnd5e.MonsterRow) []MonsterRow {
	out := make([]MonsterRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, MonsterRow{
			Quantity:        row.Quantity,
			ChallengeRating: row.ChallengeRating.Key(),
			XP:              row.XP(),
		})
	}
	return out
}

func convertPlayerRowsFromWire(rows []PlayerRow) []dnd5e.PlayerRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]dnd5e.PlayerRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dnd5e.PlayerRow{Level: row.Level, Quantity: row.Quantity})
	}
	return out
}

func convertMonsterRowsFromWire(rows []MonsterRow) ([]dnd5e.MonsterRow, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	vb := errors.NewValidationBuilder()
	out := make([]dnd5e.MonsterRow, 0, len(rows))
	for i, row := range rows {
		cr, err := dnd5e.ParseChallengeRating(row.ChallengeRating)
		if err != nil {
			vb.Field(fmt.Sprintf("monsters[%d].challenge_rating", i), errors.GetMessage(err))
			continue
		}
		out = append(out, dnd5e.MonsterRow{Quantity: row.Quantity, ChallengeRating: cr})
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return out, nil
}

func convertBudgetsToWire(budgets dnd5e.Budgets) Budgets {
	return Budgets{Low: budgets.Low, Moderate: budgets.Moderate, High: budgets.High}
}

func convertChartToWire(g *grid.Grid) *Chart {
	if g == nil {
		return nil
	}

	rows := make([][]Cell, 0, len(g.Rows))
	for _, row := range g.Rows {
		cells := make([]Cell, 0, len(row))
		for _, cell := range row {
			cells = append(cells, Cell{ChallengeRating: cell.ChallengeRating.Key(), Width: cell.Width})
		}
		rows = append(rows, cells)
	}

	return &Chart{
		Rows:     rows,
		Low:      convertThresholdToWire(g.Low),
		Moderate: convertThresholdToWire(g.Moderate),
		High:     convertThresholdToWire(g.High),
		SpentXP:  g.SpentXP,
	}
}

func convertThresholdToWire(t grid.Threshold) Threshold {
	return Threshold{Row: t.Row, Fraction: t.Fraction, XP: t.XP, Met: t.Met}
}

func convertMonsterToWire(monster *external.MonsterData) *Monster {
	if monster == nil {
		return nil
	}
	return &Monster{
		ID:              monster.ID,
		Name:            monster.Name,
		ChallengeRating: monster.ChallengeRating.Key(),
		XP:              monster.XP(),
	}
}
