package testutils

import (
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
)

const (
	// TestPlanID is the default plan ID for test fixtures
	TestPlanID = "plan-test-001"

	// TestPlanName is the default plan name for test fixtures
	TestPlanName = "Goblin ambush"
)

// CreateTestPlan creates four level 1 characters against six goblins: 300 XP
// against budgets of 200/300/400, so the plan classifies as moderate
func CreateTestPlan(id string) *dnd5e.EncounterPlan {
	return &dnd5e.EncounterPlan{
		ID:       id,
		Name:     TestPlanName,
		Party:    dnd5e.DefaultParty(),
		Monsters: dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 6, ChallengeRating: dnd5e.CRQuarter}),
	}
}

// CreateTestPlanWithMonsters creates the default party against the given monsters
func CreateTestPlanWithMonsters(id string, rows ...dnd5e.MonsterRow) *dnd5e.EncounterPlan {
	plan := CreateTestPlan(id)
	plan.Monsters = dnd5e.NewMonsters(rows...)
	return plan
}

// CreateStoredTestPlan stamps plan as the repository returns it at version
func CreateStoredTestPlan(plan *dnd5e.EncounterPlan, version int64) *dnd5e.EncounterPlan {
	plan = plan.Clone()
	plan.Version = version
	plan.CreatedAt = 1_700_000_000
	plan.UpdatedAt = 1_700_000_000 + version
	return plan
}
