package encounter

import (
	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
)

// CreatePlanInput contains the starting rosters of a new plan
type CreatePlanInput struct {
	Name     string
	Players  []dnd5e.PlayerRow
	Monsters []dnd5e.MonsterRow
}

// CreatePlanOutput contains the stored plan
type CreatePlanOutput struct {
	Plan *dnd5e.EncounterPlan
}

// GetPlanInput identifies a plan
type GetPlanInput struct {
	PlanID string
}

// GetPlanOutput contains the plan
type GetPlanOutput struct {
	Plan *dnd5e.EncounterPlan
}

// ListPlansInput pages through plans
type ListPlansInput struct {
	Limit  int
	Offset int
}

// ListPlansOutput contains a page of plans
type ListPlansOutput struct {
	Plans []*dnd5e.EncounterPlan
	Total int
}

// DeletePlanInput identifies a plan
type DeletePlanInput struct {
	PlanID string
}

// DeletePlanOutput is empty on success
type DeletePlanOutput struct{}

// EditPlanOutput is returned by every roster edit
type EditPlanOutput struct {
	Plan *dnd5e.EncounterPlan
	// Changed is false when the edit was a no-op and nothing was written
	Changed bool
}

// AddPlayerRowInput appends a copy of the last player row
type AddPlayerRowInput struct {
	PlanID string
}

// RemovePlayerRowInput removes a player row
type RemovePlayerRowInput struct {
	PlanID string
	Index  int
}

// SetPlayerQuantityInput changes how many characters a row holds
type SetPlayerQuantityInput struct {
	PlanID   string
	Index    int
	Quantity int
}

// SetPlayerLevelInput changes a row's character level
type SetPlayerLevelInput struct {
	PlanID string
	Index  int
	Level  int
}

// AddMonsterRowInput appends a copy of the last monster row
type AddMonsterRowInput struct {
	PlanID string
}

// RemoveMonsterRowInput removes a monster row
type RemoveMonsterRowInput struct {
	PlanID string
	Index  int
}

// SetMonsterQuantityInput changes how many monsters a row holds
type SetMonsterQuantityInput struct {
	PlanID   string
	Index    int
	Quantity int
}

// SetMonsterChallengeRatingInput changes a row's challenge rating
type SetMonsterChallengeRatingInput struct {
	PlanID          string
	Index           int
	ChallengeRating dnd5e.ChallengeRating
}

// AddMonsterByIDInput adds a catalog monster to a plan
type AddMonsterByIDInput struct {
	PlanID    string
	MonsterID string
	// Quantity defaults to 1 when zero
	Quantity int
}

// AddMonsterByIDOutput contains the edited plan and the catalog entry used
type AddMonsterByIDOutput struct {
	Plan    *dnd5e.EncounterPlan
	Monster *external.MonsterData
}

// SuggestMonstersInput asks for a monster set spending one party budget
type SuggestMonstersInput struct {
	PlanID string
	// Difficulty defaults to moderate when empty
	Difficulty dnd5e.BudgetType
}

// SuggestMonstersOutput contains the plan with its new monsters
type SuggestMonstersOutput struct {
	Plan     *dnd5e.EncounterPlan
	TargetXP int
	SpentXP  int
}

// GetBudgetInput identifies a plan
type GetBudgetInput struct {
	PlanID string
}

// GetBudgetOutput summarises a plan's budgets
type GetBudgetOutput struct {
	Budgets    dnd5e.Budgets
	SpentXP    int
	Difficulty dnd5e.Difficulty
}

// GetChartInput identifies a plan
type GetChartInput struct {
	PlanID string
}

// ChartOutput is the packed chart of a party and monster roster
type ChartOutput struct {
	Grid       *grid.Grid
	Budgets    dnd5e.Budgets
	Difficulty dnd5e.Difficulty
}

// CalculateChartInput contains rosters to chart without storing them
type CalculateChartInput struct {
	Players  []dnd5e.PlayerRow
	Monsters []dnd5e.MonsterRow
}
