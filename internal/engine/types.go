package engine

import (
	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
)

// DefaultSuggestionRows bounds the size of a suggested monster set
const DefaultSuggestionRows = 6

// suggestionQuantityDie is rolled for the size of each suggested group
const suggestionQuantityDie = 4

// PackChartInput contains the encounter to chart
type PackChartInput struct {
	Monsters dnd5e.Monsters
	Budgets  dnd5e.Budgets
}

// PackChartOutput contains the packed chart
type PackChartOutput struct {
	Grid *grid.Grid
}

// SuggestMonstersInput contains the XP to spend
type SuggestMonstersInput struct {
	TargetXP int
	// MaxRows defaults to DefaultSuggestionRows when zero
	MaxRows int
}

// SuggestMonstersOutput contains the rolled monsters
type SuggestMonstersOutput struct {
	Monsters dnd5e.Monsters
	SpentXP  int
}
