package dnd5e

// BudgetType is one of the three encounter difficulty tiers
type BudgetType string

// Budget types
const (
	BudgetLow      BudgetType = "low"
	BudgetModerate BudgetType = "moderate"
	BudgetHigh     BudgetType = "high"
)

// Level bounds of the budget tables
const (
	MinLevel = 1
	MaxLevel = 20
)

// Per-character XP budgets, index 0 = level 1
var (
	lowBudgetByLevel = [MaxLevel]int{
		50, 100, 150, 250, 500, 600, 750, 1000, 1300, 1600,
		1900, 2200, 2600, 2900, 3300, 3800, 4500, 5000, 5500, 6400,
	}
	moderateBudgetByLevel = [MaxLevel]int{
		75, 150, 225, 375, 750, 1000, 1300, 1700, 2000, 2300,
		2900, 3700, 4200, 4900, 5400, 6100, 7200, 8700, 10700, 13200,
	}
	highBudgetByLevel = [MaxLevel]int{
		100, 200, 400, 500, 1100, 1400, 1700, 2100, 2600, 3100,
		4100, 4700, 5400, 6200, 7800, 9800, 11700, 14200, 17200, 22000,
	}
)

// BudgetTypes returns the budget types from lowest to highest
func BudgetTypes() []BudgetType {
	return []BudgetType{BudgetLow, BudgetModerate, BudgetHigh}
}

// IsValid reports whether t is a known budget type
func (t BudgetType) IsValid() bool {
	switch t {
	case BudgetLow, BudgetModerate, BudgetHigh:
		return true
	}
	return false
}

// LevelBudget returns the XP budget of one character of the given level.
// Levels outside 1-20 and unknown types are worth 0.
func LevelBudget(level int, budgetType BudgetType) int {
	if level < MinLevel || level > MaxLevel {
		return 0
	}

	switch budgetType {
	case BudgetLow:
		return lowBudgetByLevel[level-1]
	case BudgetModerate:
		return moderateBudgetByLevel[level-1]
	case BudgetHigh:
		return highBudgetByLevel[level-1]
	default:
		return 0
	}
}

// Budgets holds the three aggregate thresholds of a party
type Budgets struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// Get returns the threshold for a budget type
func (b Budgets) Get(budgetType BudgetType) int {
	switch budgetType {
	case BudgetLow:
		return b.Low
	case BudgetModerate:
		return b.Moderate
	case BudgetHigh:
		return b.High
	default:
		return 0
	}
}

// IsOrdered reports whether 0 <= low <= moderate <= high
func (b Budgets) IsOrdered() bool {
	return b.Low >= 0 && b.Low <= b.Moderate && b.Moderate <= b.High
}

// Difficulty classifies spent XP against a party's budgets
type Difficulty string

// Difficulties from easiest to hardest
const (
	DifficultyNone     Difficulty = "none"
	DifficultyBelowLow Difficulty = "below_low"
	DifficultyLow      Difficulty = "low"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHigh     Difficulty = "high"
)

// Classify returns the highest tier whose budget spent reaches
func (b Budgets) Classify(spent int) Difficulty {
	switch {
	case spent <= 0:
		return DifficultyNone
	case spent >= b.High:
		return DifficultyHigh
	case spent >= b.Moderate:
		return DifficultyModerate
	case spent >= b.Low:
		return DifficultyLow
	default:
		return DifficultyBelowLow
	}
}
