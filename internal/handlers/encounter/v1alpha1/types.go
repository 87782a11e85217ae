package v1alpha1

// PlayerRow is a group of characters sharing a level
type PlayerRow struct {
	Level    int `json:"level"`
	Quantity int `json:"quantity"`
}

// MonsterRow is a group of monsters sharing a challenge rating. XP is set on
// responses only.
type MonsterRow struct {
	Quantity        int    `json:"quantity"`
	ChallengeRating string `json:"challenge_rating"`
	XP              int    `json:"xp,omitempty"`
}

// Plan is a stored encounter plan
type Plan struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Players    []PlayerRow  `json:"players"`
	Monsters   []MonsterRow `json:"monsters"`
	Budgets    Budgets      `json:"budgets"`
	SpentXP    int          `json:"spent_xp"`
	Difficulty string       `json:"difficulty"`
	Version    int64        `json:"version"`
	CreatedAt  int64        `json:"created_at"`
	UpdatedAt  int64        `json:"updated_at"`
}

// Budgets are a party's XP budgets
type Budgets struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// Cell is one monster in a chart row
type Cell struct {
	ChallengeRating string  `json:"challenge_rating"`
	Width           float64 `json:"width"`
}

// Threshold is where a budget line falls in a chart
type Threshold struct {
	Row      int     `json:"row"`
	Fraction float64 `json:"fraction"`
	XP       int     `json:"xp"`
	Met      bool    `json:"met"`
}

// Chart is a packed monster chart
type Chart struct {
	Rows     [][]Cell  `json:"rows"`
	Low      Threshold `json:"low"`
	Moderate Threshold `json:"moderate"`
	High     Threshold `json:"high"`
	SpentXP  int       `json:"spent_xp"`
}

// Monster is a catalog monster
type Monster struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ChallengeRating string `json:"challenge_rating"`
	XP              int    `json:"xp"`
}

// CreatePlanRequest creates a plan. Empty rosters start from the defaults.
type CreatePlanRequest struct {
	Name     string       `json:"name"`
	Players  []PlayerRow  `json:"players"`
	Monsters []MonsterRow `json:"monsters"`
}

// PlanRequest identifies a plan
type PlanRequest struct {
	PlanID string `json:"plan_id"`
}

// ListPlansRequest pages through plans
type ListPlansRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// RowRequest identifies a roster row of a plan
type RowRequest struct {
	PlanID string `json:"plan_id"`
	Index  int    `json:"index"`
}

// SetQuantityRequest changes the quantity of a roster row
type SetQuantityRequest struct {
	PlanID   string `json:"plan_id"`
	Index    int    `json:"index"`
	Quantity int    `json:"quantity"`
}

// SetPlayerLevelRequest changes the level of a player row
type SetPlayerLevelRequest struct {
	PlanID string `json:"plan_id"`
	Index  int    `json:"index"`
	Level  int    `json:"level"`
}

// SetMonsterChallengeRatingRequest changes the rating of a monster row
type SetMonsterChallengeRatingRequest struct {
	PlanID          string `json:"plan_id"`
	Index           int    `json:"index"`
	ChallengeRating string `json:"challenge_rating"`
}

// AddMonsterByIDRequest adds a catalog monster to a plan
type AddMonsterByIDRequest struct {
	PlanID    string `json:"plan_id"`
	MonsterID string `json:"monster_id"`
	Quantity  int    `json:"quantity"`
}

// SuggestMonstersRequest replaces a plan's monsters with a random set
type SuggestMonstersRequest struct {
	PlanID     string `json:"plan_id"`
	Difficulty string `json:"difficulty"`
}

// CalculateChartRequest charts rosters without storing them
type CalculateChartRequest struct {
	Players  []PlayerRow  `json:"players"`
	Monsters []MonsterRow `json:"monsters"`
}

// PlanResponse carries a plan. Changed is set by roster edits.
type PlanResponse struct {
	Plan    *Plan `json:"plan"`
	Changed bool  `json:"changed"`
}

// ListPlansResponse carries a page of plans
type ListPlansResponse struct {
	Plans []*Plan `json:"plans"`
	Total int     `json:"total"`
}

// DeletePlanResponse is empty
type DeletePlanResponse struct{}

// AddMonsterByIDResponse carries the edited plan and the catalog monster
type AddMonsterByIDResponse struct {
	Plan    *Plan    `json:"plan"`
	Monster *Monster `json:"monster"`
}

// SuggestMonstersResponse carries the plan with its suggested monsters
type SuggestMonstersResponse struct {
	Plan     *Plan `json:"plan"`
	TargetXP int   `json:"target_xp"`
	SpentXP  int   `json:"spent_xp"`
}

// BudgetResponse summarises a plan's budgets
type BudgetResponse struct {
	Budgets    Budgets `json:"budgets"`
	SpentXP    int     `json:"spent_xp"`
	Difficulty string  `json:"difficulty"`
}

// ChartResponse carries a packed chart
type ChartResponse struct {
	Chart      *Chart  `json:"chart"`
	Budgets    Budgets `json:"budgets"`
	Difficulty string  `json:"difficulty"`
}
