package external

import "github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"

// MonsterData is a catalog monster reduced to what the budget needs
type MonsterData struct {
	ID              string
	Name            string
	ChallengeRating dnd5e.ChallengeRating
}

// XP returns the monster's XP value
func (m *MonsterData) XP() int {
	return m.ChallengeRating.XP()
}

// MonsterReference is a catalog entry
type MonsterReference struct {
	ID   string
	Name string
}
