package dnd5e

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeEncounterPlan is the toolkit entity type of a stored plan
const EntityTypeEncounterPlan = "encounter_plan"

var _ core.Entity = (*EncounterPlan)(nil)

// EncounterPlan is a saved party and monster roster
type EncounterPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Party    Party    `json:"party"`
	Monsters Monsters `json:"monsters"`

	// Version increases by one on every stored edit
	Version int64 `json:"version"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// DefaultParty is the roster a new plan starts with: four level 1 characters
func DefaultParty() Party {
	return NewParty(PlayerRow{Level: 1, Quantity: 4})
}

// DefaultMonsters is the roster a new plan starts with: two CR 1 monsters
func DefaultMonsters() Monsters {
	return NewMonsters(MonsterRow{Quantity: 2, ChallengeRating: CROne})
}

// Budgets returns the party budgets of the plan
func (p *EncounterPlan) Budgets() Budgets {
	return p.Party.Budgets()
}

// Difficulty classifies the plan's monsters against its party
func (p *EncounterPlan) Difficulty() Difficulty {
	return p.Party.Budgets().Classify(p.Monsters.XP())
}

// Clone returns a deep copy of the plan
func (p *EncounterPlan) Clone() *EncounterPlan {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Party = Party{Rows: p.Party.copyRows()}
	clone.Monsters = Monsters{Rows: p.Monsters.copyRows()}
	return &clone
}

// GetID returns the plan ID
func (p *EncounterPlan) GetID() string {
	return p.ID
}

// GetType returns the entity type
func (p *EncounterPlan) GetType() string {
	return EntityTypeEncounterPlan
}
