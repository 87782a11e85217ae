package dnd5e

import (
	"slices"
	"sort"
)

// Row quantity bounds for both rosters. The upper bound keeps quantity * XP
// well inside int for every rating.
const (
	MinQuantity = 1
	MaxQuantity = 1000
)

// ValidQuantity reports whether q is an allowed row quantity
func ValidQuantity(q int) bool {
	return q >= MinQuantity && q <= MaxQuantity
}

// MonsterRow is a group of monsters sharing a challenge rating
type MonsterRow struct {
	Quantity        int             `json:"quantity"`
	ChallengeRating ChallengeRating `json:"challenge_rating"`
}

// XP returns quantity * per-monster XP
func (r MonsterRow) XP() int {
	return r.Quantity * r.ChallengeRating.XP()
}

// Monsters is the monster multiset in insertion order. Every edit returns a
// new value; the receiver is never modified.
type Monsters struct {
	Rows []MonsterRow `json:"rows"`
}

// NewMonsters copies rows into a new multiset
func NewMonsters(rows ...MonsterRow) Monsters {
	return Monsters{Rows: append([]MonsterRow(nil), rows...)}
}

// Len returns the number of rows
func (m Monsters) Len() int {
	return len(m.Rows)
}

// Equal reports whether both hold the same rows in the same order
func (m Monsters) Equal(other Monsters) bool {
	return slices.Equal(m.Rows, other.Rows)
}

// XP returns the total XP cost of every monster
func (m Monsters) XP() int {
	total := 0
	for _, row := range m.Rows {
		total += row.XP()
	}
	return total
}

// Count returns the number of individual monsters
func (m Monsters) Count() int {
	total := 0
	for _, row := range m.Rows {
		total += row.Quantity
	}
	return total
}

// Descending returns the rows sorted by row XP, highest first. Ties keep
// insertion order.
func (m Monsters) Descending() []MonsterRow {
	rows := append([]MonsterRow(nil), m.Rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].XP() > rows[j].XP()
	})
	return rows
}

// AddRow appends a copy of the last row, or one monster of the lowest rating
func (m Monsters) AddRow() Monsters {
	next := MonsterRow{Quantity: 1, ChallengeRating: CRZero}
	if len(m.Rows) > 0 {
		next = m.Rows[len(m.Rows)-1]
	}
	return Monsters{Rows: append(m.copyRows(), next)}
}

// RemoveRow drops the row at index; out of range is a no-op
func (m Monsters) RemoveRow(index int) Monsters {
	rows := m.copyRows()
	if m.inRange(index) {
		rows = append(rows[:index], rows[index+1:]...)
	}
	return Monsters{Rows: rows}
}

// SetQuantity replaces the quantity of the row at index; out of range is a no-op
func (m Monsters) SetQuantity(quantity, index int) Monsters {
	rows := m.copyRows()
	if m.inRange(index) {
		rows[index].Quantity = quantity
	}
	return Monsters{Rows: rows}
}

// SetChallengeRating replaces the rating of the row at index; out of range is a no-op
func (m Monsters) SetChallengeRating(cr ChallengeRating, index int) Monsters {
	rows := m.copyRows()
	if m.inRange(index) {
		rows[index].ChallengeRating = cr
	}
	return Monsters{Rows: rows}
}

func (m Monsters) inRange(index int) bool {
	return index >= 0 && index < len(m.Rows)
}

func (m Monsters) copyRows() []MonsterRow {
	if m.Rows == nil {
		return nil
	}
	return append(make([]MonsterRow, 0, len(m.Rows)+1), m.Rows...)
}
