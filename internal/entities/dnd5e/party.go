package dnd5e

import "slices"

// PlayerRow is a group of characters sharing a level
type PlayerRow struct {
	Level    int `json:"level"`
	Quantity int `json:"quantity"`
}

// Party is the player roster. Every edit returns a new Party; the receiver is
// never modified.
type Party struct {
	Rows []PlayerRow `json:"rows"`
}

// NewParty copies rows into a new party
func NewParty(rows ...PlayerRow) Party {
	return Party{Rows: append([]PlayerRow(nil), rows...)}
}

// Len returns the number of rows
func (p Party) Len() int {
	return len(p.Rows)
}

// Equal reports whether both hold the same rows in the same order
func (p Party) Equal(other Party) bool {
	return slices.Equal(p.Rows, other.Rows)
}

// Budget sums quantity * per-character budget over all rows
func (p Party) Budget(budgetType BudgetType) int {
	total := 0
	for _, row := range p.Rows {
		total += row.Quantity * LevelBudget(row.Level, budgetType)
	}
	return total
}

// Budgets returns the low, moderate and high party budgets
func (p Party) Budgets() Budgets {
	return Budgets{
		Low:      p.Budget(BudgetLow),
		Moderate: p.Budget(BudgetModerate),
		High:     p.Budget(BudgetHigh),
	}
}

// AddRow appends a copy of the last row, or a single level 1 character
func (p Party) AddRow() Party {
	next := PlayerRow{Level: MinLevel, Quantity: 1}
	if len(p.Rows) > 0 {
		next = p.Rows[len(p.Rows)-1]
	}
	return Party{Rows: append(p.copyRows(), next)}
}

// RemoveRow drops the row at index; out of range is a no-op
func (p Party) RemoveRow(index int) Party {
	rows := p.copyRows()
	if p.inRange(index) {
		rows = append(rows[:index], rows[index+1:]...)
	}
	return Party{Rows: rows}
}

// SetQuantity replaces the quantity of the row at index; out of range is a no-op
func (p Party) SetQuantity(quantity, index int) Party {
	rows := p.copyRows()
	if p.inRange(index) {
		rows[index].Quantity = quantity
	}
	return Party{Rows: rows}
}

// SetLevel replaces the level of the row at index; out of range is a no-op
func (p Party) SetLevel(level, index int) Party {
	rows := p.copyRows()
	if p.inRange(index) {
		rows[index].Level = level
	}
	return Party{Rows: rows}
}

func (p Party) inRange(index int) bool {
	return index >= 0 && index < len(p.Rows)
}

func (p Party) copyRows() []PlayerRow {
	if p.Rows == nil {
		return nil
	}
	return append(make([]PlayerRow, 0, len(p.Rows)+1), p.Rows...)
}
