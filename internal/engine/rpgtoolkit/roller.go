// Package rpgtoolkit backs the engine's dice with rpg-toolkit.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

// Roller rolls single dice through rpg-toolkit rolls
type Roller struct{}

// NewRoller creates a roller
func NewRoller() *Roller {
	return &Roller{}
}

// Verify that Roller implements dice.Roller
var _ dice.Roller = (*Roller)(nil)

// Roll returns one roll of a die with the given number of sides
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	roll, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create d%d roll", size)
	}

	return int(roll.GetValue()), nil
}

// RollN returns count rolls of a die with the given number of sides
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}

	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		value, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}
	return results, nil
}
