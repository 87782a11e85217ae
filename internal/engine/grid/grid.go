// Package grid packs a monster multiset into rows of proportional cells and
// locates the party's low, moderate and high XP budgets inside the packing.
//
// The output is pure layout data: each row is a list of cells whose widths
// are fractions of the chart width, and each threshold is a (row, fraction)
// position. Turning that into pixels is the caller's job.
package grid

import (
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

const (
	// DefaultMaxPerRow is how many monsters of the lowest rating share a row
	DefaultMaxPerRow = 4

	// DefaultWidthExponent shapes the easing curve from widest to narrowest cell
	DefaultWidthExponent = 3.0

	// MaxMonsters bounds the number of cells in one chart
	MaxMonsters = 10000

	// widthEpsilon absorbs float error when a row is filled exactly
	widthEpsilon = 1e-9
)

// Config tunes the packing. Both values are presentation constants.
type Config struct {
	// MaxPerRow bounds cell widths below by 1/MaxPerRow
	MaxPerRow int
	// WidthExponent is the power of the easing curve; 3 is cubic
	WidthExponent float64
}

// DefaultConfig returns the cubic curve with four cells per row at most
func DefaultConfig() *Config {
	return &Config{
		MaxPerRow:     DefaultMaxPerRow,
		WidthExponent: DefaultWidthExponent,
	}
}

// Validate rejects configurations that cannot produce a chart
func (c *Config) Validate() error {
	if c.MaxPerRow < 1 {
		return errors.FailedPreconditionf("max per row must be at least 1, got %d", c.MaxPerRow)
	}
	if c.WidthExponent <= 0 {
		return errors.FailedPreconditionf("width exponent must be positive, got %v", c.WidthExponent)
	}
	return nil
}

// Cell is one monster in the chart
type Cell struct {
	ChallengeRating dnd5e.ChallengeRating `json:"challenge_rating"`
	// Width is the fraction of the row this monster occupies, in (0, 1]
	Width float64 `json:"width"`
}

// Threshold is where a budget line falls in the chart
type Threshold struct {
	Row int `json:"row"`
	// Fraction is the horizontal position within Row, in [0, 1]
	Fraction float64 `json:"fraction"`
	XP       int     `json:"xp"`
	// Met is false when the monsters never spend this budget and the line
	// sits in the row past the last populated one
	Met bool `json:"met"`
}

// Grid is the packed chart
type Grid struct {
	Rows     [][]Cell  `json:"rows"`
	Low      Threshold `json:"low"`
	Moderate Threshold `json:"moderate"`
	High     Threshold `json:"high"`
	SpentXP  int       `json:"spent_xp"`
}

// Threshold returns the threshold for a budget type
func (g *Grid) Threshold(budgetType dnd5e.BudgetType) Threshold {
	switch budgetType {
	case dnd5e.BudgetModerate:
		return g.Moderate
	case dnd5e.BudgetHigh:
		return g.High
	default:
		return g.Low
	}
}

// RowWidth sums the cell widths of a row
func (g *Grid) RowWidth(row int) float64 {
	if row < 0 || row >= len(g.Rows) {
		return 0
	}
	total := 0.0
	for _, cell := range g.Rows[row] {
		total += cell.Width
	}
	return total
}

// Pack lays out monsters under cfg and locates budgets in the result. A nil
// cfg uses DefaultConfig.
func Pack(monsters dnd5e.Monsters, budgets dnd5e.Budgets, cfg *Config) (*Grid, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !budgets.IsOrdered() {
		return nil, errors.InvalidArgumentf(
			"budgets must satisfy 0 <= low <= moderate <= high, got %d/%d/%d",
			budgets.Low, budgets.Moderate, budgets.High)
	}

	descending := monsters.Descending()
	count := 0
	for _, row := range descending {
		if !row.ChallengeRating.IsValid() {
			return nil, errors.InvalidArgumentf("invalid challenge rating: %d", int(row.ChallengeRating))
		}
		if row.Quantity < 1 {
			return nil, errors.InvalidArgumentf("monster quantity must be positive, got %d", row.Quantity)
		}
		if row.Quantity > MaxMonsters-count {
			return nil, errors.InvalidArgumentf("chart holds at most %d monsters", MaxMonsters).
				WithMeta("max_monsters", MaxMonsters)
		}
		count += row.Quantity
	}

	widths := cellWidths(descending, cfg)
	rows := packRows(expand(descending), widths)

	grid := &Grid{Rows: rows}
	locateThresholds(grid, budgets)

	return grid, nil
}

// expand explodes each row into one entry per monster, keeping row order
func expand(rows []dnd5e.MonsterRow) []dnd5e.ChallengeRating {
	var instances []dnd5e.ChallengeRating
	for _, row := range rows {
		for i := 0; i < row.Quantity; i++ {
			instances = append(instances, row.ChallengeRating)
		}
	}
	return instances
}

// packRows appends each monster to the last row, opening a new row when the
// monster would push it past full width. Earlier rows are never revisited.
func packRows(instances []dnd5e.ChallengeRating, widths map[dnd5e.ChallengeRating]float64) [][]Cell {
	var rows [][]Cell
	used := 0.0

	for _, cr := range instances {
		width := widths[cr]
		if len(rows) == 0 || used+width > 1+widthEpsilon {
			rows = append(rows, nil)
			used = 0
		}
		last := len(rows) - 1
		rows[last] = append(rows[last], Cell{ChallengeRating: cr, Width: width})
		used += width
	}

	return rows
}
