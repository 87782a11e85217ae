package grid

import (
	"math"
	"sort"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
)

// cellWidths assigns each distinct rating a width on an easing curve. The
// highest rating gets the full row; lower ratings shrink toward 1/MaxPerRow.
//
//	raw(i)   = (1 - i/n)^exponent
//	width(i) = floor + raw(i) * (1 - floor)
func cellWidths(rows []dnd5e.MonsterRow, cfg *Config) map[dnd5e.ChallengeRating]float64 {
	distinct := distinctRatings(rows)
	floor := 1 / float64(cfg.MaxPerRow)
	n := float64(len(distinct))

	widths := make(map[dnd5e.ChallengeRating]float64, len(distinct))
	for i, cr := range distinct {
		raw := math.Pow(1-float64(i)/n, cfg.WidthExponent)
		widths[cr] = floor + raw*(1-floor)
	}
	return widths
}

// distinctRatings returns the ratings present, highest XP first
func distinctRatings(rows []dnd5e.MonsterRow) []dnd5e.ChallengeRating {
	seen := make(map[dnd5e.ChallengeRating]bool)
	var distinct []dnd5e.ChallengeRating
	for _, row := range rows {
		if row.Quantity <= 0 || seen[row.ChallengeRating] {
			continue
		}
		seen[row.ChallengeRating] = true
		distinct = append(distinct, row.ChallengeRating)
	}

	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].XP() > distinct[j].XP()
	})
	return distinct
}
