// Package engine runs the encounter rules: chart packing and monster suggestions
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/encounter-budget/internal/engine Engine

import (
	"context"
)

// Engine provides encounter calculations on top of the rules tables
type Engine interface {
	// PackChart lays monsters out as a proportional chart with budget markers
	PackChart(ctx context.Context, input *PackChartInput) (*PackChartOutput, error)

	// SuggestMonsters rolls a random monster set that spends a target XP
	SuggestMonsters(ctx context.Context, input *SuggestMonstersInput) (*SuggestMonstersOutput, error)
}
