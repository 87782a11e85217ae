package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

type engine struct {
	chart  *grid.Config
	roller dice.Roller
}

// Config contains the engine dependencies
type Config struct {
	Chart      *grid.Config
	DiceRoller dice.Roller
}

// Validate checks that the config can build an engine
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Chart == nil {
		vb.RequiredField("Chart")
	} else if err := cfg.Chart.Validate(); err != nil {
		vb.Field("Chart", errors.GetMessage(err))
	}
	if cfg.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{
		chart:  cfg.Chart,
		roller: cfg.DiceRoller,
	}, nil
}

func (e *engine) PackChart(
	_ context.Context,
	input *PackChartInput,
) (*PackChartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	g, err := grid.Pack(input.Monsters, input.Budgets, e.chart)
	if err != nil {
		return nil, err
	}

	return &PackChartOutput{Grid: g}, nil
}

func (e *engine) SuggestMonsters(
	ctx context.Context,
	input *SuggestMonstersInput,
) (*SuggestMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TargetXP <= 0 {
		return nil, errors.InvalidArgumentf("target xp must be positive, got %d", input.TargetXP)
	}

	maxRows := input.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultSuggestionRows
	}

	remaining := input.TargetXP
	var monsters dnd5e.Monsters

	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "suggestion canceled")
		}

		candidates := affordable(remaining)
		if len(candidates) == 0 {
			break
		}

		pick, err := e.roll(len(candidates))
		if err != nil {
			return nil, err
		}
		cr := candidates[pick-1]

		quantity, err := e.roll(suggestionQuantityDie)
		if err != nil {
			return nil, err
		}
		if fits := remaining / cr.XP(); quantity > fits {
			quantity = fits
		}

		index := rowIndex(monsters, cr)
		switch {
		case index >= 0:
			monsters = monsters.SetQuantity(monsters.Rows[index].Quantity+quantity, index)
		case monsters.Len() < maxRows:
			monsters = dnd5e.NewMonsters(append(monsters.Rows,
				dnd5e.MonsterRow{Quantity: quantity, ChallengeRating: cr})...)
		default:
			return e.suggestion(input.TargetXP, monsters), nil
		}

		remaining -= quantity * cr.XP()
	}

	return e.suggestion(input.TargetXP, monsters), nil
}

func (e *engine) suggestion(target int, monsters dnd5e.Monsters) *SuggestMonstersOutput {
	slog.Debug("suggested monsters",
		"target_xp", target,
		"spent_xp", monsters.XP(),
		"rows", monsters.Len())

	return &SuggestMonstersOutput{
		Monsters: monsters,
		SpentXP:  monsters.XP(),
	}
}

// roll returns a value in [1, size]
func (e *engine) roll(size int) (int, error) {
	value, err := e.roller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if value < 1 || value > size {
		return 0, errors.Internalf("roll of d%d out of range: %d", size, value)
	}
	return value, nil
}

// affordable returns the ratings whose XP fits in budget, lowest first
func affordable(budget int) []dnd5e.ChallengeRating {
	var fits []dnd5e.ChallengeRating
	for _, cr := range dnd5e.ChallengeRatings() {
		if cr.XP() > budget {
			break
		}
		fits = append(fits, cr)
	}
	return fits
}

func rowIndex(monsters dnd5e.Monsters, cr dnd5e.ChallengeRating) int {
	for i, row := range monsters.Rows {
		if row.ChallengeRating == cr {
			return i
		}
	}
	return -1
}
