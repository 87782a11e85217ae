// Package encounter implements the encounter plan orchestrator: roster edits,
// budgets and charts over stored plans
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/encounter-budget/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	"github.com/KirkDiggler/encounter-budget/internal/engine"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/pkg/idgen"
	encounterplan "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan"
)

const (
	// DefaultPlanName names plans created without one
	DefaultPlanName = "New encounter"

	errPlanIDRequired = "plan ID is required"
)

// Service defines the interface for encounter plan operations
type Service interface {
	// Plan lifecycle
	CreatePlan(ctx context.Context, input *CreatePlanInput) (*CreatePlanOutput, error)
	GetPlan(ctx context.Context, input *GetPlanInput) (*GetPlanOutput, error)
	ListPlans(ctx context.Context, input *ListPlansInput) (*ListPlansOutput, error)
	DeletePlan(ctx context.Context, input *DeletePlanInput) (*DeletePlanOutput, error)

	// Player roster edits
	AddPlayerRow(ctx context.Context, input *AddPlayerRowInput) (*EditPlanOutput, error)
	RemovePlayerRow(ctx context.Context, input *RemovePlayerRowInput) (*EditPlanOutput, error)
	SetPlayerQuantity(ctx context.Context, input *SetPlayerQuantityInput) (*EditPlanOutput, error)
	SetPlayerLevel(ctx context.Context, input *SetPlayerLevelInput) (*EditPlanOutput, error)

	// Monster roster edits
	AddMonsterRow(ctx context.Context, input *AddMonsterRowInput) (*EditPlanOutput, error)
	RemoveMonsterRow(ctx context.Context, input *RemoveMonsterRowInput) (*EditPlanOutput, error)
	SetMonsterQuantity(ctx context.Context, input *SetMonsterQuantityInput) (*EditPlanOutput, error)
	SetMonsterChallengeRating(ctx context.Context, input *SetMonsterChallengeRatingInput) (*EditPlanOutput, error)
	AddMonsterByID(ctx context.Context, input *AddMonsterByIDInput) (*AddMonsterByIDOutput, error)
	SuggestMonsters(ctx context.Context, input *SuggestMonstersInput) (*SuggestMonstersOutput, error)

	// Derived views
	GetBudget(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error)
	GetChart(ctx context.Context, input *GetChartInput) (*ChartOutput, error)
	CalculateChart(ctx context.Context, input *CalculateChartInput) (*ChartOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	PlanRepo    encounterplan.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
	// ExternalClient is optional; without it AddMonsterByID is unimplemented
	ExternalClient external.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlanRepo == nil {
		vb.RequiredField("PlanRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	planRepo       encounterplan.Repository
	engine         engine.Engine
	idGen          idgen.Generator
	externalClient external.Client
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		planRepo:       cfg.PlanRepo,
		engine:         cfg.Engine,
		idGen:          cfg.IDGenerator,
		externalClient: cfg.ExternalClient,
	}, nil
}

func (o *orchestrator) CreatePlan(ctx context.Context, input *CreatePlanInput) (*CreatePlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRosters(input.Players, input.Monsters); err != nil {
		return nil, err
	}

	plan := &dnd5e.EncounterPlan{
		ID:       o.idGen.Generate(),
		Name:     input.Name,
		Party:    dnd5e.NewParty(input.Players...),
		Monsters: dnd5e.NewMonsters(input.Monsters...),
	}
	if plan.Name == "" {
		plan.Name = DefaultPlanName
	}
	if len(input.Players) == 0 && len(input.Monsters) == 0 {
		plan.Party = dnd5e.DefaultParty()
		plan.Monsters = dnd5e.DefaultMonsters()
	}

	out, err := o.planRepo.Create(ctx, encounterplan.CreateInput{Plan: plan})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	slog.Info("encounter plan created",
		"plan_id", out.Plan.ID,
		"players", out.Plan.Party.Len(),
		"monsters", out.Plan.Monsters.Len(),
	)

	return &CreatePlanOutput{Plan: out.Plan}, nil
}

func (o *orchestrator) GetPlan(ctx context.Context, input *GetPlanInput) (*GetPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	plan, err := o.loadPlan(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}

	return &GetPlanOutput{Plan: plan}, nil
}

func (o *orchestrator) ListPlans(ctx context.Context, input *ListPlansInput) (*ListPlansOutput, error) {
	if input == nil {
		input = &ListPlansInput{}
	}
	if input.Limit < 0 || input.Offset < 0 {
		return nil, errors.InvalidArgument("limit and offset must not be negative")
	}

	out, err := o.planRepo.List(ctx, encounterplan.ListInput{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return &ListPlansOutput{Plans: out.Plans, Total: out.Total}, nil
}

func (o *orchestrator) DeletePlan(ctx context.Context, input *DeletePlanInput) (*DeletePlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlanID == "" {
		return nil, errors.InvalidArgument(errPlanIDRequired)
	}

	if _, err := o.planRepo.Delete(ctx, encounterplan.DeleteInput{ID: input.PlanID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete plan")
	}

	slog.Info("encounter plan deleted", "plan_id", input.PlanID)

	return &DeletePlanOutput{}, nil
}

func (o *orchestrator) AddPlayerRow(ctx context.Context, input *AddPlayerRowInput) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.editPlan(ctx, input.PlanID, "add_player_row", func(plan *dnd5e.EncounterPlan) {
		plan.Party = plan.Party.AddRow()
	})
}

func (o *orchestrator) RemovePlayerRow(ctx context.Context, input *RemovePlayerRowInput) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.editPlan(ctx, input.PlanID, "remove_player_row", func(plan *dnd5e.EncounterPlan) {
		plan.Party = plan.Party.RemoveRow(input.Index)
	})
}

func (o *orchestrator) SetPlayerQuantity(
	ctx context.Context,
	input *SetPlayerQuantityInput,
) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	return o.editPlan(ctx, input.PlanID, "set_player_quantity", func(plan *dnd5e.EncounterPlan) {
		plan.Party = plan.Party.SetQuantity(input.Quantity, input.Index)
	})
}

func (o *orchestrator) SetPlayerLevel(ctx context.Context, input *SetPlayerLevelInput) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < dnd5e.MinLevel || input.Level > dnd5e.MaxLevel {
		return nil, errors.InvalidArgumentf("level must be between %d and %d, got %d",
			dnd5e.MinLevel, dnd5e.MaxLevel, input.Level)
	}
	return o.editPlan(ctx, input.PlanID, "set_player_level", func(plan *dnd5e.EncounterPlan) {
		plan.Party = plan.Party.SetLevel(input.Level, input.Index)
	})
}

func (o *orchestrator) AddMonsterRow(ctx context.Context, input *AddMonsterRowInput) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.editPlan(ctx, input.PlanID, "add_monster_row", func(plan *dnd5e.EncounterPlan) {
		plan.Monsters = plan.Monsters.AddRow()
	})
}

func (o *orchestrator) RemoveMonsterRow(ctx context.Context, input *RemoveMonsterRowInput) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.editPlan(ctx, input.PlanID, "remove_monster_row", func(plan *dnd5e.EncounterPlan) {
		plan.Monsters = plan.Monsters.RemoveRow(input.Index)
	})
}

func (o *orchestrator) SetMonsterQuantity(
	ctx context.Context,
	input *SetMonsterQuantityInput,
) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	return o.editPlan(ctx, input.PlanID, "set_monster_quantity", func(plan *dnd5e.EncounterPlan) {
		plan.Monsters = plan.Monsters.SetQuantity(input.Quantity, input.Index)
	})
}

func (o *orchestrator) SetMonsterChallengeRating(
	ctx context.Context,
	input *SetMonsterChallengeRatingInput,
) (*EditPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.ChallengeRating.IsValid() {
		return nil, errors.InvalidArgumentf("invalid challenge rating: %d", int(input.ChallengeRating))
	}
	return o.editPlan(ctx, input.PlanID, "set_monster_challenge_rating", func(plan *dnd5e.EncounterPlan) {
		plan.Monsters = plan.Monsters.SetChallengeRating(input.ChallengeRating, input.Index)
	})
}

func (o *orchestrator) AddMonsterByID(ctx context.Context, input *AddMonsterByIDInput) (*AddMonsterByIDOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.externalClient == nil {
		return nil, errors.Unimplemented("monster catalog is not configured")
	}
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	monster, err := o.externalClient.GetMonsterData(ctx, input.MonsterID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up monster %s", input.MonsterID)
	}

	out, err := o.editPlan(ctx, input.PlanID, "add_monster_by_id", func(plan *dnd5e.EncounterPlan) {
		plan.Monsters = dnd5e.NewMonsters(append(plan.Monsters.Rows, dnd5e.MonsterRow{
			Quantity:        quantity,
			ChallengeRating: monster.ChallengeRating,
		})...)
	})
	if err != nil {
		return nil, err
	}

	return &AddMonsterByIDOutput{Plan: out.Plan, Monster: monster}, nil
}

func (o *orchestrator) SuggestMonsters(
	ctx context.Context,
	input *SuggestMonstersInput,
) (*SuggestMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = dnd5e.BudgetModerate
	}
	if !difficulty.IsValid() {
		return nil, errors.InvalidArgumentf("unknown difficulty: %s", difficulty)
	}

	plan, err := o.loadPlan(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}

	target := plan.Budgets().Get(difficulty)
	if target <= 0 {
		return nil, errors.FailedPreconditionf("party has no %s budget", difficulty)
	}

	suggestion, err := o.engine.SuggestMonsters(ctx, &engine.SuggestMonstersInput{TargetXP: target})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest monsters")
	}

	out, err := o.savePlan(ctx, plan, "suggest_monsters", func(next *dnd5e.EncounterPlan) {
		next.Monsters = suggestion.Monsters
	})
	if err != nil {
		return nil, err
	}

	return &SuggestMonstersOutput{
		Plan:     out.Plan,
		TargetXP: target,
		SpentXP:  suggestion.SpentXP,
	}, nil
}

func (o *orchestrator) GetBudget(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	plan, err := o.loadPlan(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{
		Budgets:    plan.Budgets(),
		SpentXP:    plan.Monsters.XP(),
		Difficulty: plan.Difficulty(),
	}, nil
}

func (o *orchestrator) GetChart(ctx context.Context, input *GetChartInput) (*ChartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	plan, err := o.loadPlan(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}

	return o.chart(ctx, plan.Party, plan.Monsters)
}

func (o *orchestrator) CalculateChart(ctx context.Context, input *CalculateChartInput) (*ChartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRosters(input.Players, input.Monsters); err != nil {
		return nil, err
	}

	return o.chart(ctx, dnd5e.NewParty(input.Players...), dnd5e.NewMonsters(input.Monsters...))
}

func (o *orchestrator) chart(ctx context.Context, party dnd5e.Party, monsters dnd5e.Monsters) (*ChartOutput, error) {
	budgets := party.Budgets()

	out, err := o.engine.PackChart(ctx, &engine.PackChartInput{
		Monsters: monsters,
		Budgets:  budgets,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack chart")
	}

	return &ChartOutput{
		Grid:       out.Grid,
		Budgets:    budgets,
		Difficulty: budgets.Classify(monsters.XP()),
	}, nil
}

func (o *orchestrator) loadPlan(ctx context.Context, planID string) (*dnd5e.EncounterPlan, error) {
	if planID == "" {
		return nil, errors.InvalidArgument(errPlanIDRequired)
	}

	out, err := o.planRepo.Get(ctx, encounterplan.GetInput{ID: planID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get plan")
	}

	return out.Plan, nil
}

// editPlan loads a plan, applies edit to a copy and stores the result. Edits
// that leave both rosters unchanged are not written.
func (o *orchestrator) editPlan(
	ctx context.Context,
	planID, op string,
	edit func(plan *dnd5e.EncounterPlan),
) (*EditPlanOutput, error) {
	plan, err := o.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	return o.savePlan(ctx, plan, op, edit)
}

func (o *orchestrator) savePlan(
	ctx context.Context,
	plan *dnd5e.EncounterPlan,
	op string,
	edit func(plan *dnd5e.EncounterPlan),
) (*EditPlanOutput, error) {
	next := plan.Clone()
	edit(next)

	if next.Party.Equal(plan.Party) && next.Monsters.Equal(plan.Monsters) {
		slog.Debug("encounter plan edit was a no-op",
			"plan_id", plan.ID,
			"op", op,
		)
		return &EditPlanOutput{Plan: plan, Changed: false}, nil
	}

	out, err := o.planRepo.Update(ctx, encounterplan.UpdateInput{
		Plan:            next,
		ExpectedVersion: plan.Version,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update plan")
	}

	slog.Info("encounter plan updated",
		"plan_id", out.Plan.ID,
		"op", op,
		"version", out.Plan.Version,
		"spent_xp", out.Plan.Monsters.XP(),
	)

	return &EditPlanOutput{Plan: out.Plan, Changed: true}, nil
}

func validateRosters(players []dnd5e.PlayerRow, monsters []dnd5e.MonsterRow) error {
	vb := errors.NewValidationBuilder()

	for i, row := range players {
		if row.Level < dnd5e.MinLevel || row.Level > dnd5e.MaxLevel {
			vb.Field(fmt.Sprintf("players[%d].level", i),
				fmt.Sprintf("must be between %d and %d", dnd5e.MinLevel, dnd5e.MaxLevel))
		}
		errors.ValidateRange(fmt.Sprintf("players[%d].quantity", i), row.Quantity,
			dnd5e.MinQuantity, dnd5e.MaxQuantity, vb)
	}
	for i, row := range monsters {
		if !row.ChallengeRating.IsValid() {
			vb.Field(fmt.Sprintf("monsters[%d].challenge_rating", i), "unknown challenge rating")
		}
		errors.ValidateRange(fmt.Sprintf("monsters[%d].quantity", i), row.Quantity,
			dnd5e.MinQuantity, dnd5e.MaxQuantity, vb)
	}

	return vb.Build()
}

func validateQuantity(quantity int) error {
	if !dnd5e.ValidQuantity(quantity) {
		return errors.InvalidArgumentf("quantity must be between %d and %d, got %d",
			dnd5e.MinQuantity, dnd5e.MaxQuantity, quantity)
	}
	return nil
}
