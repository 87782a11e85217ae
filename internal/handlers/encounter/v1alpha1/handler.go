// Package v1alpha1 handles the encounter budget grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/orchestrators/encounter"
)

// HandlerConfig holds dependencies for the encounter budget handler
type HandlerConfig struct {
	EncounterService encounter.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.EncounterService == nil {
		return errors.InvalidArgument("encounter service is required")
	}
	return nil
}

// Handler implements the encounter budget gRPC service
type Handler struct {
	encounterService encounter.Service
}

var _ EncounterBudgetServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		encounterService: cfg.EncounterService,
	}, nil
}

// CreatePlan creates a plan from the given rosters
func (h *Handler) CreatePlan(ctx context.Context, req *CreatePlanRequest) (*PlanResponse, error) {
	monsters, err := convertMonsterRowsFromWire(req.Monsters)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.encounterService.CreatePlan(ctx, &encounter.CreatePlanInput{
		Name:     req.Name,
		Players:  convertPlayerRowsFromWire(req.Players),
		Monsters: monsters,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &PlanResponse{Plan: convertPlanToWire(out.Plan), Changed: true}, nil
}

// GetPlan loads a plan
func (h *Handler) GetPlan(ctx context.Context, req *PlanRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.GetPlan(ctx, &encounter.GetPlanInput{PlanID: req.PlanID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &PlanResponse{Plan: convertPlanToWire(out.Plan)}, nil
}

// ListPlans returns a page of plans, most recently edited first
func (h *Handler) ListPlans(ctx context.Context, req *ListPlansRequest) (*ListPlansResponse, error) {
	out, err := h.encounterService.ListPlans(ctx, &encounter.ListPlansInput{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	plans := make([]*Plan, 0, len(out.Plans))
	for _, plan := range out.Plans {
		plans = append(plans, convertPlanToWire(plan))
	}

	return &ListPlansResponse{Plans: plans, Total: out.Total}, nil
}

// DeletePlan deletes a plan
func (h *Handler) DeletePlan(ctx context.Context, req *PlanRequest) (*DeletePlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	if _, err := h.encounterService.DeletePlan(ctx, &encounter.DeletePlanInput{PlanID: req.PlanID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeletePlanResponse{}, nil
}

// AddPlayerRow appends a copy of the last player row
func (h *Handler) AddPlayerRow(ctx context.Context, req *PlanRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.AddPlayerRow(ctx, &encounter.AddPlayerRowInput{PlanID: req.PlanID})
	return editResponse(out, err)
}

// RemovePlayerRow removes a player row
func (h *Handler) RemovePlayerRow(ctx context.Context, req *RowRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.RemovePlayerRow(ctx, &encounter.RemovePlayerRowInput{
		PlanID: req.PlanID,
		Index:  req.Index,
	})
	return editResponse(out, err)
}

// SetPlayerQuantity changes how many characters a player row holds
func (h *Handler) SetPlayerQuantity(ctx context.Context, req *SetQuantityRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.SetPlayerQuantity(ctx, &encounter.SetPlayerQuantityInput{
		PlanID:   req.PlanID,
		Index:    req.Index,
		Quantity: req.Quantity,
	})
	return editResponse(out, err)
}

// SetPlayerLevel changes a player row's level
func (h *Handler) SetPlayerLevel(ctx context.Context, req *SetPlayerLevelRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.SetPlayerLevel(ctx, &encounter.SetPlayerLevelInput{
		PlanID: req.PlanID,
		Index:  req.Index,
		Level:  req.Level,
	})
	return editResponse(out, err)
}

// AddMonsterRow appends a copy of the last monster row
func (h *Handler) AddMonsterRow(ctx context.Context, req *PlanRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.AddMonsterRow(ctx, &encounter.AddMonsterRowInput{PlanID: req.PlanID})
	return editResponse(out, err)
}

// RemoveMonsterRow removes a monster row
func (h *Handler) RemoveMonsterRow(ctx context.Context, req *RowRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.RemoveMonsterRow(ctx, &encounter.RemoveMonsterRowInput{
		PlanID: req.PlanID,
		Index:  req.Index,
	})
	return editResponse(out, err)
}

// SetMonsterQuantity changes how many monsters a row holds
func (h *Handler) SetMonsterQuantity(ctx context.Context, req *SetQuantityRequest) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.SetMonsterQuantity(ctx, &encounter.SetMonsterQuantityInput{
		PlanID:   req.PlanID,
		Index:    req.Index,
		Quantity: req.Quantity,
	})
	return editResponse(out, err)
}

// SetMonsterChallengeRating changes a monster row's challenge rating
func (h *Handler) SetMonsterChallengeRating(
	ctx context.Context,
	req *SetMonsterChallengeRatingRequest,
) (*PlanResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}
	if req.ChallengeRating == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("challenge_rating is required"))
	}

	cr, err := dnd5e.ParseChallengeRating(req.ChallengeRating)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.encounterService.SetMonsterChallengeRating(ctx, &encounter.SetMonsterChallengeRatingInput{
		PlanID:          req.PlanID,
		Index:           req.Index,
		ChallengeRating: cr,
	})
	return editResponse(out, err)
}

// AddMonsterByID adds a monster from the D&D 5e catalog
func (h *Handler) AddMonsterByID(ctx context.Context, req *AddMonsterByIDRequest) (*AddMonsterByIDResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}
	if req.MonsterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("monster_id is required"))
	}

	out, err := h.encounterService.AddMonsterByID(ctx, &encounter.AddMonsterByIDInput{
		PlanID:    req.PlanID,
		MonsterID: req.MonsterID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AddMonsterByIDResponse{
		Plan:    convertPlanToWire(out.Plan),
		Monster: convertMonsterToWire(out.Monster),
	}, nil
}

// SuggestMonsters replaces a plan's monsters with a random set spending one budget
func (h *Handler) SuggestMonsters(ctx context.Context, req *SuggestMonstersRequest) (*SuggestMonstersResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.SuggestMonsters(ctx, &encounter.SuggestMonstersInput{
		PlanID:     req.PlanID,
		Difficulty: dnd5e.BudgetType(req.Difficulty),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SuggestMonstersResponse{
		Plan:     convertPlanToWire(out.Plan),
		TargetXP: out.TargetXP,
		SpentXP:  out.SpentXP,
	}, nil
}

// GetBudget summarises a plan's budgets and spend
func (h *Handler) GetBudget(ctx context.Context, req *PlanRequest) (*BudgetResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.GetBudget(ctx, &encounter.GetBudgetInput{PlanID: req.PlanID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BudgetResponse{
		Budgets:    convertBudgetsToWire(out.Budgets),
		SpentXP:    out.SpentXP,
		Difficulty: string(out.Difficulty),
	}, nil
}

// GetChart packs the chart of a stored plan
func (h *Handler) GetChart(ctx context.Context, req *PlanRequest) (*ChartResponse, error) {
	if req.PlanID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("plan_id is required"))
	}

	out, err := h.encounterService.GetChart(ctx, &encounter.GetChartInput{PlanID: req.PlanID})
	return chartResponse(out, err)
}

// CalculateChart packs a chart for rosters that are not stored
func (h *Handler) CalculateChart(ctx context.Context, req *CalculateChartRequest) (*ChartResponse, error) {
	monsters, err := convertMonsterRowsFromWire(req.Monsters)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.encounterService.CalculateChart(ctx, &encounter.CalculateChartInput{
		Players:  convertPlayerRowsFromWire(req.Players),
		Monsters: monsters,
	})
	return chartResponse(out, err)
}

func editResponse(out *encounter.EditPlanOutput, err error) (*PlanResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PlanResponse{Plan: convertPlanToWire(out.Plan), Changed: out.Changed}, nil
}

func chartResponse(out *encounter.ChartOutput, err error) (*ChartResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ChartResponse{
		Chart:      convertChartToWire(out.Grid),
		Budgets:    convertBudgetsToWire(out.Budgets),
		Difficulty: string(out.Difficulty),
	}, nil
}
