package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

// Client calls the encounter budget service over a gRPC connection.
// Errors come back as *errors.Error with their code and metadata restored.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	method string,
	req any,
	opts ...grpc.CallOption,
) (*Resp, error) {
	in, err := toStruct(req)
	if err != nil {
		return nil, errors.InvalidArgumentf("failed to encode %s request: %v", method, err)
	}

	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	resp := new(Resp)
	if err := fromStruct(out, resp); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", method)
	}
	return resp, nil
}

// CreatePlan creates a plan
func (c *Client) CreatePlan(ctx context.Context, req *CreatePlanRequest, opts ...grpc.CallOption) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodCreatePlan, req, opts...)
}

// GetPlan loads a plan
func (c *Client) GetPlan(ctx context.Context, req *PlanRequest, opts ...grpc.CallOption) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodGetPlan, req, opts...)
}

// ListPlans pages through plans
func (c *Client) ListPlans(
	ctx context.Context,
	req *ListPlansRequest,
	opts ...grpc.CallOption,
) (*ListPlansResponse, error) {
	return invoke[ListPlansResponse](ctx, c.cc, MethodListPlans, req, opts...)
}

// DeletePlan deletes a plan
func (c *Client) DeletePlan(
	ctx context.Context,
	req *PlanRequest,
	opts ...grpc.CallOption,
) (*DeletePlanResponse, error) {
	return invoke[DeletePlanResponse](ctx, c.cc, MethodDeletePlan, req, opts...)
}

// AddPlayerRow appends a copy of the last player row
func (c *Client) AddPlayerRow(ctx context.Context, req *PlanRequest, opts ...grpc.CallOption) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodAddPlayerRow, req, opts...)
}

// RemovePlayerRow removes a player row
func (c *Client) RemovePlayerRow(ctx context.Context, req *RowRequest, opts ...grpc.CallOption) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodRemovePlayerRow, req, opts...)
}

// SetPlayerQuantity changes a player row's quantity
func (c *Client) SetPlayerQuantity(
	ctx context.Context,
	req *SetQuantityRequest,
	opts ...grpc.CallOption,
) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodSetPlayerQuantity, req, opts...)
}

// SetPlayerLevel changes a player row's level
func (c *Client) SetPlayerLevel(
	ctx context.Context,
	req *SetPlayerLevelRequest,
	opts ...grpc.CallOption,
) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodSetPlayerLevel, req, opts...)
}

// AddMonsterRow appends a copy of the last monster row
func (c *Client) AddMonsterRow(ctx context.Context, req *PlanRequest, opts ...grpc.CallOption) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodAddMonsterRow, req, opts...)
}

// RemoveMonsterRow removes a monster row
func (c *Client) RemoveMonsterRow(ctx context.Context, req *RowRequest, opts ...grpc.CallOption) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodRemoveMonsterRow, req, opts...)
}

// SetMonsterQuantity changes a monster row's quantity
func (c *Client) SetMonsterQuantity(
	ctx context.Context,
	req *SetQuantityRequest,
	opts ...grpc.CallOption,
) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodSetMonsterQuantity, req, opts...)
}

// SetMonsterChallengeRating changes a monster row's rating
func (c *Client) SetMonsterChallengeRating(
	ctx context.Context,
	req *SetMonsterChallengeRatingRequest,
	opts ...grpc.CallOption,
) (*PlanResponse, error) {
	return invoke[PlanResponse](ctx, c.cc, MethodSetMonsterChallengeRating, req, opts...)
}

// AddMonsterByID adds a catalog monster to a plan
func (c *Client) AddMonsterByID(
	ctx context.Context,
	req *AddMonsterByIDRequest,
	opts ...grpc.CallOption,
) (*AddMonsterByIDResponse, error) {
	return invoke[AddMonsterByIDResponse](ctx, c.cc, MethodAddMonsterByID, req, opts...)
}

// SuggestMonsters replaces a plan's monsters with a random set
func (c *Client) SuggestMonsters(
	ctx context.Context,
	req *SuggestMonstersRequest,
	opts ...grpc.CallOption,
) (*SuggestMonstersResponse, error) {
	return invoke[SuggestMonstersResponse](ctx, c.cc, MethodSuggestMonsters, req, opts...)
}

// GetBudget summarises a plan's budgets
func (c *Client) GetBudget(ctx context.Context, req *PlanRequest, opts ...grpc.CallOption) (*BudgetResponse, error) {
	return invoke[BudgetResponse](ctx, c.cc, MethodGetBudget, req, opts...)
}

// GetChart packs a plan's chart
func (c *Client) GetChart(ctx context.Context, req *PlanRequest, opts ...grpc.CallOption) (*ChartResponse, error) {
	return invoke[ChartResponse](ctx, c.cc, MethodGetChart, req, opts...)
}

// CalculateChart packs a chart for unsaved rosters
func (c *Client) CalculateChart(
	ctx context.Context,
	req *CalculateChartRequest,
	opts ...grpc.CallOption,
) (*ChartResponse, error) {
	return invoke[ChartResponse](ctx, c.cc, MethodCalculateChart, req, opts...)
}
