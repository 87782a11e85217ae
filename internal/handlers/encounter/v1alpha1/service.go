package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "encounterbudget.api.v1alpha1.EncounterBudgetService"

// Method names
const (
	MethodCreatePlan                = "CreatePlan"
	MethodGetPlan                   = "GetPlan"
	MethodListPlans                 = "ListPlans"
	MethodDeletePlan                = "DeletePlan"
	MethodAddPlayerRow              = "AddPlayerRow"
	MethodRemovePlayerRow           = "RemovePlayerRow"
	MethodSetPlayerQuantity         = "SetPlayerQuantity"
	MethodSetPlayerLevel            = "SetPlayerLevel"
	MethodAddMonsterRow             = "AddMonsterRow"
	MethodRemoveMonsterRow          = "RemoveMonsterRow"
	MethodSetMonsterQuantity        = "SetMonsterQuantity"
	MethodSetMonsterChallengeRating = "SetMonsterChallengeRating"
	MethodAddMonsterByID            = "AddMonsterByID"
	MethodSuggestMonsters           = "SuggestMonsters"
	MethodGetBudget                 = "GetBudget"
	MethodGetChart                  = "GetChart"
	MethodCalculateChart            = "CalculateChart"
)

// EncounterBudgetServiceServer is the server API of the encounter budget service.
// Messages travel as google.protobuf.Struct and are decoded into the request
// types of this package.
type EncounterBudgetServiceServer interface {
	CreatePlan(context.Context, *CreatePlanRequest) (*PlanResponse, error)
	GetPlan(context.Context, *PlanRequest) (*PlanResponse, error)
	ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error)
	DeletePlan(context.Context, *PlanRequest) (*DeletePlanResponse, error)
	AddPlayerRow(context.Context, *PlanRequest) (*PlanResponse, error)
	RemovePlayerRow(context.Context, *RowRequest) (*PlanResponse, error)
	SetPlayerQuantity(context.Context, *SetQuantityRequest) (*PlanResponse, error)
	SetPlayerLevel(context.Context, *SetPlayerLevelRequest) (*PlanResponse, error)
	AddMonsterRow(context.Context, *PlanRequest) (*PlanResponse, error)
	RemoveMonsterRow(context.Context, *RowRequest) (*PlanResponse, error)
	SetMonsterQuantity(context.Context, *SetQuantityRequest) (*PlanResponse, error)
	SetMonsterChallengeRating(context.Context, *SetMonsterChallengeRatingRequest) (*PlanResponse, error)
	AddMonsterByID(context.Context, *AddMonsterByIDRequest) (*AddMonsterByIDResponse, error)
	SuggestMonsters(context.Context, *SuggestMonstersRequest) (*SuggestMonstersResponse, error)
	GetBudget(context.Context, *PlanRequest) (*BudgetResponse, error)
	GetChart(context.Context, *PlanRequest) (*ChartResponse, error)
	CalculateChart(context.Context, *CalculateChartRequest) (*ChartResponse, error)
}

// EncounterBudgetService_ServiceDesc describes the service for grpc.Server
var EncounterBudgetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EncounterBudgetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodCreatePlan, EncounterBudgetServiceServer.CreatePlan),
		unaryMethod(MethodGetPlan, EncounterBudgetServiceServer.GetPlan),
		unaryMethod(MethodListPlans, EncounterBudgetServiceServer.ListPlans),
		unaryMethod(MethodDeletePlan, EncounterBudgetServiceServer.DeletePlan),
		unaryMethod(MethodAddPlayerRow, EncounterBudgetServiceServer.AddPlayerRow),
		unaryMethod(MethodRemovePlayerRow, EncounterBudgetServiceServer.RemovePlayerRow),
		unaryMethod(MethodSetPlayerQuantity, EncounterBudgetServiceServer.SetPlayerQuantity),
		unaryMethod(MethodSetPlayerLevel, EncounterBudgetServiceServer.SetPlayerLevel),
		unaryMethod(MethodAddMonsterRow, EncounterBudgetServiceServer.AddMonsterRow),
		unaryMethod(MethodRemoveMonsterRow, EncounterBudgetServiceServer.RemoveMonsterRow),
		unaryMethod(MethodSetMonsterQuantity, EncounterBudgetServiceServer.SetMonsterQuantity),
		unaryMethod(MethodSetMonsterChallengeRating, EncounterBudgetServiceServer.SetMonsterChallengeRating),
		unaryMethod(MethodAddMonsterByID, EncounterBudgetServiceServer.AddMonsterByID),
		unaryMethod(MethodSuggestMonsters, EncounterBudgetServiceServer.SuggestMonsters),
		unaryMethod(MethodGetBudget, EncounterBudgetServiceServer.GetBudget),
		unaryMethod(MethodGetChart, EncounterBudgetServiceServer.GetChart),
		unaryMethod(MethodCalculateChart, EncounterBudgetServiceServer.CalculateChart),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "encounterbudget/api/v1alpha1/encounter_budget.proto",
}

// RegisterEncounterBudgetServiceServer registers srv with s
func RegisterEncounterBudgetServiceServer(s grpc.ServiceRegistrar, srv EncounterBudgetServiceServer) {
	s.RegisterService(&EncounterBudgetService_ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryMethod[Req, Resp any](
	method string,
	call func(EncounterBudgetServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}

			handler := func(ctx context.Context, msg any) (any, error) {
				req := new(Req)
				if err := fromStruct(msg.(*structpb.Struct), req); err != nil {
					return nil, errors.ToGRPCError(errors.InvalidArgumentf("malformed %s request: %v", method, err))
				}

				resp, err := call(srv.(EncounterBudgetServiceServer), ctx, req)
				if err != nil {
					return nil, err
				}
				if resp == nil {
					resp = new(Resp)
				}

				out, err := toStruct(resp)
				if err != nil {
					return nil, errors.ToGRPCError(errors.Wrapf(err, "failed to encode %s response", method))
				}
				return out, nil
			}

			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromStruct(in *structpb.Struct, v any) error {
	if in == nil {
		return nil
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
