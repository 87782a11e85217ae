package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
	"github.com/KirkDiggler/encounter-budget/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/encounter-budget/internal/orchestrators/encounter/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEncounter *encountermock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEncounter = encountermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: s.mockEncounter,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func testPlan() *dnd5e.EncounterPlan {
	return &dnd5e.EncounterPlan{
		ID:        "plan_1",
		Name:      "Goblin ambush",
		Party:     dnd5e.NewParty(dnd5e.PlayerRow{Level: 1, Quantity: 4}),
		Monsters:  dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 6, ChallengeRating: dnd5e.CRQuarter}),
		Version:   3,
		CreatedAt: 1700000000,
		UpdatedAt: 1700000100,
	}
}

func (s *HandlerTestSuite) TestNewHandler_MissingService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreatePlan() {
	s.mockEncounter.EXPECT().
		CreatePlan(s.ctx, &encounter.CreatePlanInput{
			Name:     "Goblin ambush",
			Players:  []dnd5e.PlayerRow{{Level: 1, Quantity: 4}},
			Monsters: []dnd5e.MonsterRow{{Quantity: 6, ChallengeRating: dnd5e.CRQuarter}},
		}).
		Return(&encounter.CreatePlanOutput{Plan: testPlan()}, nil)

	resp, err := s.handler.CreatePlan(s.ctx, &v1alpha1.CreatePlanRequest{
		Name:     "Goblin ambush",
		Players:  []v1alpha1.PlayerRow{{Level: 1, Quantity: 4}},
		Monsters: []v1alpha1.MonsterRow{{Quantity: 6, ChallengeRating: "1/4"}},
	})
	s.Require().NoError(err)
	s.True(resp.Changed)

	plan := resp.Plan
	s.Equal("plan_1", plan.ID)
	s.Equal([]v1alpha1.PlayerRow{{Level: 1, Quantity: 4}}, plan.Players)
	s.Equal([]v1alpha1.MonsterRow{{Quantity: 6, ChallengeRating: "1/4", XP: 300}}, plan.Monsters)
	s.Equal(v1alpha1.Budgets{Low: 200, Moderate: 300, High: 400}, plan.Budgets)
	s.Equal(300, plan.SpentXP)
	s.Equal("moderate", plan.Difficulty)
	s.Equal(int64(3), plan.Version)
}

func (s *HandlerTestSuite) TestCreatePlan_EmptyRostersPassNil() {
	s.mockEncounter.EXPECT().
		CreatePlan(s.ctx, &encounter.CreatePlanInput{}).
		Return(&encounter.CreatePlanOutput{Plan: testPlan()}, nil)

	_, err := s.handler.CreatePlan(s.ctx, &v1alpha1.CreatePlanRequest{})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestCreatePlan_InvalidChallengeRating() {
	_, err := s.handler.CreatePlan(s.ctx, &v1alpha1.CreatePlanRequest{
		Monsters: []v1alpha1.MonsterRow{
			{Quantity: 1, ChallengeRating: "1"},
			{Quantity: 1, ChallengeRating: "1/3"},
		},
	})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "monsters[1].challenge_rating")
}

func (s *HandlerTestSuite) TestRequiresPlanID() {
	_, err := s.handler.GetPlan(s.ctx, &v1alpha1.PlanRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.DeletePlan(s.ctx, &v1alpha1.PlanRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.AddPlayerRow(s.ctx, &v1alpha1.PlanRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.SetMonsterQuantity(s.ctx, &v1alpha1.SetQuantityRequest{Quantity: 2})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GetChart(s.ctx, &v1alpha1.PlanRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetPlan_NotFound() {
	s.mockEncounter.EXPECT().
		GetPlan(s.ctx, &encounter.GetPlanInput{PlanID: "missing"}).
		Return(nil, errors.NotFound("plan not found"))

	_, err := s.handler.GetPlan(s.ctx, &v1alpha1.PlanRequest{PlanID: "missing"})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestListPlans() {
	s.mockEncounter.EXPECT().
		ListPlans(s.ctx, &encounter.ListPlansInput{Limit: 10, Offset: 5}).
		Return(&encounter.ListPlansOutput{Plans: []*dnd5e.EncounterPlan{testPlan()}, Total: 6}, nil)

	resp, err := s.handler.ListPlans(s.ctx, &v1alpha1.ListPlansRequest{Limit: 10, Offset: 5})
	s.Require().NoError(err)
	s.Equal(6, resp.Total)
	s.Require().Len(resp.Plans, 1)
	s.Equal("plan_1", resp.Plans[0].ID)
}

func (s *HandlerTestSuite) TestRosterEdits() {
	plan := testPlan()

	s.mockEncounter.EXPECT().
		SetPlayerLevel(s.ctx, &encounter.SetPlayerLevelInput{PlanID: "plan_1", Index: 0, Level: 5}).
		Return(&encounter.EditPlanOutput{Plan: plan, Changed: true}, nil)
	resp, err := s.handler.SetPlayerLevel(s.ctx, &v1alpha1.SetPlayerLevelRequest{PlanID: "plan_1", Level: 5})
	s.Require().NoError(err)
	s.True(resp.Changed)

	s.mockEncounter.EXPECT().
		RemoveMonsterRow(s.ctx, &encounter.RemoveMonsterRowInput{PlanID: "plan_1", Index: 7}).
		Return(&encounter.EditPlanOutput{Plan: plan}, nil)
	resp, err = s.handler.RemoveMonsterRow(s.ctx, &v1alpha1.RowRequest{PlanID: "plan_1", Index: 7})
	s.Require().NoError(err)
	s.False(resp.Changed)

	s.mockEncounter.EXPECT().
		SetMonsterChallengeRating(s.ctx, &encounter.SetMonsterChallengeRatingInput{
			PlanID:          "plan_1",
			Index:           0,
			ChallengeRating: dnd5e.CREighth,
		}).
		Return(&encounter.EditPlanOutput{Plan: plan, Changed: true}, nil)
	_, err = s.handler.SetMonsterChallengeRating(s.ctx, &v1alpha1.SetMonsterChallengeRatingRequest{
		PlanID:          "plan_1",
		ChallengeRating: "0.125",
	})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestSetMonsterChallengeRating_Invalid() {
	_, err := s.handler.SetMonsterChallengeRating(s.ctx, &v1alpha1.SetMonsterChallengeRatingRequest{
		PlanID:          "plan_1",
		ChallengeRating: "31",
	})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.SetMonsterChallengeRating(s.ctx, &v1alpha1.SetMonsterChallengeRatingRequest{PlanID: "plan_1"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestEditConflict() {
	s.mockEncounter.EXPECT().
		AddMonsterRow(s.ctx, &encounter.AddMonsterRowInput{PlanID: "plan_1"}).
		Return(nil, errors.Aborted("plan was modified concurrently"))

	_, err := s.handler.AddMonsterRow(s.ctx, &v1alpha1.PlanRequest{PlanID: "plan_1"})
	s.Equal(codes.Aborted, status.Code(err))
}

func (s *HandlerTestSuite) TestAddMonsterByID() {
	s.mockEncounter.EXPECT().
		AddMonsterByID(s.ctx, &encounter.AddMonsterByIDInput{PlanID: "plan_1", MonsterID: "goblin", Quantity: 2}).
		Return(&encounter.AddMonsterByIDOutput{
			Plan:    testPlan(),
			Monster: &external.MonsterData{ID: "goblin", Name: "Goblin", ChallengeRating: dnd5e.CRQuarter},
		}, nil)

	resp, err := s.handler.AddMonsterByID(s.ctx, &v1alpha1.AddMonsterByIDRequest{
		PlanID:    "plan_1",
		MonsterID: "goblin",
		Quantity:  2,
	})
	s.Require().NoError(err)
	s.Equal(&v1alpha1.Monster{ID: "goblin", Name: "Goblin", ChallengeRating: "1/4", XP: 50}, resp.Monster)
}

func (s *HandlerTestSuite) TestAddMonsterByID_RequiresMonsterID() {
	_, err := s.handler.AddMonsterByID(s.ctx, &v1alpha1.AddMonsterByIDRequest{PlanID: "plan_1"})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSuggestMonsters() {
	s.mockEncounter.EXPECT().
		SuggestMonsters(s.ctx, &encounter.SuggestMonstersInput{PlanID: "plan_1", Difficulty: dnd5e.BudgetHigh}).
		Return(&encounter.SuggestMonstersOutput{Plan: testPlan(), TargetXP: 400, SpentXP: 300}, nil)

	resp, err := s.handler.SuggestMonsters(s.ctx, &v1alpha1.SuggestMonstersRequest{
		PlanID:     "plan_1",
		Difficulty: "high",
	})
	s.Require().NoError(err)
	s.Equal(400, resp.TargetXP)
	s.Equal(300, resp.SpentXP)
}

func (s *HandlerTestSuite) TestGetBudget() {
	s.mockEncounter.EXPECT().
		GetBudget(s.ctx, &encounter.GetBudgetInput{PlanID: "plan_1"}).
		Return(&encounter.GetBudgetOutput{
			Budgets:    dnd5e.Budgets{Low: 200, Moderate: 300, High: 400},
			SpentXP:    300,
			Difficulty: dnd5e.DifficultyModerate,
		}, nil)

	resp, err := s.handler.GetBudget(s.ctx, &v1alpha1.PlanRequest{PlanID: "plan_1"})
	s.Require().NoError(err)
	s.Equal(&v1alpha1.BudgetResponse{
		Budgets:    v1alpha1.Budgets{Low: 200, Moderate: 300, High: 400},
		SpentXP:    300,
		Difficulty: "moderate",
	}, resp)
}

func (s *HandlerTestSuite) TestCalculateChart() {
	chart := &grid.Grid{
		Rows: [][]grid.Cell{
			{{ChallengeRating: dnd5e.CROne, Width: 0.5}, {ChallengeRating: dnd5e.CROne, Width: 0.5}},
		},
		Low:      grid.Threshold{Row: 0, Fraction: 0.5, XP: 100, Met: true},
		Moderate: grid.Threshold{Row: 0, Fraction: 0.75, XP: 150, Met: true},
		High:     grid.Threshold{Row: 0, Fraction: 1, XP: 200, Met: true},
		SpentXP:  400,
	}

	s.mockEncounter.EXPECT().
		CalculateChart(s.ctx, &encounter.CalculateChartInput{
			Players:  []dnd5e.PlayerRow{{Level: 1, Quantity: 2}},
			Monsters: []dnd5e.MonsterRow{{Quantity: 2, ChallengeRating: dnd5e.CROne}},
		}).
		Return(&encounter.ChartOutput{
			Grid:       chart,
			Budgets:    dnd5e.Budgets{Low: 100, Moderate: 150, High: 200},
			Difficulty: dnd5e.DifficultyHigh,
		}, nil)

	resp, err := s.handler.CalculateChart(s.ctx, &v1alpha1.CalculateChartRequest{
		Players:  []v1alpha1.PlayerRow{{Level: 1, Quantity: 2}},
		Monsters: []v1alpha1.MonsterRow{{Quantity: 2, ChallengeRating: "1"}},
	})
	s.Require().NoError(err)
	s.Equal("high", resp.Difficulty)
	s.Equal([][]v1alpha1.Cell{{{ChallengeRating: "1", Width: 0.5}, {ChallengeRating: "1", Width: 0.5}}}, resp.Chart.Rows)
	s.Equal(v1alpha1.Threshold{Row: 0, Fraction: 0.75, XP: 150, Met: true}, resp.Chart.Moderate)
	s.Equal(400, resp.Chart.SpentXP)
}
