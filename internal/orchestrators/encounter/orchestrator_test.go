package encounter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	externalmock "github.com/KirkDiggler/encounter-budget/internal/clients/external/mock"
	"github.com/KirkDiggler/encounter-budget/internal/engine"
	"github.com/KirkDiggler/encounter-budget/internal/engine/grid"
	enginemock "github.com/KirkDiggler/encounter-budget/internal/engine/mock"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/orchestrators/encounter"
	"github.com/KirkDiggler/encounter-budget/internal/pkg/idgen"
	encounterplan "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan"
	encounterplanmock "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan/mock"
	"github.com/KirkDiggler/encounter-budget/internal/testutils"
	"github.com/KirkDiggler/encounter-budget/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockPlanRepo       *encounterplanmock.MockRepository
	mockEngine         *enginemock.MockEngine
	mockExternalClient *externalmock.MockClient
	orchestrator       encounter.Service
	ctx                context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlanRepo = encounterplanmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockExternalClient = externalmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := encounter.NewOrchestrator(&encounter.Config{
		PlanRepo:       s.mockPlanRepo,
		Engine:         s.mockEngine,
		IDGenerator:    idgen.NewSequential("plan"),
		ExternalClient: s.mockExternalClient,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// storedPlan is four level 1 characters against two CR 1 monsters at version 3
func storedPlan() *dnd5e.EncounterPlan {
	return testutils.CreateStoredTestPlan(
		testutils.CreateTestPlanWithMonsters("plan_1", dnd5e.DefaultMonsters().Rows...), 3)
}

func (s *OrchestratorTestSuite) expectGet(plan *dnd5e.EncounterPlan) {
	mocks.ExpectPlanGet(s.ctx, s.mockPlanRepo, plan)
}

// expectUpdate accepts the next version of plan and checks the written rosters
func (s *OrchestratorTestSuite) expectUpdate(plan *dnd5e.EncounterPlan, check func(next *dnd5e.EncounterPlan)) {
	mocks.ExpectPlanUpdate(s.T(), s.ctx, s.mockPlanRepo, plan, check)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := encounter.NewOrchestrator(&encounter.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = encounter.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreatePlan_SeedsDefaults() {
	s.mockPlanRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input encounterplan.CreateInput) (*encounterplan.CreateOutput, error) {
			s.Equal("plan_1", input.Plan.ID)
			s.Equal(encounter.DefaultPlanName, input.Plan.Name)
			s.Equal(dnd5e.DefaultParty(), input.Plan.Party)
			s.Equal(dnd5e.DefaultMonsters(), input.Plan.Monsters)
			return &encounterplan.CreateOutput{Plan: input.Plan}, nil
		})

	out, err := s.orchestrator.CreatePlan(s.ctx, &encounter.CreatePlanInput{})
	s.Require().NoError(err)
	s.Equal("plan_1", out.Plan.ID)
}

func (s *OrchestratorTestSuite) TestCreatePlan_KeepsRosters() {
	players := []dnd5e.PlayerRow{{Level: 5, Quantity: 3}}

	s.mockPlanRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input encounterplan.CreateInput) (*encounterplan.CreateOutput, error) {
			s.Equal("Dragon lair", input.Plan.Name)
			s.Equal(players, input.Plan.Party.Rows)
			s.Empty(input.Plan.Monsters.Rows)
			return &encounterplan.CreateOutput{Plan: input.Plan}, nil
		})

	_, err := s.orchestrator.CreatePlan(s.ctx, &encounter.CreatePlanInput{
		Name:    "Dragon lair",
		Players: players,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestCreatePlan_InvalidRows() {
	_, err := s.orchestrator.CreatePlan(s.ctx, &encounter.CreatePlanInput{
		Players:  []dnd5e.PlayerRow{{Level: 0, Quantity: 1}},
		Monsters: []dnd5e.MonsterRow{{Quantity: 0, ChallengeRating: dnd5e.CROne}},
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "players[0].level")
	s.Contains(err.Error(), "monsters[0].quantity")
}

func (s *OrchestratorTestSuite) TestGetPlan() {
	plan := storedPlan()
	s.expectGet(plan)

	out, err := s.orchestrator.GetPlan(s.ctx, &encounter.GetPlanInput{PlanID: plan.ID})
	s.Require().NoError(err)
	s.Equal(plan, out.Plan)
}

func (s *OrchestratorTestSuite) TestGetPlan_Errors() {
	_, err := s.orchestrator.GetPlan(s.ctx, &encounter.GetPlanInput{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "plan ID is required")

	s.mockPlanRepo.EXPECT().
		Get(s.ctx, encounterplan.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("plan not found"))

	_, err = s.orchestrator.GetPlan(s.ctx, &encounter.GetPlanInput{PlanID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to get plan")
}

func (s *OrchestratorTestSuite) TestListAndDeletePlans() {
	s.mockPlanRepo.EXPECT().
		List(s.ctx, encounterplan.ListInput{Limit: 10, Offset: 5}).
		Return(&encounterplan.ListOutput{Plans: []*dnd5e.EncounterPlan{storedPlan()}, Total: 6}, nil)

	list, err := s.orchestrator.ListPlans(s.ctx, &encounter.ListPlansInput{Limit: 10, Offset: 5})
	s.Require().NoError(err)
	s.Equal(6, list.Total)
	s.Len(list.Plans, 1)

	_, err = s.orchestrator.ListPlans(s.ctx, &encounter.ListPlansInput{Limit: -1})
	s.True(errors.IsInvalidArgument(err))

	s.mockPlanRepo.EXPECT().
		Delete(s.ctx, encounterplan.DeleteInput{ID: "plan_1"}).
		Return(&encounterplan.DeleteOutput{}, nil)

	_, err = s.orchestrator.DeletePlan(s.ctx, &encounter.DeletePlanInput{PlanID: "plan_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestSetMonsterQuantity() {
	plan := storedPlan()
	s.expectGet(plan)
	s.expectUpdate(plan, func(next *dnd5e.EncounterPlan) {
		s.Equal(5, next.Monsters.Rows[0].Quantity)
		s.Equal(plan.Party, next.Party)
	})

	out, err := s.orchestrator.SetMonsterQuantity(s.ctx, &encounter.SetMonsterQuantityInput{
		PlanID:   plan.ID,
		Index:    0,
		Quantity: 5,
	})
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Equal(int64(4), out.Plan.Version)
	s.Equal(2, plan.Monsters.Rows[0].Quantity, "loaded plan is not modified")
}

func (s *OrchestratorTestSuite) TestRosterEdits() {
	testCases := []struct {
		name  string
		edit  func() (*encounter.EditPlanOutput, error)
		check func(next *dnd5e.EncounterPlan)
	}{
		{
			name: "add player row copies the last row",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.AddPlayerRow(s.ctx, &encounter.AddPlayerRowInput{PlanID: "plan_1"})
			},
			check: func(next *dnd5e.EncounterPlan) {
				s.Equal([]dnd5e.PlayerRow{{Level: 1, Quantity: 4}, {Level: 1, Quantity: 4}}, next.Party.Rows)
			},
		},
		{
			name: "remove player row",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.RemovePlayerRow(s.ctx, &encounter.RemovePlayerRowInput{PlanID: "plan_1", Index: 0})
			},
			check: func(next *dnd5e.EncounterPlan) {
				s.Empty(next.Party.Rows)
			},
		},
		{
			name: "set player quantity",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.SetPlayerQuantity(s.ctx, &encounter.SetPlayerQuantityInput{
					PlanID: "plan_1", Index: 0, Quantity: 6,
				})
			},
			check: func(next *dnd5e.EncounterPlan) {
				s.Equal(6, next.Party.Rows[0].Quantity)
			},
		},
		{
			name: "set player level",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.SetPlayerLevel(s.ctx, &encounter.SetPlayerLevelInput{
					PlanID: "plan_1", Index: 0, Level: 20,
				})
			},
			check: func(next *dnd5e.EncounterPlan) {
				s.Equal(20, next.Party.Rows[0].Level)
			},
		},
		{
			name: "add monster row copies the last row",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.AddMonsterRow(s.ctx, &encounter.AddMonsterRowInput{PlanID: "plan_1"})
			},
			check: func(next *dnd5e.EncounterPlan) {
				s.Equal(2, next.Monsters.Len())
				s.Equal(next.Monsters.Rows[0], next.Monsters.Rows[1])
			},
		},
		{
			name: "remove monster row",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.RemoveMonsterRow(s.ctx, &encounter.RemoveMonsterRowInput{PlanID: "plan_1", Index: 0})
			},
			check: func(next *dnd5e.EncounterPlan) {
				s.Equal(0, next.Monsters.XP())
			},
		},
		{
			name: "set monster challenge rating",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.SetMonsterChallengeRating(s.ctx, &encounter.SetMonsterChallengeRatingInput{
					PlanID: "plan_1", Index: 0, ChallengeRating: dnd5e.CRFive,
				})
			},
			check: func(next *dnd5e.EncounterPlan) {
				s.Equal(dnd5e.CRFive, next.Monsters.Rows[0].ChallengeRating)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			plan := storedPlan()
			s.expectGet(plan)
			s.expectUpdate(plan, tc.check)

			out, err := tc.edit()
			s.Require().NoError(err)
			s.True(out.Changed)
		})
	}
}

func (s *OrchestratorTestSuite) TestOutOfRangeEditsAreNotWritten() {
	testCases := []struct {
		name string
		edit func() (*encounter.EditPlanOutput, error)
	}{
		{
			name: "remove player row",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.RemovePlayerRow(s.ctx, &encounter.RemovePlayerRowInput{PlanID: "plan_1", Index: 3})
			},
		},
		{
			name: "set player level",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.SetPlayerLevel(s.ctx, &encounter.SetPlayerLevelInput{
					PlanID: "plan_1", Index: -1, Level: 4,
				})
			},
		},
		{
			name: "set monster quantity",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.SetMonsterQuantity(s.ctx, &encounter.SetMonsterQuantityInput{
					PlanID: "plan_1", Index: 9, Quantity: 2,
				})
			},
		},
		{
			name: "same value",
			edit: func() (*encounter.EditPlanOutput, error) {
				return s.orchestrator.SetMonsterQuantity(s.ctx, &encounter.SetMonsterQuantityInput{
					PlanID: "plan_1", Index: 0, Quantity: 2,
				})
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			plan := storedPlan()
			s.expectGet(plan)

			out, err := tc.edit()
			s.Require().NoError(err)
			s.False(out.Changed)
			s.Equal(storedPlan(), out.Plan)
		})
	}
}

func (s *OrchestratorTestSuite) TestQuantityUpperBound() {
	tooMany := dnd5e.MaxQuantity + 1
	huge := []dnd5e.MonsterRow{{Quantity: 1 << 60, ChallengeRating: dnd5e.CRThirty}}

	_, err := s.orchestrator.CreatePlan(s.ctx, &encounter.CreatePlanInput{Monsters: huge})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "monsters[0].quantity")

	_, err = s.orchestrator.CreatePlan(s.ctx, &encounter.CreatePlanInput{
		Players: []dnd5e.PlayerRow{{Level: 1, Quantity: tooMany}},
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "players[0].quantity")

	_, err = s.orchestrator.CalculateChart(s.ctx, &encounter.CalculateChartInput{
		Players:  dnd5e.DefaultParty().Rows,
		Monsters: huge,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetPlayerQuantity(s.ctx, &encounter.SetPlayerQuantityInput{
		PlanID: "plan_1", Quantity: tooMany,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetMonsterQuantity(s.ctx, &encounter.SetMonsterQuantityInput{
		PlanID: "plan_1", Quantity: tooMany,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddMonsterByID(s.ctx, &encounter.AddMonsterByIDInput{
		PlanID: "plan_1", MonsterID: "goblin", Quantity: tooMany,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestQuantityAtBoundIsAccepted() {
	plan := storedPlan()
	s.expectGet(plan)
	s.expectUpdate(plan, func(next *dnd5e.EncounterPlan) {
		s.Equal(dnd5e.MaxQuantity, next.Monsters.Rows[0].Quantity)
	})

	out, err := s.orchestrator.SetMonsterQuantity(s.ctx, &encounter.SetMonsterQuantityInput{
		PlanID: plan.ID, Quantity: dnd5e.MaxQuantity,
	})
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Equal(dnd5e.MaxQuantity*dnd5e.CROne.XP(), out.Plan.Monsters.XP())
}

func (s *OrchestratorTestSuite) TestEditValidation() {
	_, err := s.orchestrator.SetPlayerQuantity(s.ctx, &encounter.SetPlayerQuantityInput{PlanID: "plan_1", Quantity: 0})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetPlayerLevel(s.ctx, &encounter.SetPlayerLevelInput{PlanID: "plan_1", Level: 21})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetMonsterQuantity(s.ctx, &encounter.SetMonsterQuantityInput{PlanID: "plan_1", Quantity: -2})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetMonsterChallengeRating(s.ctx, &encounter.SetMonsterChallengeRatingInput{
		PlanID:          "plan_1",
		ChallengeRating: dnd5e.ChallengeRating(40),
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddPlayerRow(s.ctx, &encounter.AddPlayerRowInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddMonsterRow(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEditConflict() {
	plan := storedPlan()
	s.expectGet(plan)
	s.mockPlanRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Aborted("plan was modified"))

	_, err := s.orchestrator.AddMonsterRow(s.ctx, &encounter.AddMonsterRowInput{PlanID: plan.ID})
	s.True(errors.IsAborted(err))
	s.Contains(err.Error(), "failed to update plan")
}

func (s *OrchestratorTestSuite) TestAddMonsterByID() {
	plan := storedPlan()
	monster := &external.MonsterData{ID: "owlbear", Name: "Owlbear", ChallengeRating: dnd5e.CRThree}

	mocks.ExpectMonsterLookup(s.ctx, s.mockExternalClient, monster)
	s.expectGet(plan)
	s.expectUpdate(plan, func(next *dnd5e.EncounterPlan) {
		s.Equal([]dnd5e.MonsterRow{
			{Quantity: 2, ChallengeRating: dnd5e.CROne},
			{Quantity: 1, ChallengeRating: dnd5e.CRThree},
		}, next.Monsters.Rows)
	})

	out, err := s.orchestrator.AddMonsterByID(s.ctx, &encounter.AddMonsterByIDInput{
		PlanID:    plan.ID,
		MonsterID: "owlbear",
	})
	s.Require().NoError(err)
	s.Equal(monster, out.Monster)
	s.Equal(1100, out.Plan.Monsters.XP())
}

func (s *OrchestratorTestSuite) TestAddMonsterByID_UnknownMonster() {
	s.mockExternalClient.EXPECT().
		GetMonsterData(s.ctx, "owlbaer").
		Return(nil, errors.NotFound("monster owlbaer not found").WithMeta("suggestions", []string{"owlbear"}))

	_, err := s.orchestrator.AddMonsterByID(s.ctx, &encounter.AddMonsterByIDInput{
		PlanID:    "plan_1",
		MonsterID: "owlbaer",
	})
	s.True(errors.IsNotFound(err))
	s.Equal([]string{"owlbear"}, errors.GetMeta(err)["suggestions"])
}

func (s *OrchestratorTestSuite) TestAddMonsterByID_WithoutCatalog() {
	orchestrator, err := encounter.NewOrchestrator(&encounter.Config{
		PlanRepo:    s.mockPlanRepo,
		Engine:      s.mockEngine,
		IDGenerator: idgen.NewSequential("plan"),
	})
	s.Require().NoError(err)

	_, err = orchestrator.AddMonsterByID(s.ctx, &encounter.AddMonsterByIDInput{PlanID: "plan_1", MonsterID: "goblin"})
	s.True(errors.IsUnimplemented(err))
}

func (s *OrchestratorTestSuite) TestSuggestMonsters() {
	plan := storedPlan()
	suggested := dnd5e.NewMonsters(dnd5e.MonsterRow{Quantity: 3, ChallengeRating: dnd5e.CRHalf})

	s.expectGet(plan)
	s.mockEngine.EXPECT().
		SuggestMonsters(s.ctx, &engine.SuggestMonstersInput{TargetXP: 300}).
		Return(&engine.SuggestMonstersOutput{Monsters: suggested, SpentXP: 300}, nil)
	s.expectUpdate(plan, func(next *dnd5e.EncounterPlan) {
		s.Equal(suggested, next.Monsters)
	})

	out, err := s.orchestrator.SuggestMonsters(s.ctx, &encounter.SuggestMonstersInput{PlanID: plan.ID})
	s.Require().NoError(err)
	s.Equal(300, out.TargetXP)
	s.Equal(300, out.SpentXP)
	s.Equal(suggested, out.Plan.Monsters)
}

func (s *OrchestratorTestSuite) TestSuggestMonsters_Errors() {
	_, err := s.orchestrator.SuggestMonsters(s.ctx, &encounter.SuggestMonstersInput{
		PlanID:     "plan_1",
		Difficulty: "deadly",
	})
	s.True(errors.IsInvalidArgument(err))

	empty := storedPlan()
	empty.Party = dnd5e.Party{}
	s.expectGet(empty)

	_, err = s.orchestrator.SuggestMonsters(s.ctx, &encounter.SuggestMonstersInput{
		PlanID:     empty.ID,
		Difficulty: dnd5e.BudgetHigh,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGetBudget() {
	s.expectGet(storedPlan())

	out, err := s.orchestrator.GetBudget(s.ctx, &encounter.GetBudgetInput{PlanID: "plan_1"})
	s.Require().NoError(err)
	s.Equal(dnd5e.Budgets{Low: 200, Moderate: 300, High: 400}, out.Budgets)
	s.Equal(400, out.SpentXP)
	s.Equal(dnd5e.DifficultyHigh, out.Difficulty)
}

func (s *OrchestratorTestSuite) TestGetChart() {
	plan := storedPlan()
	packed := &grid.Grid{SpentXP: 400}

	s.expectGet(plan)
	s.mockEngine.EXPECT().
		PackChart(s.ctx, &engine.PackChartInput{
			Monsters: plan.Monsters,
			Budgets:  dnd5e.Budgets{Low: 200, Moderate: 300, High: 400},
		}).
		Return(&engine.PackChartOutput{Grid: packed}, nil)

	out, err := s.orchestrator.GetChart(s.ctx, &encounter.GetChartInput{PlanID: plan.ID})
	s.Require().NoError(err)
	s.Same(packed, out.Grid)
	s.Equal(dnd5e.DifficultyHigh, out.Difficulty)
}

func (s *OrchestratorTestSuite) TestCalculateChart() {
	s.mockEngine.EXPECT().
		PackChart(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("max per row must be at least 1"))

	_, err := s.orchestrator.CalculateChart(s.ctx, &encounter.CalculateChartInput{
		Players: []dnd5e.PlayerRow{{Level: 2, Quantity: 1}},
	})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.CalculateChart(s.ctx, &encounter.CalculateChartInput{
		Players: []dnd5e.PlayerRow{{Level: 25, Quantity: 1}},
	})
	s.True(errors.IsInvalidArgument(err))
}
