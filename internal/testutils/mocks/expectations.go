// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	externalmock "github.com/KirkDiggler/encounter-budget/internal/clients/external/mock"
	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	encounterplan "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan"
	encounterplanmock "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan/mock"
)

// ExpectPlanGet sets up the repository to return plan once
func ExpectPlanGet(ctx context.Context, repo *encounterplanmock.MockRepository, plan *dnd5e.EncounterPlan) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, encounterplan.GetInput{ID: plan.ID}).
		Return(&encounterplan.GetOutput{Plan: plan}, nil)
}

// ExpectPlanUpdate accepts the next version of plan. The written plan must
// carry plan.Version as its expected version; check inspects what was written.
func ExpectPlanUpdate(
	t testing.TB,
	ctx context.Context,
	repo *encounterplanmock.MockRepository,
	plan *dnd5e.EncounterPlan,
	check func(next *dnd5e.EncounterPlan),
) *gomock.Call {
	return repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input encounterplan.UpdateInput) (*encounterplan.UpdateOutput, error) {
			assert.Equal(t, plan.Version, input.ExpectedVersion, "expected version")
			if check != nil {
				check(input.Plan)
			}
			stored := input.Plan.Clone()
			stored.Version = plan.Version + 1
			return &encounterplan.UpdateOutput{Plan: stored}, nil
		})
}

// ExpectMonsterLookup sets up the catalog to return monster for its ID
func ExpectMonsterLookup(
	ctx context.Context,
	client *externalmock.MockClient,
	monster *external.MonsterData,
) *gomock.Call {
	return client.EXPECT().
		GetMonsterData(ctx, monster.ID).
		Return(monster, nil)
}
