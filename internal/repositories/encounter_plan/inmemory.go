package encounterplan

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/pkg/clock"
)

// InMemoryRepository keeps plans in process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	plans map[string]*dnd5e.EncounterPlan
	clock clock.Clock
}

// NewInMemory creates an in-memory plan repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		plans: make(map[string]*dnd5e.EncounterPlan),
		clock: c,
	}
}

// Verify that InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new plan
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Plan == nil {
		return nil, errors.InvalidArgument(errPlanNil)
	}
	if input.Plan.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plans[input.Plan.ID]; exists {
		return nil, errors.AlreadyExists("plan with ID " + input.Plan.ID + " already exists")
	}

	plan := input.Plan.Clone()
	now := r.clock.Now().Unix()
	plan.Version = 1
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.plans[plan.ID] = plan

	return &CreateOutput{Plan: plan.Clone()}, nil
}

// Get retrieves a plan
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[input.ID]
	if !ok {
		return nil, errors.NotFoundf("plan with ID %s not found", input.ID)
	}

	return &GetOutput{Plan: plan.Clone()}, nil
}

// Update replaces a plan when the caller holds the current version
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Plan == nil {
		return nil, errors.InvalidArgument(errPlanNil)
	}
	if input.Plan.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.plans[input.Plan.ID]
	if !ok {
		return nil, errors.NotFoundf("plan with ID %s not found", input.Plan.ID)
	}
	if current.Version != input.ExpectedVersion {
		return nil, errors.Abortedf("plan %s is at version %d, expected %d",
			input.Plan.ID, current.Version, input.ExpectedVersion)
	}

	plan := input.Plan.Clone()
	plan.Version = current.Version + 1
	plan.CreatedAt = current.CreatedAt
	plan.UpdatedAt = r.clock.Now().Unix()
	r.plans[plan.ID] = plan

	return &UpdateOutput{Plan: plan.Clone()}, nil
}

// Delete removes a plan
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlanIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[input.ID]; !ok {
		return nil, errors.NotFoundf("plan with ID %s not found", input.ID)
	}
	delete(r.plans, input.ID)

	return &DeleteOutput{}, nil
}

// List returns plans, most recently updated first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	limit, offset := input.bounds()

	r.mu.RLock()
	all := make([]*dnd5e.EncounterPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		all = append(all, plan.Clone())
	}
	r.mu.RUnlock()

	// same order as a reversed sorted set: score, then member, descending
	sort.Slice(all, func(i, j int) bool {
		if all[i].UpdatedAt != all[j].UpdatedAt {
			return all[i].UpdatedAt > all[j].UpdatedAt
		}
		return all[i].ID > all[j].ID
	})

	plans := []*dnd5e.EncounterPlan{}
	if offset < len(all) {
		end := offset + limit
		if end > len(all) {
			end = len(all)
		}
		plans = all[offset:end]
	}

	return &ListOutput{Plans: plans, Total: len(all)}, nil
}
