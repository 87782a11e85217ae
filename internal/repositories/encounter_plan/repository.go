// Package encounterplan stores encounter plans
package encounterplan

//go:generate mockgen -destination=mock/mock_repository.go -package=encounterplanmock github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan Repository

import (
	"context"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
)

const (
	// DefaultListLimit is the page size when ListInput.Limit is zero
	DefaultListLimit = 50
	// MaxListLimit caps ListInput.Limit
	MaxListLimit = 200

	// Error messages
	errPlanNil     = "plan cannot be nil"
	errPlanIDEmpty = "plan ID cannot be empty"
)

// Repository defines the storage interface for encounter plans
type Repository interface {
	// Create stores a new plan at version 1
	// Returns AlreadyExists if a plan with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a plan by ID
	// Returns NotFound if the plan doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a plan and bumps its version
	// Returns Aborted if the stored version is not ExpectedVersion
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a plan
	// Returns NotFound if the plan doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns plans, most recently updated first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a plan
type CreateInput struct {
	Plan *dnd5e.EncounterPlan
}

// CreateOutput defines the output for creating a plan
type CreateOutput struct {
	Plan *dnd5e.EncounterPlan
}

// GetInput defines the input for getting a plan
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a plan
type GetOutput struct {
	Plan *dnd5e.EncounterPlan
}

// UpdateInput defines the input for updating a plan
type UpdateInput struct {
	Plan *dnd5e.EncounterPlan
	// ExpectedVersion is the version the caller read before editing
	ExpectedVersion int64
}

// UpdateOutput defines the output for updating a plan
type UpdateOutput struct {
	Plan *dnd5e.EncounterPlan
}

// DeleteInput defines the input for deleting a plan
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a plan
type DeleteOutput struct{}

// ListInput defines the input for listing plans
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput defines the output for listing plans
type ListOutput struct {
	Plans []*dnd5e.EncounterPlan
	Total int
}

func (in ListInput) bounds() (limit, offset int) {
	limit = in.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset = in.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
