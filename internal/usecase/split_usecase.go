package usecase

import (
	"context"

	"liftlog/internal/domain/entity"
)

// ListInput bounds and filters public list endpoints. Zero values fall back
// to the defaults (limit 10, skip 0, no search filter).
type ListInput struct {
	Limit  int    `query:"limit"`
	Skip   int    `query:"skip"`
	Search string `query:"search"`
}

// CreateSplitInput defines the data required to create a split. The owner is
// always the authenticated requester, never part of the payload.
type CreateSplitInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateSplitInput carries a partial update. Nil fields are left unchanged.
type UpdateSplitInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// SplitUsecase defines the interface for split-related business operations.
type SplitUsecase interface {
	// List returns a page of splits ordered by ascending id. No authentication
	// required; an empty page is not an error.
	List(ctx context.Context, input *ListInput) ([]*entity.Split, error)

	// Get returns the split with the given id or a not-found error.
	Get(ctx context.Context, id int64) (*entity.Split, error)

	// Create persists a new split owned by userID.
	Create(ctx context.Context, userID int64, input *CreateSplitInput) (*entity.Split, error)

	// Update applies the present fields of input to the split, provided it
	// exists and userID owns it.
	Update(ctx context.Context, userID, splitID int64, input *UpdateSplitInput) (*entity.Split, error)

	// Delete removes the split and, by cascade, its workouts, provided it
	// exists and userID owns it.
	Delete(ctx context.Context, userID, splitID int64) error
}
