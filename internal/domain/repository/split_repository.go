package repository

import (
	"context"
	"errors"

	"liftlog/internal/domain/entity"
)

// ErrSplitNotFound is returned when no split exists with the requested id.
var ErrSplitNotFound = errors.New("split not found")

// ListParams bounds and filters list queries. Search is a case-insensitive
// substring match on the resource name; results are ordered by ascending id.
type ListParams struct {
	Search string
	Limit  int
	Skip   int
}

// SplitRepository defines the standard operations for split persistence.
type SplitRepository interface {
	// List retrieves a page of splits. A non-matching search yields an empty
	// slice, not an error.
	List(ctx context.Context, params ListParams) ([]*entity.Split, error)

	// FindByID retrieves a single split by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Split, error)

	// Create persists a new split. The storage assigns ID and CreatedAt.
	Create(ctx context.Context, split *entity.Split) error

	// Update persists the given split's mutable fields.
	Update(ctx context.Context, split *entity.Split) error

	// Delete removes the split. The database cascades the delete to the
	// split's workouts.
	Delete(ctx context.Context, id int64) error
}
