package repository

import (
	"context"
	"errors"

	"liftlog/internal/domain/entity"
)

// ErrWorkoutNotFound is returned when no workout exists with the requested id
// within the addressed split.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRepository defines the standard operations for workout persistence.
// All lookups are scoped to a parent split: a workout addressed through a
// mismatched split does not exist as far as callers are concerned.
type WorkoutRepository interface {
	// ListBySplit retrieves a page of workouts belonging to the given split.
	ListBySplit(ctx context.Context, splitID int64, params ListParams) ([]*entity.Workout, error)

	// FindByID retrieves a single workout by id, constrained to the split.
	FindByID(ctx context.Context, splitID, id int64) (*entity.Workout, error)

	// Create persists a new workout. The storage assigns ID and CreatedAt.
	Create(ctx context.Context, workout *entity.Workout) error

	// Update persists the given workout's mutable fields.
	Update(ctx context.Context, workout *entity.Workout) error

	// Delete removes the workout.
	Delete(ctx context.Context, id int64) error
}
