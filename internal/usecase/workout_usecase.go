package usecase

import (
	"context"

	"liftlog/internal/domain/entity"
)

// CreateWorkoutInput defines the data required to create a workout. The split
// comes from the request path and the owner from the authenticated requester.
type CreateWorkoutInput struct {
	Name   string `json:"name" validate:"required"`
	Sets   int    `json:"sets"`
	Reps   int    `json:"reps"`
	Weight int    `json:"weight"`
}

// UpdateWorkoutInput carries a partial update. Nil fields are left unchanged.
type UpdateWorkoutInput struct {
	Name   *string `json:"name"`
	Sets   *int    `json:"sets"`
	Reps   *int    `json:"reps"`
	Weight *int    `json:"weight"`
}

// WorkoutUsecase defines the interface for workout-related business
// operations. Every operation is scoped to the parent split from the request
// path; a workout addressed through a mismatched split reads as not found.
type WorkoutUsecase interface {
	// List returns a page of the split's workouts ordered by ascending id.
	List(ctx context.Context, splitID int64, input *ListInput) ([]*entity.Workout, error)

	// Get returns the workout with the given id within the split.
	Get(ctx context.Context, splitID, workoutID int64) (*entity.Workout, error)

	// Create persists a new workout under the split, owned by userID. The
	// split must exist.
	Create(ctx context.Context, userID, splitID int64, input *CreateWorkoutInput) (*entity.Workout, error)

	// Update applies the present fields of input to the workout, provided it
	// exists in the split and userID owns it.
	Update(ctx context.Context, userID, splitID, workoutID int64, input *UpdateWorkoutInput) (*entity.Workout, error)

	// Delete removes the workout, provided it exists in the split and userID
	// owns it.
	Delete(ctx context.Context, userID, splitID, workoutID int64) error
}
