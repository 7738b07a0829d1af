package impl

import (
	"context"
	"log/slog"

	deliverycontext "liftlog/internal/delivery/context"
	"liftlog/internal/domain/entity"
	domainerrors "liftlog/internal/domain/errors"
	"liftlog/internal/domain/repository"
	"liftlog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workoutService implements the WorkoutUsecase interface. Every operation is
// scoped to the parent split taken from the request path.
type workoutService struct {
	txManager   repository.TransactionManager
	splitRepo   repository.SplitRepository
	workoutRepo repository.WorkoutRepository
	logger      *slog.Logger
}

// WorkoutServiceParams holds dependencies for workoutService, injected by Fx.
type WorkoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SplitRepo   repository.SplitRepository
	WorkoutRepo repository.WorkoutRepository
	Logger      *slog.Logger
}

// NewWorkoutService is the constructor for workoutService.
func NewWorkoutService(params WorkoutServiceParams) usecase.WorkoutUsecase {
	return &workoutService{
		txManager:   params.TxManager,
		splitRepo:   params.SplitRepo,
		workoutRepo: params.WorkoutRepo,
		logger:      params.Logger,
	}
}

func (srv *workoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of the split's workouts. Public read, no transaction.
func (srv *workoutService) List(ctx context.Context, splitID int64, input *usecase.ListInput) ([]*entity.Workout, error) {
	workouts, err := srv.workoutRepo.ListBySplit(ctx, splitID, repository.ListParams{
		Search: input.Search,
		Limit:  input.Limit,
		Skip:   input.Skip,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	return workouts, nil
}

// Get returns the workout with the given id within the split.
func (srv *workoutService) Get(ctx context.Context, splitID, workoutID int64) (*entity.Workout, error) {
	workout, err := srv.workoutRepo.FindByID(ctx, splitID, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, domainerrors.ErrWorkoutNotFound.WrapMessage("workout lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load workout")
	}

	return workout, nil
}

// Create persists a new workout under the split. The split must exist at
// creation time; the foreign key backs this up against concurrent deletes.
func (srv *workoutService) Create(ctx context.Context, userID, splitID int64, input *usecase.CreateWorkoutInput) (*entity.Workout, error) {
	newWorkout := &entity.Workout{
		Name:    input.Name,
		Sets:    input.Sets,
		Reps:    input.Reps,
		Weight:  input.Weight,
		OwnerID: userID,
		SplitID: splitID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.SplitRepo().FindByID(ctx, splitID); err != nil {
			if errors.Is(err, repository.ErrSplitNotFound) {
				return domainerrors.ErrSplitNotFound.WrapMessage("parent split lookup failed")
			}

			return errors.Wrap(err, "failed to load parent split")
		}

		return repoFactory.WorkoutRepo().Create(ctx, newWorkout)
	})
	if err != nil {
		srv.log(ctx).Warn("Workout creation failed", slog.Int64("splitID", splitID), slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Workout created", slog.Int64("workoutID", newWorkout.ID), slog.Int64("splitID", splitID))

	return newWorkout, nil
}

// Update applies a partial update after the load-then-authorize sequence.
func (srv *workoutService) Update(ctx context.Context, userID, splitID, workoutID int64, input *usecase.UpdateWorkoutInput) (*entity.Workout, error) {
	var updated *entity.Workout
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workoutRepo := repoFactory.WorkoutRepo()

		workout, err := workoutRepo.FindByID(ctx, splitID, workoutID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkoutNotFound) {
				return domainerrors.ErrWorkoutNotFound.WrapMessage("workout lookup failed")
			}

			return errors.Wrap(err, "failed to load workout for update")
		}

		if err := requireOwner(workout.OwnerID, userID); err != nil {
			return err
		}

		// Partial update: only the fields present in the payload change.
		if input.Name != nil {
			workout.Name = *input.Name
		}
		if input.Sets != nil {
			workout.Sets = *input.Sets
		}
		if input.Reps != nil {
			workout.Reps = *input.Reps
		}
		if input.Weight != nil {
			workout.Weight = *input.Weight
		}

		if err := workoutRepo.Update(ctx, workout); err != nil {
			return errors.Wrap(err, "failed to update workout")
		}

		updated = workout

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Workout update failed", slog.Int64("workoutID", workoutID), slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Delete removes the workout after the load-then-authorize sequence.
func (srv *workoutService) Delete(ctx context.Context, userID, splitID, workoutID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workoutRepo := repoFactory.WorkoutRepo()

		workout, err := workoutRepo.FindByID(ctx, splitID, workoutID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkoutNotFound) {
				return domainerrors.ErrWorkoutNotFound.WrapMessage("workout lookup failed")
			}

			return errors.Wrap(err, "failed to load workout for delete")
		}

		if err := requireOwner(workout.OwnerID, userID); err != nil {
			return err
		}

		return workoutRepo.Delete(ctx, workoutID)
	})
	if err != nil {
		srv.log(ctx).Warn("Workout delete failed", slog.Int64("workoutID", workoutID), slog.Int64("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Workout deleted", slog.Int64("workoutID", workoutID), slog.Int64("splitID", splitID))

	return nil
}
