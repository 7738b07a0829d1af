package impl

import (
	"context"
	"testing"

	"liftlog/internal/domain/entity"
	domainerrors "liftlog/internal/domain/errors"
	"liftlog/internal/domain/repository"
	"liftlog/internal/errors"
	mockrepo "liftlog/internal/mocks/repository"
	"liftlog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkoutService_List(t *testing.T) {
	workoutRepo := mockrepo.NewMockWorkoutRepository(t)
	expected := []*entity.Workout{
		{ID: 1, Name: "Bench Press", SplitID: 3, OwnerID: 7},
		{ID: 2, Name: "Overhead Press", SplitID: 3, OwnerID: 7},
	}
	workoutRepo.On("ListBySplit", mock.Anything, int64(3), repository.ListParams{Limit: 10}).
		Return(expected, nil)

	srv := NewWorkoutService(WorkoutServiceParams{
		WorkoutRepo: workoutRepo,
		Logger:      newTestLogger(),
	})

	workouts, err := srv.List(context.Background(), 3, &usecase.ListInput{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, expected, workouts)
}

func TestWorkoutService_Get(t *testing.T) {
	t.Run("returns the workout within its split", func(t *testing.T) {
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)
		workoutRepo.On("FindByID", mock.Anything, int64(3), int64(1)).
			Return(&entity.Workout{ID: 1, Name: "Bench Press", SplitID: 3}, nil)

		srv := NewWorkoutService(WorkoutServiceParams{WorkoutRepo: workoutRepo, Logger: newTestLogger()})

		workout, err := srv.Get(context.Background(), 3, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), workout.ID)
	})

	t.Run("a workout addressed through the wrong split reads as not found", func(t *testing.T) {
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)
		workoutRepo.On("FindByID", mock.Anything, int64(99), int64(1)).
			Return(nil, repository.ErrWorkoutNotFound)

		srv := NewWorkoutService(WorkoutServiceParams{WorkoutRepo: workoutRepo, Logger: newTestLogger()})

		_, err := srv.Get(context.Background(), 99, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrWorkoutNotFound))
	})
}

func TestWorkoutService_Create(t *testing.T) {
	createInput := &usecase.CreateWorkoutInput{
		Name:   "Bench Press",
		Sets:   5,
		Reps:   5,
		Weight: 80,
	}

	t.Run("creates the workout under an existing split", func(t *testing.T) {
		txManager := mockrepo.NewMockTransactionManager(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		splitRepo := mockrepo.NewMockSplitRepository(t)
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)

		passthroughTx(txManager, factory)
		factory.On("SplitRepo").Return(splitRepo)
		factory.On("WorkoutRepo").Return(workoutRepo)
		splitRepo.On("FindByID", mock.Anything, int64(3)).
			Return(&entity.Split{ID: 3, OwnerID: 9}, nil)
		workoutRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Workout")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Workout).ID = 21
			}).
			Return(nil)

		srv := NewWorkoutService(WorkoutServiceParams{
			TxManager:   txManager,
			SplitRepo:   splitRepo,
			WorkoutRepo: workoutRepo,
			Logger:      newTestLogger(),
		})

		workout, err := srv.Create(context.Background(), 7, 3, createInput)
		require.NoError(t, err)
		assert.Equal(t, int64(21), workout.ID)
		assert.Equal(t, int64(3), workout.SplitID)
		assert.Equal(t, int64(7), workout.OwnerID)
		assert.Equal(t, 5, workout.Sets)
	})

	t.Run("fails when the parent split does not exist", func(t *testing.T) {
		txManager := mockrepo.NewMockTransactionManager(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		splitRepo := mockrepo.NewMockSplitRepository(t)
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)

		passthroughTx(txManager, factory)
		factory.On("SplitRepo").Return(splitRepo)
		splitRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrSplitNotFound)

		srv := NewWorkoutService(WorkoutServiceParams{
			TxManager:   txManager,
			SplitRepo:   splitRepo,
			WorkoutRepo: workoutRepo,
			Logger:      newTestLogger(),
		})

		_, err := srv.Create(context.Background(), 7, 404, createInput)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrSplitNotFound))
		workoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestWorkoutService_Update(t *testing.T) {
	newSets := 3

	t.Run("applies only the present fields", func(t *testing.T) {
		txManager := mockrepo.NewMockTransactionManager(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)

		passthroughTx(txManager, factory)
		factory.On("WorkoutRepo").Return(workoutRepo)
		workoutRepo.On("FindByID", mock.Anything, int64(3), int64(1)).
			Return(&entity.Workout{ID: 1, Name: "Bench Press", Sets: 5, Reps: 5, Weight: 80, OwnerID: 7, SplitID: 3}, nil)
		workoutRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Workout")).Return(nil)

		srv := NewWorkoutService(WorkoutServiceParams{
			TxManager:   txManager,
			WorkoutRepo: workoutRepo,
			Logger:      newTestLogger(),
		})

		workout, err := srv.Update(context.Background(), 7, 3, 1, &usecase.UpdateWorkoutInput{Sets: &newSets})
		require.NoError(t, err)
		assert.Equal(t, 3, workout.Sets)
		assert.Equal(t, "Bench Press", workout.Name)
		assert.Equal(t, 80, workout.Weight)
	})

	t.Run("rejects a non-owner before writing", func(t *testing.T) {
		txManager := mockrepo.NewMockTransactionManager(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)

		passthroughTx(txManager, factory)
		factory.On("WorkoutRepo").Return(workoutRepo)
		workoutRepo.On("FindByID", mock.Anything, int64(3), int64(1)).
			Return(&entity.Workout{ID: 1, OwnerID: 7, SplitID: 3}, nil)

		srv := NewWorkoutService(WorkoutServiceParams{
			TxManager:   txManager,
			WorkoutRepo: workoutRepo,
			Logger:      newTestLogger(),
		})

		_, err := srv.Update(context.Background(), 99, 3, 1, &usecase.UpdateWorkoutInput{Sets: &newSets})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
		workoutRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestWorkoutService_Delete(t *testing.T) {
	t.Run("deletes an owned workout", func(t *testing.T) {
		txManager := mockrepo.NewMockTransactionManager(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)

		passthroughTx(txManager, factory)
		factory.On("WorkoutRepo").Return(workoutRepo)
		workoutRepo.On("FindByID", mock.Anything, int64(3), int64(1)).
			Return(&entity.Workout{ID: 1, OwnerID: 7, SplitID: 3}, nil)
		workoutRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		srv := NewWorkoutService(WorkoutServiceParams{
			TxManager:   txManager,
			WorkoutRepo: workoutRepo,
			Logger:      newTestLogger(),
		})

		require.NoError(t, srv.Delete(context.Background(), 7, 3, 1))
	})

	t.Run("maps a missing workout to not found", func(t *testing.T) {
		txManager := mockrepo.NewMockTransactionManager(t)
		factory := mockrepo.NewMockRepositoryFactory(t)
		workoutRepo := mockrepo.NewMockWorkoutRepository(t)

		passthroughTx(txManager, factory)
		factory.On("WorkoutRepo").Return(workoutRepo)
		workoutRepo.On("FindByID", mock.Anything, int64(3), int64(404)).
			Return(nil, repository.ErrWorkoutNotFound)

		srv := NewWorkoutService(WorkoutServiceParams{
			TxManager:   txManager,
			WorkoutRepo: workoutRepo,
			Logger:      newTestLogger(),
		})

		err := srv.Delete(context.Background(), 7, 3, 404)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrWorkoutNotFound))
	})
}
