// Package usecase contains hand-maintained testify mocks for the usecase
// interfaces consumed by the delivery layer.
package usecase

import (
	"context"
	"testing"

	"liftlog/internal/domain/entity"
	"liftlog/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase mocks usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock wired to the test's lifecycle.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.RegisterOutput)

	return output, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.LoginOutput)

	return output, args.Error(1)
}

// MockSplitUsecase mocks usecase.SplitUsecase.
type MockSplitUsecase struct {
	mock.Mock
}

func NewMockSplitUsecase(t *testing.T) *MockSplitUsecase {
	m := &MockSplitUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSplitUsecase) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Split, error) {
	args := m.Called(ctx, input)
	splits, _ := args.Get(0).([]*entity.Split)

	return splits, args.Error(1)
}

func (m *MockSplitUsecase) Get(ctx context.Context, id int64) (*entity.Split, error) {
	args := m.Called(ctx, id)
	split, _ := args.Get(0).(*entity.Split)

	return split, args.Error(1)
}

func (m *MockSplitUsecase) Create(ctx context.Context, userID int64, input *usecase.CreateSplitInput) (*entity.Split, error) {
	args := m.Called(ctx, userID, input)
	split, _ := args.Get(0).(*entity.Split)

	return split, args.Error(1)
}

func (m *MockSplitUsecase) Update(ctx context.Context, userID, splitID int64, input *usecase.UpdateSplitInput) (*entity.Split, error) {
	args := m.Called(ctx, userID, splitID, input)
	split, _ := args.Get(0).(*entity.Split)

	return split, args.Error(1)
}

func (m *MockSplitUsecase) Delete(ctx context.Context, userID, splitID int64) error {
	args := m.Called(ctx, userID, splitID)

	return args.Error(0)
}

// MockWorkoutUsecase mocks usecase.WorkoutUsecase.
type MockWorkoutUsecase struct {
	mock.Mock
}

func NewMockWorkoutUsecase(t *testing.T) *MockWorkoutUsecase {
	m := &MockWorkoutUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWorkoutUsecase) List(ctx context.Context, splitID int64, input *usecase.ListInput) ([]*entity.Workout, error) {
	args := m.Called(ctx, splitID, input)
	workouts, _ := args.Get(0).([]*entity.Workout)

	return workouts, args.Error(1)
}

func (m *MockWorkoutUsecase) Get(ctx context.Context, splitID, workoutID int64) (*entity.Workout, error) {
	args := m.Called(ctx, splitID, workoutID)
	workout, _ := args.Get(0).(*entity.Workout)

	return workout, args.Error(1)
}

func (m *MockWorkoutUsecase) Create(ctx context.Context, userID, splitID int64, input *usecase.CreateWorkoutInput) (*entity.Workout, error) {
	args := m.Called(ctx, userID, splitID, input)
	workout, _ := args.Get(0).(*entity.Workout)

	return workout, args.Error(1)
}

func (m *MockWorkoutUsecase) Update(ctx context.Context, userID, splitID, workoutID int64, input *usecase.UpdateWorkoutInput) (*entity.Workout, error) {
	args := m.Called(ctx, userID, splitID, workoutID, input)
	workout, _ := args.Get(0).(*entity.Workout)

	return workout, args.Error(1)
}

func (m *MockWorkoutUsecase) Delete(ctx context.Context, userID, splitID, workoutID int64) error {
	args := m.Called(ctx, userID, splitID, workoutID)

	return args.Error(0)
}
