// Package repository contains hand-maintained testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"liftlog/internal/domain/entity"
	"liftlog/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock wired to the test's lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	// A function return value lets tests run the callback against a mock
	// factory instead of canning a fixed error.
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.UserRepository)

	return repo
}

func (m *MockRepositoryFactory) SplitRepo() repository.SplitRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.SplitRepository)

	return repo
}

func (m *MockRepositoryFactory) WorkoutRepo() repository.WorkoutRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.WorkoutRepository)

	return repo
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockSplitRepository mocks repository.SplitRepository.
type MockSplitRepository struct {
	mock.Mock
}

func NewMockSplitRepository(t *testing.T) *MockSplitRepository {
	m := &MockSplitRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSplitRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Split, error) {
	args := m.Called(ctx, params)
	splits, _ := args.Get(0).([]*entity.Split)

	return splits, args.Error(1)
}

func (m *MockSplitRepository) FindByID(ctx context.Context, id int64) (*entity.Split, error) {
	args := m.Called(ctx, id)
	split, _ := args.Get(0).(*entity.Split)

	return split, args.Error(1)
}

func (m *MockSplitRepository) Create(ctx context.Context, split *entity.Split) error {
	args := m.Called(ctx, split)

	return args.Error(0)
}

func (m *MockSplitRepository) Update(ctx context.Context, split *entity.Split) error {
	args := m.Called(ctx, split)

	return args.Error(0)
}

func (m *MockSplitRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockWorkoutRepository mocks repository.WorkoutRepository.
type MockWorkoutRepository struct {
	mock.Mock
}

func NewMockWorkoutRepository(t *testing.T) *MockWorkoutRepository {
	m := &MockWorkoutRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWorkoutRepository) ListBySplit(ctx context.Context, splitID int64, params repository.ListParams) ([]*entity.Workout, error) {
	args := m.Called(ctx, splitID, params)
	workouts, _ := args.Get(0).([]*entity.Workout)

	return workouts, args.Error(1)
}

func (m *MockWorkoutRepository) FindByID(ctx context.Context, splitID, id int64) (*entity.Workout, error) {
	args := m.Called(ctx, splitID, id)
	workout, _ := args.Get(0).(*entity.Workout)

	return workout, args.Error(1)
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	args := m.Called(ctx, workout)

	return args.Error(0)
}

func (m *MockWorkoutRepository) Update(ctx context.Context, workout *entity.Workout) error {
	args := m.Called(ctx, workout)

	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
