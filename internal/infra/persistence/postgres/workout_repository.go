package postgres

import (
	"context"

	"liftlog/internal/domain/entity"
	domainerrors "liftlog/internal/domain/errors"
	"liftlog/internal/domain/repository"
	"liftlog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutRepository implements the domain's WorkoutRepository interface using GORM.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

// ListBySplit retrieves a page of the split's workouts ordered by ascending id.
func (repo *workoutRepository) ListBySplit(ctx context.Context, splitID int64, params repository.ListParams) ([]*entity.Workout, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("split_id = ?", splitID)
	query = applyListParams(query, params)

	var workoutMs []model.WorkoutModel
	if err := query.Find(&workoutMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	workouts := make([]*entity.Workout, 0, len(workoutMs))
	for i := range workoutMs {
		workouts = append(workouts, toWorkoutDomain(&workoutMs[i]))
	}

	return workouts, nil
}

// FindByID retrieves a single workout by id, constrained to the addressed
// split. A workout reached through a mismatched split does not exist.
func (repo *workoutRepository) FindByID(ctx context.Context, splitID, id int64) (*entity.Workout, error) {
	var workoutM model.WorkoutModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND split_id = ?", id, splitID).
		First(&workoutM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout by id")
	}

	return toWorkoutDomain(&workoutM), nil
}

// Create persists a new workout entity to the database.
func (repo *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	workoutM := fromWorkoutDomain(workout)

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The parent split was deleted between the existence check and the
			// insert; surface it the same way as the pre-check.
			return repository.ErrSplitNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required workout information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout")
	}

	workout.ID = workoutM.ID
	workout.CreatedAt = workoutM.CreatedAt

	return nil
}

// Update persists the workout's mutable fields. Ownership and split reference
// are immutable after creation.
func (repo *workoutRepository) Update(ctx context.Context, workout *entity.Workout) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkoutModel{}).
		Where("id = ?", workout.ID).
		Updates(map[string]any{
			"name":   workout.Name,
			"sets":   workout.Sets,
			"reps":   workout.Reps,
			"weight": workout.Weight,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update workout")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

// Delete removes the workout.
func (repo *workoutRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.WorkoutModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workout")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

// --- Mapper functions ---

func toWorkoutDomain(data *model.WorkoutModel) *entity.Workout {
	if data == nil {
		return nil
	}

	return &entity.Workout{
		ID:        data.ID,
		Name:      data.Name,
		Sets:      data.Sets,
		Reps:      data.Reps,
		Weight:    data.Weight,
		OwnerID:   data.OwnerID,
		SplitID:   data.SplitID,
		CreatedAt: data.CreatedAt,
	}
}

func fromWorkoutDomain(workout *entity.Workout) *model.WorkoutModel {
	if workout == nil {
		return nil
	}

	return &model.WorkoutModel{
		ID:        workout.ID,
		Name:      workout.Name,
		Sets:      workout.Sets,
		Reps:      workout.Reps,
		Weight:    workout.Weight,
		OwnerID:   workout.OwnerID,
		SplitID:   workout.SplitID,
		CreatedAt: workout.CreatedAt,
	}
}
