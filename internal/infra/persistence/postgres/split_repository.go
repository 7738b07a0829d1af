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

const defaultListLimit = 10

// splitRepository implements the domain's SplitRepository interface using GORM.
type splitRepository struct {
	db *gorm.DB
}

// NewSplitRepository is the constructor for splitRepository.
func NewSplitRepository(db *gorm.DB) repository.SplitRepository {
	return &splitRepository{db: db}
}

// List retrieves a page of splits ordered by ascending id, filtered by a
// case-insensitive substring match on the name.
func (repo *splitRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Split, error) {
	query := repo.db.WithContext(ctx).Model(&model.SplitModel{})
	query = applyListParams(query, params)

	var splitMs []model.SplitModel
	if err := query.Find(&splitMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list splits")
	}

	splits := make([]*entity.Split, 0, len(splitMs))
	for i := range splitMs {
		splits = append(splits, toSplitDomain(&splitMs[i]))
	}

	return splits, nil
}

// FindByID retrieves a single split by its unique ID.
func (repo *splitRepository) FindByID(ctx context.Context, id int64) (*entity.Split, error) {
	var splitM model.SplitModel
	if err := repo.db.WithContext(ctx).First(&splitM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSplitNotFound
		}

		return nil, errors.Wrap(err, "failed to find split by id")
	}

	return toSplitDomain(&splitM), nil
}

// Create persists a new split entity to the database.
func (repo *splitRepository) Create(ctx context.Context, split *entity.Split) error {
	splitM := fromSplitDomain(split)

	if err := repo.db.WithContext(ctx).Create(splitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required split information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create split")
	}

	split.ID = splitM.ID
	split.CreatedAt = splitM.CreatedAt

	return nil
}

// Update persists the split's mutable fields. Ownership is immutable, so the
// owner column is never part of the update set.
func (repo *splitRepository) Update(ctx context.Context, split *entity.Split) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SplitModel{}).
		Where("id = ?", split.ID).
		Updates(map[string]any{
			"name":        split.Name,
			"description": split.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update split")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSplitNotFound
	}

	return nil
}

// Delete removes the split. The workout cascade runs inside the database.
func (repo *splitRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.SplitModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete split")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSplitNotFound
	}

	return nil
}

// applyListParams applies search, ordering, and pagination shared by list queries.
func applyListParams(query *gorm.DB, params repository.ListParams) *gorm.DB {
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}

	return query.Order("id ASC").Limit(limit).Offset(skip)
}

// --- Mapper functions ---

func toSplitDomain(data *model.SplitModel) *entity.Split {
	if data == nil {
		return nil
	}

	return &entity.Split{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromSplitDomain(split *entity.Split) *model.SplitModel {
	if split == nil {
		return nil
	}

	return &model.SplitModel{
		ID:          split.ID,
		Name:        split.Name,
		Description: split.Description,
		OwnerID:     split.OwnerID,
		CreatedAt:   split.CreatedAt,
	}
}
