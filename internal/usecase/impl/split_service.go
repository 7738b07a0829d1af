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

// splitService implements the SplitUsecase interface.
type splitService struct {
	txManager repository.TransactionManager
	splitRepo repository.SplitRepository
	logger    *slog.Logger
}

// SplitServiceParams holds dependencies for splitService, injected by Fx.
type SplitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SplitRepo repository.SplitRepository
	Logger    *slog.Logger
}

// NewSplitService is the constructor for splitService.
func NewSplitService(params SplitServiceParams) usecase.SplitUsecase {
	return &splitService{
		txManager: params.TxManager,
		splitRepo: params.SplitRepo,
		logger:    params.Logger,
	}
}

func (srv *splitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of splits. Public read, no transaction needed.
func (srv *splitService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Split, error) {
	splits, err := srv.splitRepo.List(ctx, repository.ListParams{
		Search: input.Search,
		Limit:  input.Limit,
		Skip:   input.Skip,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list splits")
	}

	return splits, nil
}

// Get returns the split with the given id.
func (srv *splitService) Get(ctx context.Context, id int64) (*entity.Split, error) {
	split, err := srv.splitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSplitNotFound) {
			return nil, domainerrors.ErrSplitNotFound.WrapMessage("split lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load split")
	}

	return split, nil
}

// Create persists a new split. The owner is always the authenticated
// requester; nothing in the payload can change that.
func (srv *splitService) Create(ctx context.Context, userID int64, input *usecase.CreateSplitInput) (*entity.Split, error) {
	newSplit := &entity.Split{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     userID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SplitRepo().Create(ctx, newSplit)
	})
	if err != nil {
		srv.log(ctx).Warn("Split creation failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Split created", slog.Int64("splitID", newSplit.ID), slog.Int64("userID", userID))

	return newSplit, nil
}

// Update applies a partial update after the load-then-authorize sequence.
// The read, ownership check, and write commit as one transaction.
func (srv *splitService) Update(ctx context.Context, userID, splitID int64, input *usecase.UpdateSplitInput) (*entity.Split, error) {
	var updated *entity.Split
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		splitRepo := repoFactory.SplitRepo()

		split, err := splitRepo.FindByID(ctx, splitID)
		if err != nil {
			if errors.Is(err, repository.ErrSplitNotFound) {
				return domainerrors.ErrSplitNotFound.WrapMessage("split lookup failed")
			}

			return errors.Wrap(err, "failed to load split for update")
		}

		if err := requireOwner(split.OwnerID, userID); err != nil {
			return err
		}

		// Partial update: only the fields present in the payload change.
		if input.Name != nil {
			split.Name = *input.Name
		}
		if input.Description != nil {
			split.Description = *input.Description
		}

		if err := splitRepo.Update(ctx, split); err != nil {
			return errors.Wrap(err, "failed to update split")
		}

		updated = split

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Split update failed", slog.Int64("splitID", splitID), slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Delete removes the split after the load-then-authorize sequence. The
// database cascades the delete to the split's workouts.
func (srv *splitService) Delete(ctx context.Context, userID, splitID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		splitRepo := repoFactory.SplitRepo()

		split, err := splitRepo.FindByID(ctx, splitID)
		if err != nil {
			if errors.Is(err, repository.ErrSplitNotFound) {
				return domainerrors.ErrSplitNotFound.WrapMessage("split lookup failed")
			}

			return errors.Wrap(err, "failed to load split for delete")
		}

		if err := requireOwner(split.OwnerID, userID); err != nil {
			return err
		}

		return splitRepo.Delete(ctx, splitID)
	})
	if err != nil {
		srv.log(ctx).Warn("Split delete failed", slog.Int64("splitID", splitID), slog.Int64("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Split deleted", slog.Int64("splitID", splitID), slog.Int64("userID", userID))

	return nil
}
