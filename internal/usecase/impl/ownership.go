package impl

import domainerrors "liftlog/internal/domain/errors"

// requireOwner is the per-resource authorization gate used by every mutating
// operation. It runs after the resource has been loaded and before any write.
func requireOwner(ownerID, userID int64) error {
	if ownerID != userID {
		return domainerrors.ErrNotResourceOwner.WrapMessage("requester does not own the resource")
	}

	return nil
}
