package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"rockroutes/internal/models/db_models"
	"rockroutes/pkg/utils"
)

// IsOwner is the one authorization predicate for owned records: read, update
// and delete all go through it.
func IsOwner(record db_models.Owned, accountID uuid.UUID) bool {
	return accountID != uuid.Nil && record.OwnerID() == accountID
}

// findOwned fetches a record by id and checks that accountID owns it.
func findOwned[M any, PM interface {
	*M
	db_models.Owned
}](
	ctx context.Context,
	find func(context.Context, uuid.UUID) (*M, error),
	id uuid.UUID,
	accountID uuid.UUID,
	notFound error,
	denied error,
) (*M, error) {
	if accountID == uuid.Nil {
		return nil, utils.ErrNotAuthenticated
	}
	if id == uuid.Nil {
		return nil, utils.ErrInvalidID
	}

	record, err := find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if record == nil {
		return nil, notFound
	}
	if !IsOwner(PM(record), accountID) {
		return nil, denied
	}
	return record, nil
}

func dbError(err error) error {
	return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
}
