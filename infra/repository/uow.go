package repository

import (
	"context"

	"github.com/thevuong/harvest/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share the transaction
// session, so every mutation in one Do call commits or rolls back as a
// unit. The root UoW refuses to hand out repositories at all: work
// outside a transaction scope is a programming error, not a degraded
// mode.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a transaction boundary, providing a UoW whose
// repositories are bound to that transaction. An error from fn rolls
// the whole transaction back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// FishRepository returns the fish repository bound to the active
// transaction, or ErrNoTransaction outside a Do scope.
func (u *UoW) FishRepository() (repository.FishRepository, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return NewFishRepository(u.tx), nil
}

// WeighingRepository returns the weighing repository bound to the
// active transaction, or ErrNoTransaction outside a Do scope.
func (u *UoW) WeighingRepository() (repository.WeighingRepository, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return NewWeighingRepository(u.tx), nil
}

// Ensure UoW implements the UnitOfWork interface.
var _ repository.UnitOfWork = (*UoW)(nil)
