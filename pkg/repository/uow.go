package repository

import "context"

// UnitOfWork is the transaction boundary of the store.
//
// Do executes fn inside an exclusive transaction; if fn returns an
// error the transaction rolls back with no partial effect. Repository
// accessors only work on a UnitOfWork received inside Do — asking the
// root UnitOfWork for a repository fails, which makes a mutation
// outside a transaction unrepresentable.
//
// Entity values fetched in an earlier transaction are lookup keys, not
// live references: re-resolve by primary key inside the transaction
// before mutating, since the row may have changed or vanished since.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	FishRepository() (FishRepository, error)
	WeighingRepository() (WeighingRepository, error)
}
