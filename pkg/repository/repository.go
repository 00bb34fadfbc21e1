// Package repository defines the persistence contract of the harvest
// tracker. Repositories are only reachable through the UnitOfWork, so
// every mutation necessarily runs inside a transaction boundary.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/thevuong/harvest/pkg/domain/fish"
)

// FishRepository defines data access for fish types.
//
// List orderings are stable: fish sort by unit price, then name, the
// order the catalogue screens display them in.
type FishRepository interface {
	Create(ctx context.Context, f *fish.Fish) error
	// Get returns the fish without its weighings, or fish.ErrFishNotFound.
	Get(ctx context.Context, id uuid.UUID) (*fish.Fish, error)
	// GetWithWeighings returns the fish with its weighings in entry order.
	GetWithWeighings(ctx context.Context, id uuid.UUID) (*fish.Fish, error)
	List(ctx context.Context) ([]*fish.Fish, error)
	// ListWithWeighings returns every fish with weighings preloaded in
	// entry order; fish without weighings are included.
	ListWithWeighings(ctx context.Context) ([]*fish.Fish, error)
	Update(ctx context.Context, f *fish.Fish) error
	// Delete removes the fish row only; cascading its weighings is the
	// caller's duty, inside the same transaction. Returns the number of
	// rows deleted (0 when the fish was already gone).
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// WeighingRepository defines data access for weighing records.
type WeighingRepository interface {
	Create(ctx context.Context, w *fish.Weighing) error
	// Get returns the weighing or fish.ErrWeighingNotFound.
	Get(ctx context.Context, id uuid.UUID) (*fish.Weighing, error)
	// ListByFish returns the fish's weighings in entry order.
	ListByFish(ctx context.Context, fishID uuid.UUID) ([]*fish.Weighing, error)
	Update(ctx context.Context, w *fish.Weighing) error
	// DeleteBatch removes the given ids, skipping absent ones, and
	// returns the ids that were actually deleted.
	DeleteBatch(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	// DeleteByFish removes every weighing owned by the fish and returns
	// how many rows went away.
	DeleteByFish(ctx context.Context, fishID uuid.UUID) (int64, error)
}
