// Package fish contains the catalogue entities of the harvest tracker:
// fish types purchased at the weighing station and the individual
// weighings recorded against them, together with the pure settlement
// computation both the UI and the summary report rely on.
package fish

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrFishNotFound is returned when a fish type cannot be found by id.
	ErrFishNotFound = errors.New("fish not found")

	// ErrWeighingNotFound is returned when a weighing cannot be found by id.
	ErrWeighingNotFound = errors.New("weighing not found")

	// ErrNameRequired is returned when a fish is created or renamed with an empty name.
	ErrNameRequired = errors.New("fish name is required")

	// ErrNegativePrice is returned when a unit price below zero is supplied.
	ErrNegativePrice = errors.New("unit price must not be negative")

	// ErrNegativeWeight is returned when a gross weight or tare below zero is supplied.
	ErrNegativeWeight = errors.New("weight must not be negative")

	// ErrGrossNotPositive is returned when a weighing is recorded without a
	// positive gross weight.
	ErrGrossNotPositive = errors.New("gross weight must be positive")
)

// Fish represents one purchasable fish type. It owns its weighings
// exclusively: deleting a fish deletes every weighing recorded for it,
// in the same transaction.
//
// Invariants:
// - ID is assigned at creation and never changes.
// - UnitPrice is never negative.
// - Name doubles as the lookup key into the tare registry; matching is
//   exact string equality, case and diacritics included.
type Fish struct {
	ID        uuid.UUID
	Name      string
	UnitPrice float64
	Photo     []byte
	HasTare   bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Weighings in entry order. Populated only by the read paths that
	// ask for it; nil otherwise.
	Weighings []Weighing
}

// Builder provides a fluent API for constructing Fish instances.
type Builder struct {
	id        uuid.UUID
	name      string
	unitPrice float64
	photo     []byte
	hasTare   bool
	createdAt time.Time
}

// New creates a new Builder with a fresh UUID and creation timestamp.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// WithID sets the id for the fish being built. Used when hydrating from
// the store; new fish keep the generated id.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithName sets the display name. This is a mandatory field.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithUnitPrice sets the price per kilogram.
func (b *Builder) WithUnitPrice(price float64) *Builder {
	b.unitPrice = price
	return b
}

// WithPhoto attaches the optional photo blob.
func (b *Builder) WithPhoto(photo []byte) *Builder {
	b.photo = photo
	return b
}

// WithHasTare sets the persisted tare flag. The flag is carried through
// the store but takes no part in any computation.
func (b *Builder) WithHasTare(hasTare bool) *Builder {
	b.hasTare = hasTare
	return b
}

// WithCreatedAt sets the creation timestamp, primarily for hydrating an
// existing fish from the store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the invariants and returns the Fish.
func (b *Builder) Build() (*Fish, error) {
	if b.name == "" {
		return nil, ErrNameRequired
	}
	if b.unitPrice < 0 {
		return nil, ErrNegativePrice
	}
	return &Fish{
		ID:        b.id,
		Name:      b.name,
		UnitPrice: b.unitPrice,
		Photo:     b.photo,
		HasTare:   b.hasTare,
		CreatedAt: b.createdAt,
		UpdatedAt: b.createdAt,
	}, nil
}
