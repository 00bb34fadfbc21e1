package dto

import (
	"time"

	"github.com/google/uuid"
)

// WeighingRead is a read-optimized view of one weighing, with the
// derived fields computed for display.
type WeighingRead struct {
	ID           uuid.UUID `json:"id"`
	FishID       uuid.UUID `json:"fish_id"`
	Gross        float64   `json:"gross"`
	Tare         float64   `json:"tare"`
	Net          float64   `json:"net"`
	PriceAtEntry float64   `json:"price_at_entry"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// WeighingCreate carries the weigh-flow input.
//
// Tare resolution, applied once at creation: SubtractTare false wins
// and forces zero; otherwise an explicit Tare override wins; otherwise
// the tare registry value for the fish name; otherwise zero. Price
// defaults to the fish's current unit price when not supplied. Both
// resolved values are snapshotted into the record.
type WeighingCreate struct {
	// FishID comes from the route path, not the body.
	FishID       uuid.UUID `json:"-"`
	Gross        float64   `json:"gross" validate:"gt=0"`
	SubtractTare bool      `json:"subtract_tare"`
	Tare         *float64  `json:"tare,omitempty" validate:"omitempty,gte=0"`
	Price        *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// WeighingUpdate carries the edit-flow input, keyed by the weighing id.
// Nil fields are left untouched; tare resolution follows the same order
// as creation.
type WeighingUpdate struct {
	Gross        *float64 `json:"gross,omitempty" validate:"omitempty,gt=0"`
	SubtractTare *bool    `json:"subtract_tare,omitempty"`
	Tare         *float64 `json:"tare,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// WeighingDelete carries the multi-select batch delete input.
type WeighingDelete struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}
