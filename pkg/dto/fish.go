// Package dto defines the data transfer objects exchanged between the
// transport surface, the service layer and the repositories.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// FishRead is a read-optimized view of one fish type.
type FishRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Photo     []byte    `json:"photo,omitempty"`
	HasTare   bool      `json:"has_tare"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FishCreate carries the add-flow input: name, price, optional photo.
type FishCreate struct {
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Photo     []byte  `json:"photo,omitempty"`
	HasTare   bool    `json:"has_tare"`
}

// FishUpdate carries the edit-flow input. Every field but the id is
// editable; nil fields are left untouched.
type FishUpdate struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	UnitPrice *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	Photo     *[]byte  `json:"photo,omitempty"`
	HasTare   *bool    `json:"has_tare,omitempty"`
}
