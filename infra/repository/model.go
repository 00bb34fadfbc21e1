// Package repository implements the persistence contract on top of an
// embedded SQLite database through GORM.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/thevuong/harvest/pkg/domain/fish"
)

// Fish represents a fish type record in the database.
type Fish struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:120"`
	UnitPrice float64   `gorm:"not null;default:0"`
	Photo     []byte
	HasTare   bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Weighings []Weighing `gorm:"foreignKey:FishID"`
}

// Weighing represents a persisted weighing record. Net weight and
// amount are never stored; they are recomputed from these columns.
type Weighing struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FishID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Gross        float64   `gorm:"not null;default:0"`
	Tare         float64   `gorm:"not null;default:0"`
	PriceAtEntry float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index"`
}

// entryOrder is the stable chronological ordering of weighings.
// CreatedAt carries nanosecond precision; the id breaks exact ties.
const entryOrder = "created_at, id"

func toDomainFish(m *Fish, weighings []*fish.Weighing) *fish.Fish {
	f := &fish.Fish{
		ID:        m.ID,
		Name:      m.Name,
		UnitPrice: m.UnitPrice,
		Photo:     m.Photo,
		HasTare:   m.HasTare,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if weighings != nil {
		f.Weighings = make([]fish.Weighing, len(weighings))
		for i, w := range weighings {
			f.Weighings[i] = *w
		}
	}
	return f
}

func toFishModel(f *fish.Fish) *Fish {
	return &Fish{
		ID:        f.ID,
		Name:      f.Name,
		UnitPrice: f.UnitPrice,
		Photo:     f.Photo,
		HasTare:   f.HasTare,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toDomainWeighing(m *Weighing) *fish.Weighing {
	return &fish.Weighing{
		ID:           m.ID,
		FishID:       m.FishID,
		Gross:        m.Gross,
		Tare:         m.Tare,
		PriceAtEntry: m.PriceAtEntry,
		CreatedAt:    m.CreatedAt,
	}
}

func toWeighingModel(w *fish.Weighing) *Weighing {
	return &Weighing{
		ID:           w.ID,
		FishID:       w.FishID,
		Gross:        w.Gross,
		Tare:         w.Tare,
		PriceAtEntry: w.PriceAtEntry,
		CreatedAt:    w.CreatedAt,
	}
}
