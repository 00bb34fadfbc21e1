// Package mapper converts domain entities into transfer objects.
package mapper

import (
	"github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/dto"
)

// ToFishRead maps a domain Fish to its read DTO.
func ToFishRead(f *fish.Fish) *dto.FishRead {
	return &dto.FishRead{
		ID:        f.ID,
		Name:      f.Name,
		UnitPrice: f.UnitPrice,
		Photo:     f.Photo,
		HasTare:   f.HasTare,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToFishReads maps a slice of fish, keeping order.
func ToFishReads(list []*fish.Fish) []*dto.FishRead {
	out := make([]*dto.FishRead, len(list))
	for i, f := range list {
		out[i] = ToFishRead(f)
	}
	return out
}

// ToWeighingRead maps a domain Weighing to its read DTO, computing the
// derived net weight and amount.
func ToWeighingRead(w *fish.Weighing) *dto.WeighingRead {
	return &dto.WeighingRead{
		ID:           w.ID,
		FishID:       w.FishID,
		Gross:        w.Gross,
		Tare:         w.Tare,
		Net:          w.Net(),
		PriceAtEntry: w.PriceAtEntry,
		Amount:       w.Amount(),
		CreatedAt:    w.CreatedAt,
	}
}

// ToWeighingReads maps a slice of weighings, keeping entry order.
func ToWeighingReads(list []*fish.Weighing) []*dto.WeighingRead {
	out := make([]*dto.WeighingRead, len(list))
	for i, w := range list {
		out[i] = ToWeighingRead(w)
	}
	return out
}
