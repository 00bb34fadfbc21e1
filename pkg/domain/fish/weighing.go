package fish

import (
	"time"

	"github.com/google/uuid"
)

// Weighing is a single weigh-in event for one fish type. Gross and tare
// are stored; net weight and amount are always derived, never stored,
// so they cannot drift from their inputs.
//
// PriceAtEntry is the unit price snapshotted when the weighing was
// recorded or last edited. Later changes to the owning fish's price
// never reprice an existing weighing.
type Weighing struct {
	ID           uuid.UUID
	FishID       uuid.UUID
	Gross        float64
	Tare         float64
	PriceAtEntry float64
	CreatedAt    time.Time
}

// Net returns the net weight of this weighing, floored at zero.
func (w Weighing) Net() float64 {
	return NetWeight(w.Gross, w.Tare)
}

// Amount returns what is owed for this weighing at its snapshotted price.
func (w Weighing) Amount() float64 {
	return Amount(w.Gross, w.Tare, w.PriceAtEntry)
}

// NetWeight computes gross minus tare, clamped at zero. A tare heavier
// than the gross yields zero, never a negative weight.
func NetWeight(gross, tare float64) float64 {
	if net := gross - tare; net > 0 {
		return net
	}
	return 0
}

// Amount computes the settlement amount for a weighing: net weight
// times the unit price. It is a pure function of its three inputs; no
// rounding happens here, only at display formatting.
func Amount(gross, tare, unitPrice float64) float64 {
	return NetWeight(gross, tare) * unitPrice
}
