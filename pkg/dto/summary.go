package dto

import "github.com/google/uuid"

// FishSummary holds the per-fish totals shown on the summary screen
// and printed on the exported report. TotalAmount is priced at the
// fish's current unit price, not the per-record snapshots.
type FishSummary struct {
	FishID      uuid.UUID `json:"fish_id"`
	Name        string    `json:"name"`
	UnitPrice   float64   `json:"unit_price"`
	Records     int       `json:"records"`
	TotalGross  float64   `json:"total_gross"`
	TotalTare   float64   `json:"total_tare"`
	TotalNet    float64   `json:"total_net"`
	TotalAmount float64   `json:"total_amount"`
}

// Summary is the full purchase summary: one entry per fish type, zero
// or not, plus the grand total across all of them.
type Summary struct {
	Fish       []FishSummary `json:"fish"`
	GrandTotal float64       `json:"grand_total"`
}

// ExportResult reports where a generated summary document was written.
type ExportResult struct {
	Path string `json:"path"`
}
