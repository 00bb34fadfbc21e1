// Package tare defines the registry of per-fish-name tare overrides.
//
// The registry is auxiliary preference data, persisted outside the main
// store and keyed by the fish's display name. An entry survives renames
// and deletions of the fish it was written for; stale entries are never
// purged. The stored value is only a default suggestion when recording
// a weighing: the resolved tare is snapshotted into the record and a
// later registry change never touches existing records.
package tare

import "context"

// Registry persists the tare-override mapping as a whole. There is no
// partial-key update: callers read, modify and save the entire mapping.
type Registry interface {
	// Load returns the stored mapping. A missing or undecodable store
	// yields an empty mapping and no error.
	Load(ctx context.Context) (map[string]float64, error)

	// Save atomically overwrites the entire mapping.
	Save(ctx context.Context, overrides map[string]float64) error
}
