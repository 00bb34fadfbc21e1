// Package tare provides the JSON-file-backed tare registry.
package tare

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/thevuong/harvest/pkg/tare"
)

// FileRegistry stores the tare-override mapping in a single JSON file
// beside the database. Save writes a temp file and renames it into
// place, so a crashed save never leaves a torn mapping behind.
type FileRegistry struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewFileRegistry creates a registry backed by the given file path.
// The file does not need to exist yet.
func NewFileRegistry(path string, logger *slog.Logger) *FileRegistry {
	return &FileRegistry{
		path:   path,
		logger: logger.With("component", "tare-registry"),
	}
}

// Load reads the stored mapping. A missing file or a decode failure is
// an unexceptional default state and yields an empty mapping.
func (r *FileRegistry) Load(ctx context.Context) (map[string]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("tare registry unreadable, treating as empty", "path", r.path, "error", err)
		}
		return map[string]float64{}, nil
	}

	overrides := map[string]float64{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		r.logger.Warn("tare registry undecodable, treating as empty", "path", r.path, "error", err)
		return map[string]float64{}, nil
	}
	return overrides, nil
}

// Save atomically overwrites the whole mapping.
func (r *FileRegistry) Save(ctx context.Context, overrides map[string]float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if overrides == nil {
		overrides = map[string]float64{}
	}
	data, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("encode tare registry: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".tares-*.json")
	if err != nil {
		return fmt.Errorf("write tare registry: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write tare registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write tare registry: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace tare registry: %w", err)
	}
	return nil
}

// Ensure FileRegistry implements the Registry interface.
var _ tare.Registry = (*FileRegistry)(nil)
