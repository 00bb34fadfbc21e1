// Package tare provides the business logic for the per-fish-name tare
// registry: the weights that get subtracted by default when a weighing
// is recorded with tare subtraction enabled.
package tare

import (
	"context"
	"log/slog"

	domainfish "github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/tare"
)

// Service manages the tare registry. Edits never touch existing
// weighings; the registry only feeds the resolution of new records.
type Service struct {
	registry tare.Registry
	logger   *slog.Logger
}

// NewService creates a new Service backed by the given registry.
func NewService(registry tare.Registry, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger.With("service", "tare"),
	}
}

// Overrides returns the full registry. A registry that cannot be read
// counts as empty, so the result is never nil.
func (s *Service) Overrides(ctx context.Context) (map[string]float64, error) {
	overrides, err := s.registry.Load(ctx)
	if err != nil {
		s.logger.Error("load tare registry failed", "error", err)
		return nil, err
	}
	if overrides == nil {
		overrides = make(map[string]float64)
	}
	return overrides, nil
}

// Replace overwrites the whole registry with the given map. Names
// absent from the map lose their override.
func (s *Service) Replace(ctx context.Context, overrides map[string]float64) error {
	for name, value := range overrides {
		if value < 0 {
			s.logger.Warn("rejected negative tare", "fish_name", name, "tare", value)
			return domainfish.ErrNegativeWeight
		}
	}
	if err := s.registry.Save(ctx, overrides); err != nil {
		s.logger.Error("save tare registry failed", "error", err)
		return err
	}
	return nil
}

// SetOverride sets the tare for one fish name, keeping the rest of the
// registry intact.
func (s *Service) SetOverride(ctx context.Context, fishName string, value float64) error {
	if fishName == "" {
		return domainfish.ErrNameRequired
	}
	if value < 0 {
		return domainfish.ErrNegativeWeight
	}
	overrides, err := s.Overrides(ctx)
	if err != nil {
		return err
	}
	overrides[fishName] = value
	return s.Replace(ctx, overrides)
}

// RemoveOverride drops the tare for one fish name. Removing a name
// that has no override is a no-op.
func (s *Service) RemoveOverride(ctx context.Context, fishName string) error {
	overrides, err := s.Overrides(ctx)
	if err != nil {
		return err
	}
	if _, ok := overrides[fishName]; !ok {
		return nil
	}
	delete(overrides, fishName)
	return s.Replace(ctx, overrides)
}

// OverrideFor returns the tare registered for a fish name, zero when
// none is set.
func (s *Service) OverrideFor(ctx context.Context, fishName string) (float64, error) {
	overrides, err := s.Overrides(ctx)
	if err != nil {
		return 0, err
	}
	return overrides[fishName], nil
}
