// Package initializer wires the infrastructure together: logger,
// embedded store, unit of work, event bus and tare registry.
package initializer

import (
	"fmt"

	infraeventbus "github.com/thevuong/harvest/infra/eventbus"
	infrarepo "github.com/thevuong/harvest/infra/repository"
	infratare "github.com/thevuong/harvest/infra/tare"
	"github.com/thevuong/harvest/pkg/config"
	"github.com/thevuong/harvest/pkg/currency"
)

// InitializeDependencies builds every infrastructure dependency from
// the loaded configuration.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	deps := &config.Deps{Config: cfg}

	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	deps.CurrencyRegistry = currency.NewRegistry()
	if !deps.CurrencyRegistry.IsSupported(cfg.Currency.Code) {
		logger.Warn("configured currency not registered, display falls back to plain integers",
			"currency", cfg.Currency.Code)
	}

	db, err := infrarepo.Open(cfg.DB.Path, logger)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.DB.Path, "error", err)
		return nil, fmt.Errorf("open store: %w", err)
	}
	deps.Uow = infrarepo.NewUoW(db)

	deps.EventBus = infraeventbus.NewWithMemory(logger)
	deps.TareRegistry = infratare.NewFileRegistry(cfg.Tares.Path, logger)

	return deps, nil
}
