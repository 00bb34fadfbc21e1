// Package app assembles the services on top of the initialized
// infrastructure dependencies.
package app

import (
	"github.com/thevuong/harvest/internal/export"
	"github.com/thevuong/harvest/pkg/config"
	fishservice "github.com/thevuong/harvest/pkg/service/fish"
	reportservice "github.com/thevuong/harvest/pkg/service/report"
	tareservice "github.com/thevuong/harvest/pkg/service/tare"
)

type App struct {
	Deps          *config.Deps
	Config        *config.App
	FishService   *fishservice.Service
	TareService   *tareservice.Service
	ReportService *reportservice.Service
}

// New builds the application services from the initialized
// dependencies.
func New(deps *config.Deps, cfg *config.App) *App {
	exporter := export.NewPDFExporter(cfg.Export.Dir, cfg.Currency.Code, deps.Logger)

	return &App{
		Deps:          deps,
		Config:        cfg,
		FishService:   fishservice.NewService(deps.Uow, deps.EventBus, deps.TareRegistry, deps.Logger),
		TareService:   tareservice.NewService(deps.TareRegistry, deps.Logger),
		ReportService: reportservice.NewService(deps.Uow, exporter, deps.Logger),
	}
}
