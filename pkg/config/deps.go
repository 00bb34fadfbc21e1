package config

import (
	"log/slog"

	"github.com/thevuong/harvest/pkg/currency"
	"github.com/thevuong/harvest/pkg/eventbus"
	"github.com/thevuong/harvest/pkg/repository"
	"github.com/thevuong/harvest/pkg/tare"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow              repository.UnitOfWork
	EventBus         eventbus.Bus
	TareRegistry     tare.Registry
	CurrencyRegistry *currency.Registry
	Logger           *slog.Logger
	Config           *App
}
