// Package fish provides the business logic for the catalogue and
// weighing flows: adding and editing fish types, recording weighings
// with tare and price resolution, cascade deletion, and batch delete of
// weighings. Every mutation runs in one UnitOfWork transaction and, on
// commit, emits a change event on the bus.
package fish

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thevuong/harvest/pkg/domain"
	domainfish "github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/dto"
	"github.com/thevuong/harvest/pkg/eventbus"
	"github.com/thevuong/harvest/pkg/mapper"
	"github.com/thevuong/harvest/pkg/repository"
	"github.com/thevuong/harvest/pkg/tare"
)

// Service provides the catalogue and weighing operations.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	tares  tare.Registry
	logger *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	tares tare.Registry,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		bus:    bus,
		tares:  tares,
		logger: logger.With("service", "fish"),
	}
}

// CreateFish runs the add-flow: a new fish type from name, unit price
// and optional photo.
func (s *Service) CreateFish(ctx context.Context, create dto.FishCreate) (*dto.FishRead, error) {
	f, err := domainfish.New().
		WithName(create.Name).
		WithUnitPrice(create.UnitPrice).
		WithPhoto(create.Photo).
		WithHasTare(create.HasTare).
		Build()
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, f)
	})
	if err != nil {
		s.logger.Error("create fish failed", "name", create.Name, "error", err)
		return nil, err
	}

	s.emit(ctx, domainfish.CreatedEvent{FishID: f.ID, Name: f.Name})
	return mapper.ToFishRead(f), nil
}

// UpdateFish runs the edit-flow. The fish is re-resolved by primary key
// inside the transaction; if it vanished since the caller last saw it,
// the edit is skipped silently with no side effect.
func (s *Service) UpdateFish(ctx context.Context, id uuid.UUID, update dto.FishUpdate) (*dto.FishRead, error) {
	if update.Name != nil && *update.Name == "" {
		return nil, domainfish.ErrNameRequired
	}
	if update.UnitPrice != nil && *update.UnitPrice < 0 {
		return nil, domainfish.ErrNegativePrice
	}

	var updated *domainfish.Fish
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		f, err := repo.Get(ctx, id)
		if errors.Is(err, domainfish.ErrFishNotFound) {
			s.logger.Debug("edit of a vanished fish skipped", "fish_id", id)
			return nil
		}
		if err != nil {
			return err
		}

		if update.Name != nil {
			f.Name = *update.Name
		}
		if update.UnitPrice != nil {
			f.UnitPrice = *update.UnitPrice
		}
		if update.Photo != nil {
			f.Photo = *update.Photo
		}
		if update.HasTare != nil {
			f.HasTare = *update.HasTare
		}
		if err := repo.Update(ctx, f); err != nil {
			return err
		}
		updated = f
		return nil
	})
	if err != nil {
		s.logger.Error("update fish failed", "fish_id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	s.emit(ctx, domainfish.UpdatedEvent{FishID: updated.ID, Name: updated.Name})
	return mapper.ToFishRead(updated), nil
}

// DeleteFish removes a fish type and, in the same transaction, every
// weighing it owns. Deleting an already-gone fish is a silent no-op.
func (s *Service) DeleteFish(ctx context.Context, id uuid.UUID) error {
	var fishDeleted, weighingsDeleted int64
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		fishRepo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		weighRepo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		// cascade first, owner second, one transaction
		weighingsDeleted, err = weighRepo.DeleteByFish(ctx, id)
		if err != nil {
			return err
		}
		fishDeleted, err = fishRepo.Delete(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Error("delete fish failed", "fish_id", id, "error", err)
		return err
	}
	if fishDeleted == 0 {
		return nil
	}

	s.emit(ctx, domainfish.DeletedEvent{FishID: id, WeighingsDeleted: weighingsDeleted})
	return nil
}

// GetFish returns one fish type, or domainfish.ErrFishNotFound.
func (s *Service) GetFish(ctx context.Context, id uuid.UUID) (*dto.FishRead, error) {
	var read *dto.FishRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		f, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		read = mapper.ToFishRead(f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return read, nil
}

// ListFish returns the catalogue sorted by unit price, then name.
func (s *Service) ListFish(ctx context.Context) ([]*dto.FishRead, error) {
	var reads []*dto.FishRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		list, err := repo.List(ctx)
		if err != nil {
			return err
		}
		reads = mapper.ToFishReads(list)
		return nil
	})
	if err != nil {
		s.logger.Error("list fish failed", "error", err)
		return nil, err
	}
	return reads, nil
}

// RecordWeighing runs the weigh-flow. Tare and price are resolved once,
// here, and snapshotted into the record; see dto.WeighingCreate for the
// resolution order. The owning fish must exist.
func (s *Service) RecordWeighing(ctx context.Context, create dto.WeighingCreate) (*dto.WeighingRead, error) {
	if create.Gross <= 0 {
		return nil, domainfish.ErrGrossNotPositive
	}
	if create.Tare != nil && *create.Tare < 0 {
		return nil, domainfish.ErrNegativeWeight
	}

	var recorded *domainfish.Weighing
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		fishRepo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		f, err := fishRepo.Get(ctx, create.FishID)
		if err != nil {
			return err
		}

		resolvedTare, err := s.resolveTare(ctx, f.Name, create.SubtractTare, create.Tare)
		if err != nil {
			return err
		}
		price := f.UnitPrice
		if create.Price != nil {
			price = *create.Price
		}

		w := &domainfish.Weighing{
			ID:           uuid.New(),
			FishID:       f.ID,
			Gross:        create.Gross,
			Tare:         resolvedTare,
			PriceAtEntry: price,
			CreatedAt:    time.Now().UTC(),
		}
		weighRepo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		if err := weighRepo.Create(ctx, w); err != nil {
			return err
		}
		recorded = w
		return nil
	})
	if err != nil {
		s.logger.Error("record weighing failed", "fish_id", create.FishID, "error", err)
		return nil, err
	}

	s.emit(ctx, domainfish.WeighingRecordedEvent{WeighingID: recorded.ID, FishID: recorded.FishID})
	return mapper.ToWeighingRead(recorded), nil
}

// UpdateWeighing runs the weighing edit-flow, keyed by id. The live row
// is re-resolved inside the transaction; editing a vanished weighing is
// a silent no-op.
func (s *Service) UpdateWeighing(ctx context.Context, id uuid.UUID, update dto.WeighingUpdate) (*dto.WeighingRead, error) {
	if update.Gross != nil && *update.Gross <= 0 {
		return nil, domainfish.ErrGrossNotPositive
	}
	if update.Tare != nil && *update.Tare < 0 {
		return nil, domainfish.ErrNegativeWeight
	}

	var updated *domainfish.Weighing
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		weighRepo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		w, err := weighRepo.Get(ctx, id)
		if errors.Is(err, domainfish.ErrWeighingNotFound) {
			s.logger.Debug("edit of a vanished weighing skipped", "weighing_id", id)
			return nil
		}
		if err != nil {
			return err
		}

		if update.Gross != nil {
			w.Gross = *update.Gross
		}
		if update.SubtractTare != nil || update.Tare != nil {
			fishRepo, err := uow.FishRepository()
			if err != nil {
				return err
			}
			name := ""
			if f, err := fishRepo.Get(ctx, w.FishID); err == nil {
				name = f.Name
			}
			subtract := true
			if update.SubtractTare != nil {
				subtract = *update.SubtractTare
			}
			w.Tare, err = s.resolveTare(ctx, name, subtract, update.Tare)
			if err != nil {
				return err
			}
		}
		if update.Price != nil {
			w.PriceAtEntry = *update.Price
		}
		if err := weighRepo.Update(ctx, w); err != nil {
			return err
		}
		updated = w
		return nil
	})
	if err != nil {
		s.logger.Error("update weighing failed", "weighing_id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	s.emit(ctx, domainfish.WeighingUpdatedEvent{WeighingID: updated.ID, FishID: updated.FishID})
	return mapper.ToWeighingRead(updated), nil
}

// DeleteWeighings runs the multi-select batch delete. Ids that no
// longer exist are skipped; the rest are removed in one transaction.
func (s *Service) DeleteWeighings(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var deleted []uuid.UUID
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		deleted, err = repo.DeleteBatch(ctx, ids)
		return err
	})
	if err != nil {
		s.logger.Error("batch delete weighings failed", "count", len(ids), "error", err)
		return err
	}
	if len(deleted) == 0 {
		return nil
	}

	s.emit(ctx, domainfish.WeighingDeletedEvent{WeighingIDs: deleted})
	return nil
}

// ListWeighings returns a fish's weighings in entry order.
func (s *Service) ListWeighings(ctx context.Context, fishID uuid.UUID) ([]*dto.WeighingRead, error) {
	var reads []*dto.WeighingRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		list, err := repo.ListByFish(ctx, fishID)
		if err != nil {
			return err
		}
		reads = mapper.ToWeighingReads(list)
		return nil
	})
	if err != nil {
		s.logger.Error("list weighings failed", "fish_id", fishID, "error", err)
		return nil, err
	}
	return reads, nil
}

// resolveTare applies the tare resolution order: opt-out wins, then an
// explicit override, then the registry value for the fish name, then
// zero. A registry that fails to load counts as empty.
func (s *Service) resolveTare(ctx context.Context, fishName string, subtract bool, override *float64) (float64, error) {
	if !subtract {
		return 0, nil
	}
	if override != nil {
		return *override, nil
	}
	overrides, err := s.tares.Load(ctx)
	if err != nil {
		s.logger.Warn("tare registry load failed, using zero", "error", err)
		return 0, nil
	}
	return overrides[fishName], nil
}

// emit publishes a change notification after a committed mutation.
func (s *Service) emit(ctx context.Context, event domain.Event) {
	if err := s.bus.Emit(ctx, event); err != nil {
		s.logger.Warn("change notification failed", "event_type", event.Type(), "error", err)
	}
}
