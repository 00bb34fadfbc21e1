package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/repository"
	"gorm.io/gorm"
)

type weighingRepository struct {
	db *gorm.DB
}

// NewWeighingRepository creates a WeighingRepository bound to the given session.
func NewWeighingRepository(db *gorm.DB) repository.WeighingRepository {
	return &weighingRepository{db: db}
}

func (r *weighingRepository) Create(ctx context.Context, w *fish.Weighing) error {
	return r.db.WithContext(ctx).Create(toWeighingModel(w)).Error
}

func (r *weighingRepository) Get(ctx context.Context, id uuid.UUID) (*fish.Weighing, error) {
	var m Weighing
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, mapError(err, fish.ErrWeighingNotFound)
	}
	return toDomainWeighing(&m), nil
}

func (r *weighingRepository) ListByFish(ctx context.Context, fishID uuid.UUID) ([]*fish.Weighing, error) {
	var models []Weighing
	err := r.db.WithContext(ctx).
		Where("fish_id = ?", fishID).
		Order(entryOrder).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*fish.Weighing, len(models))
	for i := range models {
		out[i] = toDomainWeighing(&models[i])
	}
	return out, nil
}

func (r *weighingRepository) Update(ctx context.Context, w *fish.Weighing) error {
	return r.db.WithContext(ctx).Model(&Weighing{ID: w.ID}).
		Select("Gross", "Tare", "PriceAtEntry").
		Updates(toWeighingModel(w)).Error
}

func (r *weighingRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	// Resolve which ids still exist so absent ones are skipped, not errors.
	var present []uuid.UUID
	err := r.db.WithContext(ctx).Model(&Weighing{}).
		Where("id IN ?", ids).
		Pluck("id", &present).Error
	if err != nil {
		return nil, err
	}
	if len(present) == 0 {
		return nil, nil
	}
	if err := r.db.WithContext(ctx).Delete(&Weighing{}, "id IN ?", present).Error; err != nil {
		return nil, err
	}
	return present, nil
}

func (r *weighingRepository) DeleteByFish(ctx context.Context, fishID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Weighing{}, "fish_id = ?", fishID)
	return result.RowsAffected, result.Error
}
