package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/repository"
	"gorm.io/gorm"
)

type fishRepository struct {
	db *gorm.DB
}

// NewFishRepository creates a FishRepository bound to the given session.
func NewFishRepository(db *gorm.DB) repository.FishRepository {
	return &fishRepository{db: db}
}

func (r *fishRepository) Create(ctx context.Context, f *fish.Fish) error {
	return r.db.WithContext(ctx).Create(toFishModel(f)).Error
}

func (r *fishRepository) Get(ctx context.Context, id uuid.UUID) (*fish.Fish, error) {
	var m Fish
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, mapError(err, fish.ErrFishNotFound)
	}
	return toDomainFish(&m, nil), nil
}

func (r *fishRepository) GetWithWeighings(ctx context.Context, id uuid.UUID) (*fish.Fish, error) {
	var m Fish
	err := r.db.WithContext(ctx).
		Preload("Weighings", func(db *gorm.DB) *gorm.DB { return db.Order(entryOrder) }).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, mapError(err, fish.ErrFishNotFound)
	}
	return withOwnedWeighings(&m), nil
}

func (r *fishRepository) List(ctx context.Context) ([]*fish.Fish, error) {
	var models []Fish
	err := r.db.WithContext(ctx).Order("unit_price, name").Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*fish.Fish, len(models))
	for i := range models {
		out[i] = toDomainFish(&models[i], nil)
	}
	return out, nil
}

func (r *fishRepository) ListWithWeighings(ctx context.Context) ([]*fish.Fish, error) {
	var models []Fish
	err := r.db.WithContext(ctx).
		Preload("Weighings", func(db *gorm.DB) *gorm.DB { return db.Order(entryOrder) }).
		Order("unit_price, name").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*fish.Fish, len(models))
	for i := range models {
		out[i] = withOwnedWeighings(&models[i])
	}
	return out, nil
}

func (r *fishRepository) Update(ctx context.Context, f *fish.Fish) error {
	m := toFishModel(f)
	m.UpdatedAt = time.Now().UTC()
	// Save with explicit column list so a nil photo clears the blob.
	return r.db.WithContext(ctx).Model(&Fish{ID: m.ID}).
		Select("Name", "UnitPrice", "Photo", "HasTare", "UpdatedAt").
		Updates(m).Error
}

func (r *fishRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Fish{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func withOwnedWeighings(m *Fish) *fish.Fish {
	weighings := make([]*fish.Weighing, len(m.Weighings))
	for i := range m.Weighings {
		weighings[i] = toDomainWeighing(&m.Weighings[i])
	}
	return toDomainFish(m, weighings)
}
