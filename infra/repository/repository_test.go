package repository_test

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	infrarepo "github.com/thevuong/harvest/infra/repository"
	"github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/repository"
	"gorm.io/gorm"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infrarepo.Open(filepath.Join(t.TempDir(), "harvest.db"), slog.Default())
	require.NoError(t, err)
	return db
}

func mustBuildFish(t *testing.T, name string, price float64) *fish.Fish {
	t.Helper()
	f, err := fish.New().WithName(name).WithUnitPrice(price).Build()
	require.NoError(t, err)
	return f
}

func createFish(t *testing.T, uow repository.UnitOfWork, f *fish.Fish) {
	t.Helper()
	require.NoError(t, uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		return repo.Create(context.Background(), f)
	}))
}

func createWeighing(t *testing.T, uow repository.UnitOfWork, w *fish.Weighing) {
	t.Helper()
	require.NoError(t, uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		repo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		return repo.Create(context.Background(), w)
	}))
}

func TestOpen_IsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "harvest.db")

	db1, err := infrarepo.Open(path, slog.Default())
	require.NoError(t, err)

	uow := infrarepo.NewUoW(db1)
	f := mustBuildFish(t, "Carp", 50000)
	createFish(t, uow, f)

	// second open on the same file: migration re-runs as a no-op, data survives
	db2, err := infrarepo.Open(path, slog.Default())
	require.NoError(t, err)

	require.NoError(t, infrarepo.NewUoW(db2).Do(context.Background(), func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		got, err := repo.Get(context.Background(), f.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, "Carp", got.Name)
		return nil
	}))
}

func TestUoW_RepositoryOutsideTransaction(t *testing.T) {
	t.Parallel()
	uow := infrarepo.NewUoW(openTestStore(t))

	_, err := uow.FishRepository()
	assert.ErrorIs(t, err, infrarepo.ErrNoTransaction)
	_, err = uow.WeighingRepository()
	assert.ErrorIs(t, err, infrarepo.ErrNoTransaction)
}

func TestUoW_RollbackLeavesNoPartialEffect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := infrarepo.NewUoW(openTestStore(t))

	f := mustBuildFish(t, "Trout", 45000)
	boom := errors.New("boom")

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, f); err != nil {
			return err
		}
		return boom // blow up after the insert
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		_, err = repo.Get(ctx, f.ID)
		assert.ErrorIs(t, err, fish.ErrFishNotFound, "rolled-back insert must not be visible")
		return nil
	}))
}

func TestFishRepository_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := infrarepo.NewUoW(openTestStore(t))

	f := mustBuildFish(t, "Carp", 50000)
	f.Photo = []byte{1, 2, 3}
	createFish(t, uow, f)

	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}

		got, err := repo.Get(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, f.ID, got.ID)
		assert.Equal(t, "Carp", got.Name)
		assert.Equal(t, 50000.0, got.UnitPrice)
		assert.Equal(t, []byte{1, 2, 3}, got.Photo)

		got.Name = "Grass carp"
		got.UnitPrice = 52000
		got.Photo = nil
		require.NoError(t, repo.Update(ctx, got))

		updated, err := repo.Get(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grass carp", updated.Name)
		assert.Equal(t, 52000.0, updated.UnitPrice)
		assert.Empty(t, updated.Photo, "explicit column update clears the photo")

		deleted, err := repo.Delete(ctx, f.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)

		deleted, err = repo.Delete(ctx, f.ID)
		require.NoError(t, err)
		assert.Zero(t, deleted, "deleting an absent fish affects no rows")

		_, err = repo.Get(ctx, f.ID)
		assert.ErrorIs(t, err, fish.ErrFishNotFound)
		return nil
	}))
}

func TestFishRepository_ListSortsByPrice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := infrarepo.NewUoW(openTestStore(t))

	for _, seed := range []struct {
		name  string
		price float64
	}{
		{"Snakehead", 80000},
		{"Carp", 50000},
		{"Tilapia", 35000},
	} {
		createFish(t, uow, mustBuildFish(t, seed.name, seed.price))
	}

	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Tilapia", list[0].Name)
		assert.Equal(t, "Carp", list[1].Name)
		assert.Equal(t, "Snakehead", list[2].Name)
		return nil
	}))
}

func TestWeighingRepository_EntryOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := infrarepo.NewUoW(openTestStore(t))

	f := mustBuildFish(t, "Trout", 45000)
	createFish(t, uow, f)

	base := time.Now().UTC()
	grosses := []float64{10, 8, 12}
	for i, gross := range grosses {
		createWeighing(t, uow, &fish.Weighing{
			ID:           uuid.New(),
			FishID:       f.ID,
			Gross:        gross,
			PriceAtEntry: 45000,
			CreatedAt:    base.Add(time.Duration(i) * time.Millisecond),
		})
	}

	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		list, err := repo.ListByFish(ctx, f.ID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i, w := range list {
			assert.Equal(t, grosses[i], w.Gross, "weighings keep chronological entry order")
		}
		return nil
	}))
}

func TestWeighingRepository_DeleteBatchSkipsAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := infrarepo.NewUoW(openTestStore(t))

	f := mustBuildFish(t, "Carp", 50000)
	createFish(t, uow, f)

	w1 := &fish.Weighing{ID: uuid.New(), FishID: f.ID, Gross: 10, PriceAtEntry: 50000, CreatedAt: time.Now().UTC()}
	w2 := &fish.Weighing{ID: uuid.New(), FishID: f.ID, Gross: 8, PriceAtEntry: 50000, CreatedAt: time.Now().UTC()}
	createWeighing(t, uow, w1)
	createWeighing(t, uow, w2)

	ghost := uuid.New()
	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		deleted, err := repo.DeleteBatch(ctx, []uuid.UUID{w1.ID, ghost})
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{w1.ID}, deleted)

		remaining, err := repo.ListByFish(ctx, f.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, w2.ID, remaining[0].ID)
		return nil
	}))
}

func TestCascadeDeleteWithinOneTransaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := infrarepo.NewUoW(openTestStore(t))

	f := mustBuildFish(t, "Trout", 45000)
	other := mustBuildFish(t, "Carp", 50000)
	createFish(t, uow, f)
	createFish(t, uow, other)

	for i := 0; i < 3; i++ {
		createWeighing(t, uow, &fish.Weighing{ID: uuid.New(), FishID: f.ID, Gross: 5, PriceAtEntry: 45000, CreatedAt: time.Now().UTC()})
	}
	kept := &fish.Weighing{ID: uuid.New(), FishID: other.ID, Gross: 7, PriceAtEntry: 50000, CreatedAt: time.Now().UTC()}
	createWeighing(t, uow, kept)

	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		fishRepo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		weighRepo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		cascaded, err := weighRepo.DeleteByFish(ctx, f.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 3, cascaded)
		_, err = fishRepo.Delete(ctx, f.ID)
		return err
	}))

	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		weighRepo, err := uow.WeighingRepository()
		if err != nil {
			return err
		}
		orphans, err := weighRepo.ListByFish(ctx, f.ID)
		require.NoError(t, err)
		assert.Empty(t, orphans, "no weighing of a deleted fish remains queryable")

		others, err := weighRepo.ListByFish(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, others, 1, "other fish keep their weighings")
		return nil
	}))
}

func TestFishRepository_ListWithWeighings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := infrarepo.NewUoW(openTestStore(t))

	loaded := mustBuildFish(t, "Carp", 50000)
	empty := mustBuildFish(t, "Tilapia", 35000)
	createFish(t, uow, loaded)
	createFish(t, uow, empty)
	createWeighing(t, uow, &fish.Weighing{ID: uuid.New(), FishID: loaded.ID, Gross: 10, Tare: 2, PriceAtEntry: 50000, CreatedAt: time.Now().UTC()})

	require.NoError(t, uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		list, err := repo.ListWithWeighings(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)

		assert.Equal(t, "Tilapia", list[0].Name)
		assert.Empty(t, list[0].Weighings, "fish without weighings are still listed")
		assert.Equal(t, "Carp", list[1].Name)
		require.Len(t, list[1].Weighings, 1)
		assert.Equal(t, 8.0, list[1].Weighings[0].Net())
		return nil
	}))
}
