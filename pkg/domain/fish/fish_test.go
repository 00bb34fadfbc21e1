package fish_test

import (
	"io"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thevuong/harvest/pkg/domain/fish"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	os.Exit(m.Run())
}

func TestBuildFish(t *testing.T) {
	t.Parallel()
	f, err := fish.New().WithName("Trout").WithUnitPrice(45000).Build()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, f.ID, "fish should get a generated id")
	assert.Equal(t, "Trout", f.Name)
	assert.Equal(t, 45000.0, f.UnitPrice)
	assert.False(t, f.HasTare)
	assert.Nil(t, f.Weighings)
}

func TestBuildFish_Invalid(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		_, err := fish.New().WithUnitPrice(100).Build()
		assert.ErrorIs(t, err, fish.ErrNameRequired)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := fish.New().WithName("Carp").WithUnitPrice(-1).Build()
		assert.ErrorIs(t, err, fish.ErrNegativePrice)
	})
}

func TestBuildFish_WithPhoto(t *testing.T) {
	t.Parallel()
	photo := []byte{0xff, 0xd8, 0xff}
	f, err := fish.New().WithName("Carp").WithUnitPrice(50000).WithPhoto(photo).Build()
	require.NoError(t, err)
	assert.Equal(t, photo, f.Photo)
}
