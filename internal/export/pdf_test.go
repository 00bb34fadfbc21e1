package export_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thevuong/harvest/internal/export"
	"github.com/thevuong/harvest/pkg/dto"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	os.Exit(m.Run())
}

func sampleSummary() *dto.Summary {
	return &dto.Summary{
		Fish: []dto.FishSummary{
			{
				FishID:      uuid.New(),
				Name:        "Trout",
				UnitPrice:   45000,
				Records:     2,
				TotalGross:  18,
				TotalTare:   3,
				TotalNet:    15,
				TotalAmount: 675000,
			},
			{FishID: uuid.New(), Name: "Anchovy", UnitPrice: 20000},
		},
		GrandTotal: 675000,
	}
}

func TestExportWritesPDF(t *testing.T) {
	dir := t.TempDir()
	exporter := export.NewPDFExporter(dir, "VND", slog.Default())

	path, err := exporter.Export(context.Background(), sampleSummary())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "not a pdf header")

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestExportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	exporter := export.NewPDFExporter(dir, "VND", slog.Default())

	path, err := exporter.Export(context.Background(), sampleSummary())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExportPaginatesLongSummaries(t *testing.T) {
	summary := &dto.Summary{}
	for i := 0; i < 60; i++ {
		summary.Fish = append(summary.Fish, dto.FishSummary{
			FishID:      uuid.New(),
			Name:        fmt.Sprintf("Fish %02d", i),
			UnitPrice:   1000,
			Records:     1,
			TotalGross:  10,
			TotalNet:    10,
			TotalAmount: 10000,
		})
		summary.GrandTotal += 10000
	}

	exporter := export.NewPDFExporter(t.TempDir(), "VND", slog.Default())
	path, err := exporter.Export(context.Background(), summary)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// 60 blocks cannot fit one A4 page; the document must carry
	// multiple page objects ("/Type /Pages" accounts for one match).
	assert.Greater(t, strings.Count(string(data), "/Type /Page"), 2)
}

func TestExportCancelledContext(t *testing.T) {
	exporter := export.NewPDFExporter(t.TempDir(), "VND", slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exporter.Export(ctx, sampleSummary())
	assert.ErrorIs(t, err, context.Canceled)
}
