package report_test

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	infraeventbus "github.com/thevuong/harvest/infra/eventbus"
	infrarepo "github.com/thevuong/harvest/infra/repository"
	infratare "github.com/thevuong/harvest/infra/tare"
	"github.com/thevuong/harvest/pkg/dto"
	fishservice "github.com/thevuong/harvest/pkg/service/fish"
	reportservice "github.com/thevuong/harvest/pkg/service/report"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	os.Exit(m.Run())
}

type stubExporter struct {
	summary *dto.Summary
	path    string
	err     error
}

func (e *stubExporter) Export(_ context.Context, summary *dto.Summary) (string, error) {
	e.summary = summary
	return e.path, e.err
}

type fixture struct {
	fish     *fishservice.Service
	report   *reportservice.Service
	exporter *stubExporter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	db, err := infrarepo.Open(filepath.Join(dir, "harvest.db"), slog.Default())
	require.NoError(t, err)

	uow := infrarepo.NewUoW(db)
	bus := infraeventbus.NewWithMemory(slog.Default())
	tares := infratare.NewFileRegistry(filepath.Join(dir, "tares.json"), slog.Default())
	exporter := &stubExporter{path: filepath.Join(dir, "summary.pdf")}
	return &fixture{
		fish:     fishservice.NewService(uow, bus, tares, slog.Default()),
		report:   reportservice.NewService(uow, exporter, slog.Default()),
		exporter: exporter,
	}
}

func ptr[T any](v T) *T { return &v }

func TestSummarizeTotals(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	trout, err := fx.fish.CreateFish(ctx, dto.FishCreate{Name: "Trout", UnitPrice: 45000})
	require.NoError(t, err)
	_, err = fx.fish.RecordWeighing(ctx, dto.WeighingCreate{FishID: trout.ID, Gross: 10, SubtractTare: true, Tare: ptr(2.0)})
	require.NoError(t, err)
	_, err = fx.fish.RecordWeighing(ctx, dto.WeighingCreate{FishID: trout.ID, Gross: 8, SubtractTare: true, Tare: ptr(1.0)})
	require.NoError(t, err)

	summary, err := fx.report.Summarize(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Fish, 1)

	entry := summary.Fish[0]
	assert.Equal(t, "Trout", entry.Name)
	assert.Equal(t, 2, entry.Records)
	assert.Equal(t, 18.0, entry.TotalGross)
	assert.Equal(t, 3.0, entry.TotalTare)
	assert.Equal(t, 15.0, entry.TotalNet)
	assert.Equal(t, 675000.0, entry.TotalAmount)
	assert.Equal(t, 675000.0, summary.GrandTotal)
}

func TestSummarizeUsesCurrentPrice(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	trout, err := fx.fish.CreateFish(ctx, dto.FishCreate{Name: "Trout", UnitPrice: 45000})
	require.NoError(t, err)
	_, err = fx.fish.RecordWeighing(ctx, dto.WeighingCreate{FishID: trout.ID, Gross: 10, SubtractTare: true, Tare: ptr(2.0)})
	require.NoError(t, err)
	_, err = fx.fish.RecordWeighing(ctx, dto.WeighingCreate{FishID: trout.ID, Gross: 8, SubtractTare: true, Tare: ptr(1.0)})
	require.NoError(t, err)

	_, err = fx.fish.UpdateFish(ctx, trout.ID, dto.FishUpdate{UnitPrice: ptr(50000.0)})
	require.NoError(t, err)

	// The summary follows the new price while the individual records
	// keep their snapshotted one.
	summary, err := fx.report.Summarize(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Fish, 1)
	assert.Equal(t, 750000.0, summary.Fish[0].TotalAmount)

	records, err := fx.fish.ListWeighings(ctx, trout.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 360000.0, records[0].Amount)
	assert.Equal(t, 315000.0, records[1].Amount)
}

func TestSummarizeIncludesZeroRecordFish(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.fish.CreateFish(ctx, dto.FishCreate{Name: "Anchovy", UnitPrice: 20000})
	require.NoError(t, err)

	summary, err := fx.report.Summarize(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Fish, 1)

	entry := summary.Fish[0]
	assert.Zero(t, entry.Records)
	assert.Zero(t, entry.TotalGross)
	assert.Zero(t, entry.TotalTare)
	assert.Zero(t, entry.TotalNet)
	assert.Zero(t, entry.TotalAmount)
	assert.Zero(t, summary.GrandTotal)
}

func TestSummarizeNetClampedPerRecord(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	carp, err := fx.fish.CreateFish(ctx, dto.FishCreate{Name: "Carp", UnitPrice: 1000})
	require.NoError(t, err)
	// Tare above gross clamps that record's net to zero instead of
	// eating into the other records.
	_, err = fx.fish.RecordWeighing(ctx, dto.WeighingCreate{FishID: carp.ID, Gross: 1, SubtractTare: true, Tare: ptr(5.0)})
	require.NoError(t, err)
	_, err = fx.fish.RecordWeighing(ctx, dto.WeighingCreate{FishID: carp.ID, Gross: 10, SubtractTare: true, Tare: ptr(2.0)})
	require.NoError(t, err)

	summary, err := fx.report.Summarize(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Fish, 1)
	assert.Equal(t, 8.0, summary.Fish[0].TotalNet)
}

func TestExportHandsSummaryToExporter(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	trout, err := fx.fish.CreateFish(ctx, dto.FishCreate{Name: "Trout", UnitPrice: 45000})
	require.NoError(t, err)
	_, err = fx.fish.RecordWeighing(ctx, dto.WeighingCreate{FishID: trout.ID, Gross: 10, SubtractTare: true, Tare: ptr(2.0)})
	require.NoError(t, err)

	result, err := fx.report.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, fx.exporter.path, result.Path)
	require.NotNil(t, fx.exporter.summary)
	assert.Equal(t, 360000.0, fx.exporter.summary.GrandTotal)
}

func TestExportPropagatesExporterError(t *testing.T) {
	fx := newFixture(t)
	fx.exporter.err = os.ErrPermission

	_, err := fx.report.Export(context.Background())
	assert.ErrorIs(t, err, os.ErrPermission)
}
