// Package report provides the purchase summary: per-fish totals over
// all recorded weighings, the grand total, and the export of the
// summary as a shareable document.
package report

import (
	"context"
	"log/slog"

	domainfish "github.com/thevuong/harvest/pkg/domain/fish"
	"github.com/thevuong/harvest/pkg/dto"
	"github.com/thevuong/harvest/pkg/repository"
)

// Exporter renders a summary into a document file and returns its path.
type Exporter interface {
	Export(ctx context.Context, summary *dto.Summary) (string, error)
}

// Service computes the purchase summary and drives the exporter.
type Service struct {
	uow      repository.UnitOfWork
	exporter Exporter
	logger   *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(uow repository.UnitOfWork, exporter Exporter, logger *slog.Logger) *Service {
	return &Service{
		uow:      uow,
		exporter: exporter,
		logger:   logger.With("service", "report"),
	}
}

// Summarize totals every fish's weighings. Net weight is recomputed
// per record rather than summed from stored values, and the per-fish
// amount is priced at the fish's current unit price. Fish without
// records are listed with zero totals.
func (s *Service) Summarize(ctx context.Context) (*dto.Summary, error) {
	var all []*domainfish.Fish
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.FishRepository()
		if err != nil {
			return err
		}
		all, err = repo.ListWithWeighings(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("summarize failed", "error", err)
		return nil, err
	}

	summary := &dto.Summary{Fish: make([]dto.FishSummary, 0, len(all))}
	for _, f := range all {
		entry := dto.FishSummary{
			FishID:    f.ID,
			Name:      f.Name,
			UnitPrice: f.UnitPrice,
			Records:   len(f.Weighings),
		}
		for _, w := range f.Weighings {
			entry.TotalGross += w.Gross
			entry.TotalTare += w.Tare
			entry.TotalNet += domainfish.NetWeight(w.Gross, w.Tare)
		}
		entry.TotalAmount = entry.TotalNet * f.UnitPrice
		summary.GrandTotal += entry.TotalAmount
		summary.Fish = append(summary.Fish, entry)
	}
	return summary, nil
}

// Export renders the current summary to a document file and returns
// where it was written.
func (s *Service) Export(ctx context.Context) (*dto.ExportResult, error) {
	summary, err := s.Summarize(ctx)
	if err != nil {
		return nil, err
	}
	path, err := s.exporter.Export(ctx, summary)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, err
	}
	s.logger.Info("summary exported", "path", path, "fish", len(summary.Fish))
	return &dto.ExportResult{Path: path}, nil
}
