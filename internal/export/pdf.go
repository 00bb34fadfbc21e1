// Package export renders the purchase summary as an A4 PDF: a centered
// title, one block per fish with its totals, and a trailing grand-total
// line. Pagination is automatic once the cursor passes the printable
// height.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/thevuong/harvest/pkg/currency"
	"github.com/thevuong/harvest/pkg/dto"
)

const (
	titleText   = "Fish Purchase Summary"
	pageMargin  = 15.0 // mm
	lineHeight  = 7.0  // mm
	titleSize   = 16.0
	headingSize = 12.0
	bodySize    = 11.0
)

// PDFExporter writes summary PDFs into a fixed export directory.
type PDFExporter struct {
	dir      string
	currency string
	logger   *slog.Logger
}

// NewPDFExporter creates an exporter writing into dir, with amounts
// rendered in the given currency code.
func NewPDFExporter(dir, currencyCode string, logger *slog.Logger) *PDFExporter {
	if currencyCode == "" {
		currencyCode = currency.DefaultCurrency
	}
	return &PDFExporter{
		dir:      dir,
		currency: currencyCode,
		logger:   logger.With("exporter", "pdf"),
	}
}

// Export renders the summary and writes it atomically into the export
// directory. The generated file path is returned so the caller can
// hand it on.
func (e *PDFExporter) Export(ctx context.Context, summary *dto.Summary) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	pdf := e.render(summary)
	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("render summary pdf: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, "summary-*.pdf.tmp")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write summary pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close export file: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("summary-%s.pdf", time.Now().UTC().Format("20060102-150405")))
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("finalize export file: %w", err)
	}

	e.logger.Debug("summary pdf written", "path", path, "fish", len(summary.Fish))
	return path, nil
}

func (e *PDFExporter) render(summary *dto.Summary) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(titleText, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core fonts only cover Latin-1, so non-Latin fish names are
	// transliterated best-effort rather than dropped.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, lineHeight+3, tr(titleText), "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight / 2)

	for _, fish := range summary.Fish {
		pdf.SetFont("Helvetica", "B", headingSize)
		pdf.CellFormat(0, lineHeight, tr(fish.Name), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", bodySize)
		lines := []string{
			fmt.Sprintf("Total gross weight: %.2f kg", fish.TotalGross),
			fmt.Sprintf("Total tare: %.2f kg", fish.TotalTare),
			fmt.Sprintf("Total net weight: %.2f kg", fish.TotalNet),
			fmt.Sprintf("Unit price: %s", currency.FormatCode(fish.UnitPrice, e.currency)),
			fmt.Sprintf("Amount: %s", currency.FormatCode(fish.TotalAmount, e.currency)),
		}
		for _, line := range lines {
			pdf.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
		}

		pdf.Ln(2)
		left, _, right, _ := pdf.GetMargins()
		width, _ := pdf.GetPageSize()
		y := pdf.GetY()
		pdf.SetDrawColor(180, 180, 180)
		pdf.Line(left, y, width-right, y)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", headingSize)
	grand := fmt.Sprintf("Grand total: %s", currency.FormatCode(summary.GrandTotal, e.currency))
	pdf.CellFormat(0, lineHeight+2, tr(grand), "", 1, "L", false, 0, "")

	return pdf
}
