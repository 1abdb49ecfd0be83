package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/kahawa-labs/beanmarket/internal/repository"
)

// Service is a tiny façade over the listing repository that produces XLSX
// bytes for catalogue exports.
type Service struct {
	listings repository.ListingRepository
	logger   *slog.Logger
}

func NewService(listings repository.ListingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{listings: listings, logger: logger}
}

// ExportListingsXLSX returns an XLSX workbook (as bytes) with every listing
// held for the supplier, ordered by creation time.
func (s *Service) ExportListingsXLSX(ctx context.Context, supplierID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.listings.ListListings(ctx, supplierID, false)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Listings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Origin",
		"Region",
		"Process",
		"Variety",
		"Altitude",
		"Score",
		"Price",
		"Currency",
		"Tasting Notes",
		"Available",
		"Added",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Name)
		write(2, strOr(r.Origin))
		write(3, strOr(r.Region))
		write(4, strOr(r.Process))
		write(5, strOr(r.Variety))
		write(6, strOr(r.Altitude))
		if r.Score != nil {
			write(7, *r.Score)
		}
		if r.Price != nil {
			write(8, fmt.Sprintf("%.2f", *r.Price))
		}
		write(9, strOr(r.CurrencyCode))
		write(10, truncate(strOr(r.TastingNotes), 140))
		if r.Available {
			write(11, "yes")
		} else {
			write(11, "no")
		}
		if !r.CreatedAt.IsZero() {
			write(12, r.CreatedAt.UTC().Format("2006-01-02"))
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // name
	_ = f.SetColWidth(sheet, "B", "C", 18) // origin/region
	_ = f.SetColWidth(sheet, "D", "E", 16) // process/variety
	_ = f.SetColWidth(sheet, "G", "I", 10) // score/price/currency
	_ = f.SetColWidth(sheet, "J", "J", 48) // notes
	_ = f.SetColWidth(sheet, "L", "L", 12) // date

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"supplier_id", supplierID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
