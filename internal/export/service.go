package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nimali/invoice-wizard/internal/entity"
	"github.com/nimali/invoice-wizard/internal/repository"
)

// Service is a tiny façade over the line-item repository that produces
// spreadsheet bytes for exports. Column set is the superset across all
// suppliers; a field a supplier doesn't produce stays an empty cell.
type Service struct {
	itemsRepo repository.LineItemRepository
	sheetName string
	logger    *slog.Logger
}

func NewService(itemsRepo repository.LineItemRepository, sheetName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sheetName == "" {
		sheetName = "Line Items"
	}
	return &Service{itemsRepo: itemsRepo, sheetName: sheetName, logger: logger}
}

var columns = []string{
	"Filename",
	"Supplier",
	"Invoice No",
	"Date",
	"Total",
	"Description",
	"Pack Size",
	"Qty",
	"Unit Price",
	"VAT Code",
	"VAT Rate",
	"Net Price",
	"Net Amount",
	"VAT Amount",
	"Product Code",
	"Line Total",
}

// ExportXLSX returns an XLSX workbook (as bytes) with every stored record,
// in document-processing order then item order.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.itemsRepo.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(s.sheetName); index == -1 {
		if _, err := f.NewSheet(s.sheetName); err != nil {
			return nil, err
		}
		_ = f.DeleteSheet("Sheet1")
	}
	activeIndex, _ := f.GetSheetIndex(s.sheetName)
	f.SetActiveSheet(activeIndex)

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(s.sheetName, cell, h)
	}

	row := 2
	for _, r := range recs {
		values := recordValues(r)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(s.sheetName, cell, v)
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(s.sheetName, "A", "A", 32) // filename
	_ = f.SetColWidth(s.sheetName, "B", "B", 12) // supplier
	_ = f.SetColWidth(s.sheetName, "C", "E", 14) // header fields
	_ = f.SetColWidth(s.sheetName, "F", "F", 42) // description
	_ = f.SetColWidth(s.sheetName, "G", "P", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export xlsx ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// recordValues returns r's cell values in the columns order.
func recordValues(r entity.Record) []string {
	return []string{
		r.Filename,
		r.Supplier,
		str(r.InvoiceNo),
		str(r.Date),
		str(r.Total),
		r.Description,
		str(r.PackSize),
		str(r.Qty),
		str(r.UnitPrice),
		str(r.VATCode),
		str(r.VATRate),
		str(r.NetPrice),
		str(r.NetAmount),
		str(r.VATAmount),
		str(r.ProductCode),
		str(r.LineTotal),
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
