package core

import (
	"path/filepath"

	"github.com/nimali/invoice-wizard/constants"
	"github.com/nimali/invoice-wizard/internal/entity"
)

// Assemble merges the supplier identity, header fields and source filename
// onto every line item from one document. Header fields are carried verbatim,
// including absence. Item order is preserved; N items in means N records out.
func Assemble(sourcePath string, s constants.Supplier, header entity.InvoiceHeader, items []entity.LineItem) []entity.Record {
	if len(items) == 0 {
		return nil
	}
	filename := filepath.Base(sourcePath)
	records := make([]entity.Record, 0, len(items))
	for _, item := range items {
		records = append(records, entity.Record{
			Filename:    filename,
			Supplier:    string(s),
			InvoiceNo:   header.InvoiceNo,
			Date:        header.Date,
			Total:       header.Total,
			Description: item.Description,
			PackSize:    item.PackSize,
			Qty:         item.Qty,
			UnitPrice:   item.UnitPrice,
			VATCode:     item.VATCode,
			VATRate:     item.VATRate,
			NetPrice:    item.NetPrice,
			NetAmount:   item.NetAmount,
			VATAmount:   item.VATAmount,
			ProductCode: item.ProductCode,
			LineTotal:   item.LineTotal,
		})
	}
	return records
}
