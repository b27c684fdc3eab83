package supplier

import (
	"regexp"

	"github.com/nimali/invoice-wizard/internal/entity"
)

var (
	aahInvoiceNoRe = regexp.MustCompile(`(?i)Invoice\s+Ref\s*[:\-]?\s*([A-Za-z0-9]+)`)
	aahDateRe      = regexp.MustCompile(`(?i)Invoice\s+Date\s*[:\-]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	aahTotalRe     = regexp.MustCompile(`(?i)Total amt due \(GBP\)\s*:?\s*([\d,]+\.\d{2})`)

	// One pattern scanned across the whole text, not per line: product code,
	// pack size, description, quantity, unit price, net price, VAT rate and
	// line total, each separated by whitespace.
	aahItemRe = regexp.MustCompile(`([A-Z]{3}\d{4,5}[A-Z]?)\s+(\d{1,3}[A-Za-z]?)\s+([A-Za-z0-9][A-Za-z0-9%()\-/., ]*?)\s+(\d+)\s+(\d+\.\d{2})\s+(\d+\.\d{2})\s+(\d+(?:\.\d+)?%)\s+(\d+\.\d{2})`)
)

type aahParser struct{}

func (aahParser) Header(text string) entity.InvoiceHeader {
	return entity.InvoiceHeader{
		InvoiceNo: firstGroup(aahInvoiceNoRe, text),
		Date:      firstGroup(aahDateRe, text),
		Total:     firstGroup(aahTotalRe, text),
	}
}

func (aahParser) LineItems(text string) []entity.LineItem {
	matches := aahItemRe.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}
	items := make([]entity.LineItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, entity.LineItem{
			ProductCode: entity.Str(m[1]),
			PackSize:    entity.Str(m[2]),
			Description: m[3],
			Qty:         entity.Str(m[4]),
			UnitPrice:   entity.Str(m[5]),
			NetPrice:    entity.Str(m[6]),
			VATRate:     entity.Str(m[7]),
			LineTotal:   entity.Str(m[8]),
		})
	}
	return items
}
