package supplier

import (
	"regexp"
	"strings"

	"github.com/nimali/invoice-wizard/internal/entity"
)

var (
	coloramaInvoiceNoRe = regexp.MustCompile(`(?i)Invoice No : (\S+)`)
	coloramaDateRe      = regexp.MustCompile(`(?i)Order Date : (\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	// Some extractions carry a mis-decoded pound sign ("Â£"); accept both.
	coloramaTotalRe = regexp.MustCompile(`(?i)Total:\s*(?:Â£|£)\s*(\d+\.\d{2})`)

	// One item per physical line: description, pack size, quantity, unit
	// price, VAT code, net amount, anchored to the end of the line.
	coloramaLineRe = regexp.MustCompile(`^([A-Za-z0-9%()\-/.,\s]+?)\s+(\d+\s*[a-zA-Z]*)\s+(\d+)\s+(\d+(?:\.\d+)?)\s+([A-Za-z0-9\-]+)\s+(\d+(?:\.\d+)?)$`)
)

type coloramaParser struct{}

func (coloramaParser) Header(text string) entity.InvoiceHeader {
	return entity.InvoiceHeader{
		InvoiceNo: firstGroup(coloramaInvoiceNoRe, text),
		Date:      firstGroup(coloramaDateRe, text),
		Total:     firstGroup(coloramaTotalRe, text),
	}
}

func (coloramaParser) LineItems(text string) []entity.LineItem {
	var items []entity.LineItem
	for _, line := range strings.Split(text, "\n") {
		m := coloramaLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			// headers, totals and page footers simply don't match
			continue
		}
		items = append(items, entity.LineItem{
			Description: m[1],
			PackSize:    entity.Str(m[2]),
			Qty:         entity.Str(m[3]),
			UnitPrice:   entity.Str(m[4]),
			VATCode:     entity.Str(m[5]),
			NetAmount:   entity.Str(m[6]),
		})
	}
	return items
}
