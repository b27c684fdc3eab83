package supplier

import (
	"github.com/nimali/invoice-wizard/internal/entity"
)

// lexonParser is a stub. Lexon invoices are recognized by the classifier but
// no header or line-item rules for their layout are known yet, so parsing
// yields the all-absent header and no items rather than a guessed pattern.
type lexonParser struct{}

func (lexonParser) Header(string) entity.InvoiceHeader { return entity.InvoiceHeader{} }

func (lexonParser) LineItems(string) []entity.LineItem { return nil }
