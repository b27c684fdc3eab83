package supplier

import (
	"regexp"

	"github.com/nimali/invoice-wizard/constants"
	"github.com/nimali/invoice-wizard/internal/entity"
)

// Parser extracts the header fields and line items for one supplier's layout.
// Implementations are total over any string input: an unmatched pattern is an
// absent field or an omitted item, never an error.
type Parser interface {
	Header(text string) entity.InvoiceHeader
	LineItems(text string) []entity.LineItem
}

// parsers is the closed set of supplier variants. Adding a supplier means one
// new entry here plus its Header/LineItems implementation.
var parsers = map[constants.Supplier]Parser{
	constants.Colorama: coloramaParser{},
	constants.AAH:      aahParser{},
	constants.Alliance: allianceParser{},
	constants.Lexon:    lexonParser{},
}

// ForSupplier returns the parser for s. Unknown, and any value outside the
// enumeration, gets a parser that yields the all-absent header and no items.
func ForSupplier(s constants.Supplier) Parser {
	if p, ok := parsers[s]; ok {
		return p
	}
	return emptyParser{}
}

type emptyParser struct{}

func (emptyParser) Header(string) entity.InvoiceHeader { return entity.InvoiceHeader{} }
func (emptyParser) LineItems(string) []entity.LineItem { return nil }

// firstGroup returns re's first capture group in text, or nil when unmatched.
func firstGroup(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return entity.Str(m[1])
}

// firstMatch returns re's whole leftmost match in text, or nil when unmatched.
func firstMatch(re *regexp.Regexp, text string) *string {
	m := re.FindString(text)
	if m == "" {
		return nil
	}
	return entity.Str(m)
}
