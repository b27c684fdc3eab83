package entity

// InvoiceHeader holds the document-level fields pulled from an invoice.
// Each field is independently optional: nil means the pattern did not match,
// never an empty string.
type InvoiceHeader struct {
	InvoiceNo *string `json:"invoice_no,omitempty"`
	Date      *string `json:"date,omitempty"`
	Total     *string `json:"total,omitempty"`
}

// LineItem is one purchased product entry from the body of an invoice.
// The field set varies by supplier; Description is always set when an item
// exists, everything else is nil unless that supplier's tokenizer produces it.
type LineItem struct {
	Description string  `json:"description"`
	PackSize    *string `json:"pack_size,omitempty"`
	Qty         *string `json:"qty,omitempty"`
	UnitPrice   *string `json:"unit_price,omitempty"`
	VATCode     *string `json:"vat_code,omitempty"`
	VATRate     *string `json:"vat_rate,omitempty"`
	NetPrice    *string `json:"net_price,omitempty"`
	NetAmount   *string `json:"net_amount,omitempty"`
	VATAmount   *string `json:"vat_amount,omitempty"`
	ProductCode *string `json:"product_code,omitempty"`
	LineTotal   *string `json:"line_total,omitempty"`
}

// Str returns a pointer to s, for building optional fields.
func Str(s string) *string { return &s }
