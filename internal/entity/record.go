package entity

// Record is the flat output row produced by the assembler: one line item plus
// the supplier identity, header fields and source filename of the document it
// came from. The csv tags drive the exported column names; nil pointers are
// rendered as empty cells, keeping absence distinct from placeholder values
// inside the pipeline itself.
type Record struct {
	Filename    string  `json:"filename" csv:"Filename"`
	Supplier    string  `json:"supplier" csv:"Supplier"`
	InvoiceNo   *string `json:"invoice_no,omitempty" csv:"Invoice No"`
	Date        *string `json:"date,omitempty" csv:"Date"`
	Total       *string `json:"total,omitempty" csv:"Total"`
	Description string  `json:"description" csv:"Description"`
	PackSize    *string `json:"pack_size,omitempty" csv:"Pack Size"`
	Qty         *string `json:"qty,omitempty" csv:"Qty"`
	UnitPrice   *string `json:"unit_price,omitempty" csv:"Unit Price"`
	VATCode     *string `json:"vat_code,omitempty" csv:"VAT Code"`
	VATRate     *string `json:"vat_rate,omitempty" csv:"VAT Rate"`
	NetPrice    *string `json:"net_price,omitempty" csv:"Net Price"`
	NetAmount   *string `json:"net_amount,omitempty" csv:"Net Amount"`
	VATAmount   *string `json:"vat_amount,omitempty" csv:"VAT Amount"`
	ProductCode *string `json:"product_code,omitempty" csv:"Product Code"`
	LineTotal   *string `json:"line_total,omitempty" csv:"Line Total"`
}
