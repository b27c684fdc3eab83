package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/nimali/invoice-wizard/constants"
)

// Document represents one ingested invoice file for data transfer between layers.
// Supplier and header fields are filled in once the document has been parsed.
type Document struct {
	ID          uuid.UUID          `json:"id"`
	Filename    string             `json:"filename"`
	SourcePath  string             `json:"source_path"`
	FileExt     string             `json:"file_ext"`
	FileSize    int                `json:"file_size"`
	ContentHash []byte             `json:"content_hash"`
	Supplier    constants.Supplier `json:"supplier"`
	InvoiceNo   *string            `json:"invoice_no,omitempty"`
	Date        *string            `json:"date,omitempty"`
	Total       *string            `json:"total,omitempty"`
	IngestedAt  time.Time          `json:"ingested_at"`
	ParsedAt    *time.Time         `json:"parsed_at,omitempty"`
}

// RawDocument is the transient pairing of a document with its extracted text.
// It exists for one processing pass and is never persisted.
type RawDocument struct {
	DocumentID uuid.UUID
	Filename   string
	Text       string
}
