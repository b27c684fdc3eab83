package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nimali/invoice-wizard/constants"
)

// TextFileExtractor reads plain-text documents verbatim. Mostly useful for
// fixtures and for invoices already converted to text upstream.
type TextFileExtractor struct{}

func (TextFileExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read text file: %w", err)
	}
	return TextExtractionResult{
		Text:     string(data),
		Pages:    1,
		Method:   "plain-text",
		Duration: time.Since(start),
	}, nil
}

// Extractor dispatches to the right extractor for a file's extension.
type Extractor struct {
	pdf *PDFExtractor
	txt TextFileExtractor
}

func NewExtractor(pdf *PDFExtractor) *Extractor {
	return &Extractor{pdf: pdf}
}

func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case "PDF":
		return e.pdf.Extract(ctx, path)
	case "TXT":
		return e.txt.Extract(ctx, path)
	default:
		return TextExtractionResult{}, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}
}
