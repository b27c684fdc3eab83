package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls the text layer out of a PDF, page by page, in page
// order. Scanned/image-only pages have no text layer and contribute nothing.
type PDFExtractor struct {
	maxPages int // 0 = no limit
	logger   *slog.Logger
}

func NewPDFExtractor(maxPages int, logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{maxPages: maxPages, logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	f, r, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("close pdf failed", "path", path, "error", cerr)
		}
	}()

	total := r.NumPage()
	if e.maxPages > 0 && total > e.maxPages {
		total = e.maxPages
	}

	var b strings.Builder
	var warnings []string
	pages := 0
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{}, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
		pages++
	}

	return TextExtractionResult{
		Text:     b.String(),
		Pages:    pages,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warnings,
	}, nil
}
