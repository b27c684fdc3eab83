package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/nimali/invoice-wizard/internal/extract"
	"github.com/nimali/invoice-wizard/internal/supplier"
)

// runextract is a debugging tool: extract text from one file, classify the
// supplier and parse it, without touching the database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <file-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pdfExtractor := extract.NewPDFExtractor(0, logger)
	extractor := extract.NewExtractor(pdfExtractor)

	start := time.Now()
	res, err := extractor.Extract(ctx, path)
	dur := time.Since(start)

	if err != nil {
		logger.Error("text extraction failed",
			"path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		logger.Warn("extraction warning", "path", path, "warning", w)
	}

	sup := supplier.Detect(res.Text)
	parser := supplier.ForSupplier(sup)
	header := parser.Header(res.Text)
	items := parser.LineItems(res.Text)

	logger.Info("extraction OK",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"supplier", string(sup),
		"invoice_no", deref(header.InvoiceNo),
		"date", deref(header.Date),
		"total", deref(header.Total),
		"items", len(items),
		"duration_ms", dur.Milliseconds(),
	)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
