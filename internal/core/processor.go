package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nimali/invoice-wizard/constants"
	"github.com/nimali/invoice-wizard/internal/entity"
	"github.com/nimali/invoice-wizard/internal/extract"
	"github.com/nimali/invoice-wizard/internal/records"
	"github.com/nimali/invoice-wizard/internal/repository"
	"github.com/nimali/invoice-wizard/internal/supplier"
)

// Processor coordinates text extraction, supplier classification, parsing and
// persistence for one document at a time. It keeps no state across documents;
// batch accumulation belongs to the caller.
type Processor struct {
	logger    *slog.Logger
	extractor extract.TextExtractor
	docsRepo  repository.DocumentRepository
	itemsRepo repository.LineItemRepository
}

func NewProcessor(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	docsRepo repository.DocumentRepository,
	itemsRepo repository.LineItemRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		docsRepo:  docsRepo,
		itemsRepo: itemsRepo,
	}
}

// ProcessDocument runs the full pass for an ingested document: extract text,
// classify the supplier, pull header fields and line items, assemble output
// records and persist them. Unknown suppliers are never routed to a parser;
// they persist with an all-absent header and no items. Only collaborator
// failures (extraction, storage) return an error; unmatched patterns do not.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Record, error) {
	doc, err := p.docsRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	res, err := p.extractor.Extract(ctx, doc.SourcePath)
	if err != nil {
		p.logger.Error("text extraction failed", "document_id", doc.ID, "path", doc.SourcePath, "error", err)
		return nil, fmt.Errorf("extract text: %w", err)
	}
	for _, w := range res.Warnings {
		p.logger.Warn("extraction warning", "document_id", doc.ID, "warning", w)
	}

	raw := entity.RawDocument{DocumentID: doc.ID, Filename: doc.Filename, Text: res.Text}

	sup := supplier.Detect(raw.Text)
	var header entity.InvoiceHeader
	var items []entity.LineItem
	if sup != constants.Unknown {
		parser := supplier.ForSupplier(sup)
		header = parser.Header(raw.Text)
		items = parser.LineItems(raw.Text)
	}

	assembled := Assemble(doc.SourcePath, sup, header, items)
	for i, rec := range assembled {
		if err := records.Validate(rec); err != nil {
			p.logger.Warn("record failed schema validation", "document_id", doc.ID, "position", i, "error", err)
		}
	}

	if err := p.docsRepo.SetParsed(ctx, doc.ID, sup, header, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("persist header: %w", err)
	}
	if err := p.itemsRepo.ReplaceForDocument(ctx, doc.ID, items); err != nil {
		return nil, fmt.Errorf("persist line items: %w", err)
	}

	p.logger.Info("document processed",
		"document_id", doc.ID,
		"filename", doc.Filename,
		"supplier", string(sup),
		"pages", res.Pages,
		"method", res.Method,
		"items", len(items),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return assembled, nil
}
