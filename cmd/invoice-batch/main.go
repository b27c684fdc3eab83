package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nimali/invoice-wizard/internal/async"
	"github.com/nimali/invoice-wizard/internal/common"
	"github.com/nimali/invoice-wizard/internal/core"
	"github.com/nimali/invoice-wizard/internal/entity"
	"github.com/nimali/invoice-wizard/internal/export"
	"github.com/nimali/invoice-wizard/internal/extract"
	"github.com/nimali/invoice-wizard/internal/ingest"
	repo "github.com/nimali/invoice-wizard/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output file path (optional, defaults to parent directory)")
		format  = flag.String("format", "", "output format: xlsx or csv (default from EXPORT_FORMAT)")
		dbPath  = flag.String("db", "", "SQLite database path (default from DB_PATH)")
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		workers = flag.Int("workers", 4, "number of concurrent document processors")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environment still wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env file", "error", err)
	}

	cfg := common.LoadConfig()
	if *format != "" {
		cfg.Export.Format = strings.ToLower(*format)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *inmem {
		cfg.Database.InMemory = true
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "invoices."+cfg.Export.Format)
	}

	ctx := context.Background()

	// Open database
	db, err := repo.Open(ctx, repo.Config{
		Path:        cfg.Database.Path,
		InMemory:    cfg.Database.InMemory,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close database", "error", cerr)
		}
	}()

	// Wire repositories
	docsRepo := repo.NewDocumentRepository(db, logger)
	itemsRepo := repo.NewLineItemRepository(db, logger)

	// Setup text extraction
	pdfExtractor := extract.NewPDFExtractor(cfg.Extract.MaxPages, logger)
	extractor := extract.NewExtractor(pdfExtractor)

	// Setup processor and ingestor
	processor := core.NewProcessor(logger, extractor, docsRepo, itemsRepo)
	ingestor := ingest.NewFSIngestor(docsRepo, logger)

	// Ingest directory
	logger.Info("starting ingestion", "dir", *dir)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	// Extract document IDs from ingestion results; duplicate files share a
	// document, so each ID is processed once.
	var ingested []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, result := range ingestionResults {
		if result.Err == "" {
			docID, err := uuid.Parse(result.DocumentID)
			if err != nil {
				logger.Error("failed to parse document ID", "document_id", result.DocumentID, "error", err)
				continue
			}
			if seen[docID] {
				continue
			}
			seen[docID] = true
			ingested = append(ingested, docID)
		}
	}
	logger.Info("ingestion complete",
		"documents_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	// Process the ingested documents concurrently
	jobs := make([]async.Job, 0, len(ingested))
	for _, docID := range ingested {
		jobs = append(jobs, async.Job{DocumentID: docID, SubmittedAt: time.Now().UTC()})
	}
	pool := async.NewPool(*workers, func(ctx context.Context, docID uuid.UUID) ([]entity.Record, error) {
		docCtx, cancel := context.WithTimeout(ctx, cfg.Extract.Timeout)
		defer cancel()
		return processor.ProcessDocument(docCtx, docID)
	}, logger)

	processed := 0
	failures := 0
	rows := 0
	for _, r := range pool.Run(ctx, jobs) {
		if r.Err != nil {
			logger.Error("failed to process document", "document_id", r.DocumentID, "error", r.Err)
			failures++
		} else {
			processed++
			rows += len(r.Records)
		}
	}

	// Export
	logger.Info("exporting", "format", cfg.Export.Format, "output", *out)
	exportService := export.NewService(itemsRepo, cfg.Export.SheetName, logger)

	var data []byte
	switch cfg.Export.Format {
	case "csv":
		data, err = exportService.ExportCSV(ctx)
	default:
		data, err = exportService.ExportXLSX(ctx)
	}
	if err != nil {
		logger.Error("failed to export records", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch processing complete",
		"documents_ingested", len(ingested),
		"documents_processed", processed,
		"failures", failures,
		"rows", rows,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents ingested: %d\n", len(ingested))
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Rows exported: %d\n", rows)
	fmt.Printf("- Output: %s\n", *out)
}
