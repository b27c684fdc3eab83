package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nimali/invoice-wizard/constants"
	"github.com/nimali/invoice-wizard/internal/entity"
)

type DocumentRepository interface {
	// UpsertByHash creates a document row, or returns the existing one when a
	// file with the same content hash was ingested before. The boolean
	// reports deduplication.
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, ingestedAt time.Time) (*entity.Document, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// SetParsed records the classification and header extraction outcome.
	// Absent header fields stay NULL.
	SetParsed(ctx context.Context, id uuid.UUID, s constants.Supplier, header entity.InvoiceHeader, parsedAt time.Time) error
	List(ctx context.Context) ([]*entity.Document, error)
}

type documentRepo struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewDocumentRepository(db *sql.DB, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{db: db, logger: logger}
}

const documentColumns = `id, filename, source_path, file_ext, file_size, content_hash,
	supplier, invoice_no, invoice_date, invoice_total, ingested_at, parsed_at`

func (r *documentRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, ingestedAt time.Time) (*entity.Document, bool, error) {
	existing, err := r.getByHash(ctx, hash)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("lookup document by hash: %w", err)
	}

	doc := &entity.Document{
		ID:          uuid.New(),
		Filename:    filename,
		SourcePath:  sourcePath,
		FileExt:     ext,
		FileSize:    size,
		ContentHash: hash,
		Supplier:    constants.Unknown,
		IngestedAt:  ingestedAt.UTC(),
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (id, filename, source_path, file_ext, file_size, content_hash, supplier, ingested_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID.String(), doc.Filename, doc.SourcePath, doc.FileExt, doc.FileSize, doc.ContentHash,
		string(doc.Supplier), doc.IngestedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.logger.Error("failed to create document", "source_path", sourcePath, "error", err)
		return nil, false, fmt.Errorf("insert document: %w", err)
	}
	return doc, false, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = ?`, id.String())
	return scanDocument(row)
}

func (r *documentRepo) getByHash(ctx context.Context, hash []byte) (*entity.Document, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE content_hash = ?`, hash)
	return scanDocument(row)
}

func (r *documentRepo) SetParsed(ctx context.Context, id uuid.UUID, s constants.Supplier, header entity.InvoiceHeader, parsedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE documents
		 SET supplier = ?, invoice_no = ?, invoice_date = ?, invoice_total = ?, parsed_at = ?
		 WHERE id = ?`,
		string(s), header.InvoiceNo, header.Date, header.Total,
		parsedAt.UTC().Format(time.RFC3339Nano), id.String(),
	)
	if err != nil {
		r.logger.Error("failed to mark document parsed", "document_id", id, "error", err)
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

func (r *documentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*entity.Document, error) {
	var (
		doc                    entity.Document
		id                     string
		supplier               string
		invNo, invDate, invTot sql.NullString
		ingestedAt             string
		parsedAt               sql.NullString
	)
	err := row.Scan(&id, &doc.Filename, &doc.SourcePath, &doc.FileExt, &doc.FileSize, &doc.ContentHash,
		&supplier, &invNo, &invDate, &invTot, &ingestedAt, &parsedAt)
	if err != nil {
		return nil, err
	}
	doc.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse document id: %w", err)
	}
	doc.Supplier, _ = constants.Canonicalize(supplier)
	doc.InvoiceNo = nullableString(invNo)
	doc.Date = nullableString(invDate)
	doc.Total = nullableString(invTot)
	if doc.IngestedAt, err = time.Parse(time.RFC3339Nano, ingestedAt); err != nil {
		return nil, fmt.Errorf("parse ingested_at: %w", err)
	}
	if parsedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, parsedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse parsed_at: %w", err)
		}
		doc.ParsedAt = &t
	}
	return &doc, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
