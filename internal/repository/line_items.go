package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nimali/invoice-wizard/internal/entity"
)

type LineItemRepository interface {
	// ReplaceForDocument swaps a document's items for the given set,
	// preserving tokenizer emission order via the position column.
	// Reprocessing a document is therefore idempotent.
	ReplaceForDocument(ctx context.Context, documentID uuid.UUID, items []entity.LineItem) error
	// ListRecords returns every stored item joined with its document's
	// supplier, header fields and filename, in document ingestion order then
	// item position. This is the exporter's input.
	ListRecords(ctx context.Context) ([]entity.Record, error)
}

type lineItemRepo struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewLineItemRepository(db *sql.DB, logger *slog.Logger) LineItemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &lineItemRepo{db: db, logger: logger}
}

func (r *lineItemRepo) ReplaceForDocument(ctx context.Context, documentID uuid.UUID, items []entity.LineItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM line_items WHERE document_id = ?`, documentID.String()); err != nil {
		return fmt.Errorf("clear line items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO line_items (id, document_id, position, description, pack_size, qty, unit_price,
			vat_code, vat_rate, net_price, net_amount, vat_amount, product_code, line_total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for pos, item := range items {
		_, err := stmt.ExecContext(ctx,
			uuid.New().String(), documentID.String(), pos,
			item.Description, item.PackSize, item.Qty, item.UnitPrice,
			item.VATCode, item.VATRate, item.NetPrice, item.NetAmount,
			item.VATAmount, item.ProductCode, item.LineTotal,
		)
		if err != nil {
			r.logger.Error("failed to insert line item", "document_id", documentID, "position", pos, "error", err)
			return fmt.Errorf("insert line item %d: %w", pos, err)
		}
	}
	return tx.Commit()
}

func (r *lineItemRepo) ListRecords(ctx context.Context) ([]entity.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.filename, d.supplier, d.invoice_no, d.invoice_date, d.invoice_total,
			li.description, li.pack_size, li.qty, li.unit_price, li.vat_code, li.vat_rate,
			li.net_price, li.net_amount, li.vat_amount, li.product_code, li.line_total
		 FROM line_items li
		 JOIN documents d ON d.id = li.document_id
		 ORDER BY d.rowid, li.position`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var (
			rec                                              entity.Record
			invNo, invDate, invTot                           sql.NullString
			pack, qty, unit, vatCode, vatRate                sql.NullString
			netPrice, netAmount, vatAmount, prodCode, lTotal sql.NullString
		)
		err := rows.Scan(&rec.Filename, &rec.Supplier, &invNo, &invDate, &invTot,
			&rec.Description, &pack, &qty, &unit, &vatCode, &vatRate,
			&netPrice, &netAmount, &vatAmount, &prodCode, &lTotal)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.InvoiceNo = nullableString(invNo)
		rec.Date = nullableString(invDate)
		rec.Total = nullableString(invTot)
		rec.PackSize = nullableString(pack)
		rec.Qty = nullableString(qty)
		rec.UnitPrice = nullableString(unit)
		rec.VATCode = nullableString(vatCode)
		rec.VATRate = nullableString(vatRate)
		rec.NetPrice = nullableString(netPrice)
		rec.NetAmount = nullableString(netAmount)
		rec.VATAmount = nullableString(vatAmount)
		rec.ProductCode = nullableString(prodCode)
		rec.LineTotal = nullableString(lTotal)
		records = append(records, rec)
	}
	return records, rows.Err()
}
