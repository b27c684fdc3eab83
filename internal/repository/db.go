package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Config holds database connection settings.
type Config struct {
	Path        string // file path; ignored when InMemory is set
	InMemory    bool
	BusyTimeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	filename      TEXT NOT NULL,
	source_path   TEXT NOT NULL,
	file_ext      TEXT NOT NULL,
	file_size     INTEGER NOT NULL,
	content_hash  BLOB NOT NULL UNIQUE,
	supplier      TEXT NOT NULL DEFAULT 'Unknown',
	invoice_no    TEXT,
	invoice_date  TEXT,
	invoice_total TEXT,
	ingested_at   TEXT NOT NULL,
	parsed_at     TEXT
);

CREATE TABLE IF NOT EXISTS line_items (
	id           TEXT PRIMARY KEY,
	document_id  TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	description  TEXT NOT NULL,
	pack_size    TEXT,
	qty          TEXT,
	unit_price   TEXT,
	vat_code     TEXT,
	vat_rate     TEXT,
	net_price    TEXT,
	net_amount   TEXT,
	vat_amount   TEXT,
	product_code TEXT,
	line_total   TEXT
);

CREATE INDEX IF NOT EXISTS idx_line_items_document ON line_items(document_id, position);
`

// Open opens the SQLite database, applies pragmas and creates the schema.
// In-memory databases are pinned to a single connection: each connection to
// ":memory:" would otherwise see its own empty database.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	path := cfg.Path
	if cfg.InMemory {
		path = ":memory:"
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.InMemory {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()),
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
