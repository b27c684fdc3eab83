package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nimali/invoice-wizard/constants"
	"github.com/nimali/invoice-wizard/internal/entity"
	"github.com/nimali/invoice-wizard/internal/repository"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	db, err := repository.Open(ctx, repository.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	docs := repository.NewDocumentRepository(db, nil)
	items := repository.NewLineItemRepository(db, nil)

	sum := sha256.Sum256([]byte("seeded"))
	doc, _, err := docs.UpsertByHash(ctx, "/invoices/inv-123.txt", "inv-123.txt", "txt", 6, sum[:], time.Now().UTC())
	require.NoError(t, err)

	header := entity.InvoiceHeader{InvoiceNo: entity.Str("INV-123"), Date: entity.Str("5/6/24"), Total: entity.Str("81.00")}
	require.NoError(t, docs.SetParsed(ctx, doc.ID, constants.Colorama, header, time.Now().UTC()))
	require.NoError(t, items.ReplaceForDocument(ctx, doc.ID, []entity.LineItem{
		{Description: "Paracetamol 500mg", Qty: entity.Str("24"), NetAmount: entity.Str("60.00")},
		{Description: "Ibuprofen 200mg", Qty: entity.Str("12"), NetAmount: entity.Str("21.00")},
	}))

	return NewService(items, "Line Items", nil)
}

func TestService_ExportXLSX(t *testing.T) {
	svc := newSeededService(t)

	data, err := svc.ExportXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows("Line Items")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 items

	assert.Equal(t, "Filename", rows[0][0])
	assert.Equal(t, "Description", rows[0][5])

	assert.Equal(t, "inv-123.txt", rows[1][0])
	assert.Equal(t, "Colorama", rows[1][1])
	assert.Equal(t, "INV-123", rows[1][2])
	assert.Equal(t, "Paracetamol 500mg", rows[1][5])
	assert.Equal(t, "Ibuprofen 200mg", rows[2][5])
}

func TestService_ExportCSV(t *testing.T) {
	svc := newSeededService(t)

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3) // header + 2 items

	assert.True(t, strings.HasPrefix(lines[0], "Filename,Supplier,Invoice No,Date,Total,Description"))
	assert.Contains(t, lines[1], "inv-123.txt")
	assert.Contains(t, lines[1], "Paracetamol 500mg")
	assert.Contains(t, lines[2], "Ibuprofen 200mg")
}

func TestService_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	db, err := repository.Open(ctx, repository.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(repository.NewLineItemRepository(db, nil), "", nil)

	xlsxData, err := svc.ExportXLSX(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, xlsxData) // header row only

	csvData, err := svc.ExportCSV(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, len(strings.Split(strings.TrimSpace(string(csvData)), "\n")))
}
