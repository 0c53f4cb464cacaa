package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"billbook/internal/port"
)

type invoiceSeqRepo struct {
	db *sqlx.DB
}

// NewInvoiceSeqRepo creates a new PostgreSQL-backed InvoiceSequence.
func NewInvoiceSeqRepo(db *sqlx.DB) port.InvoiceSequence {
	return &invoiceSeqRepo{db: db}
}

// NextInvoiceNo increments and fetches the invoice counter in a single
// statement. The upsert seeds the counter at 1 on first use, so two
// concurrent bill creations can never be assigned the same number.
func (r *invoiceSeqRepo) NextInvoiceNo(ctx context.Context) (string, error) {
	var next int64
	err := r.db.GetContext(ctx, &next, `
		INSERT INTO invoice_sequences (name, last_value)
		VALUES ('bills', 1)
		ON CONFLICT (name)
		DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value`)
	if err != nil {
		return "", fmt.Errorf("invoiceSeqRepo.NextInvoiceNo: %w", err)
	}
	return strconv.FormatInt(next, 10), nil
}
