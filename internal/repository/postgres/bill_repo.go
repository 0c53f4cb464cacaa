package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billbook/internal/domain"
	"billbook/internal/port"
)

type billRepo struct {
	db *sqlx.DB
}

// NewBillRepo creates a new PostgreSQL-backed BillRepository.
func NewBillRepo(db *sqlx.DB) port.BillRepository {
	return &billRepo{db: db}
}

func (r *billRepo) Create(ctx context.Context, bill *domain.Bill) error {
	bill.ID = uuid.New()
	bill.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bills (id, invoice_no, vendor_id, date, transport_name, vehicle_no, lr_no,
			outside_gujarat, lines, total, cgst, sgst, igst, grand_total, amount_in_words,
			created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		bill.ID, bill.InvoiceNo, bill.VendorID, bill.Date, bill.TransportName,
		bill.VehicleNo, bill.LRNo, bill.OutsideGujarat, bill.Lines, bill.Total,
		bill.CGST, bill.SGST, bill.IGST, bill.GrandTotal, bill.AmountInWords,
		bill.CreatedBy, bill.CreatedAt)
	if err != nil {
		return fmt.Errorf("billRepo.Create: %w", err)
	}
	return nil
}

func (r *billRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.GetContext(ctx, &bill, "SELECT * FROM bills WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("billRepo.GetByID: %w", err)
	}
	return &bill, nil
}

func (r *billRepo) List(ctx context.Context, offset, limit int) ([]domain.Bill, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bills")
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List count: %w", err)
	}

	var bills []domain.Bill
	err = r.db.SelectContext(ctx, &bills,
		"SELECT * FROM bills ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List: %w", err)
	}
	return bills, total, nil
}

func (r *billRepo) ListAll(ctx context.Context) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := r.db.SelectContext(ctx, &bills,
		"SELECT * FROM bills ORDER BY date DESC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("billRepo.ListAll: %w", err)
	}
	return bills, nil
}
