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

type vendorRepo struct {
	db *sqlx.DB
}

// NewVendorRepo creates a new PostgreSQL-backed VendorRepository.
func NewVendorRepo(db *sqlx.DB) port.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	vendor.ID = uuid.New()
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vendors (id, name, address, gst_no, pan_no, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		vendor.ID, vendor.Name, vendor.Address, vendor.GSTNo, vendor.PANNo, vendor.Phone,
		vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("vendorRepo.Create: %w", err)
	}
	return nil
}

func (r *vendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.GetContext(ctx, &vendor, "SELECT * FROM vendors WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("vendorRepo.GetByID: %w", err)
	}
	return &vendor, nil
}

func (r *vendorRepo) List(ctx context.Context, offset, limit int) ([]domain.Vendor, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM vendors")
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.List count: %w", err)
	}

	var vendors []domain.Vendor
	err = r.db.SelectContext(ctx, &vendors,
		"SELECT * FROM vendors ORDER BY name ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.List: %w", err)
	}
	return vendors, total, nil
}

func (r *vendorRepo) Update(ctx context.Context, vendor *domain.Vendor) error {
	vendor.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE vendors SET name = $1, address = $2, gst_no = $3, pan_no = $4, phone = $5, updated_at = $6
		 WHERE id = $7`,
		vendor.Name, vendor.Address, vendor.GSTNo, vendor.PANNo, vendor.Phone,
		vendor.UpdatedAt, vendor.ID)
	if err != nil {
		return fmt.Errorf("vendorRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}

func (r *vendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM vendors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("vendorRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}
