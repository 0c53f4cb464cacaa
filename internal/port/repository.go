package port

import (
	"context"

	"github.com/google/uuid"

	"billbook/internal/domain"
)

// UserRepository persists application users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// VendorRepository persists vendors.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	List(ctx context.Context, offset, limit int) ([]domain.Vendor, int, error)
	Update(ctx context.Context, vendor *domain.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository persists products and their packing sets.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BillRepository persists immutable bill snapshots.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, offset, limit int) ([]domain.Bill, int, error)
	ListAll(ctx context.Context) ([]domain.Bill, error)
}

// InvoiceSequence hands out invoice numbers. NextInvoiceNo must be atomic:
// concurrent callers never observe the same number.
type InvoiceSequence interface {
	NextInvoiceNo(ctx context.Context) (string, error)
}
