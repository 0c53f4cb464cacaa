package service

import (
	"context"

	"github.com/google/uuid"

	"billbook/internal/domain"
	"billbook/internal/port"
)

// VendorInput is the DTO for creating or updating a vendor.
type VendorInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	GSTNo   string `json:"gst_no"`
	PANNo   string `json:"pan_no"`
	Phone   string `json:"phone"`
}

// VendorService defines the vendor management contract.
type VendorService interface {
	Create(ctx context.Context, input VendorInput) (*domain.Vendor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	List(ctx context.Context, offset, limit int) ([]domain.Vendor, int, error)
	Update(ctx context.Context, id uuid.UUID, input VendorInput) (*domain.Vendor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vendorService struct {
	repo port.VendorRepository
}

// NewVendorService creates a new VendorService implementation.
func NewVendorService(repo port.VendorRepository) VendorService {
	return &vendorService{repo: repo}
}

func (s *vendorService) Create(ctx context.Context, input VendorInput) (*domain.Vendor, error) {
	vendor := &domain.Vendor{
		Name:    input.Name,
		Address: input.Address,
		GSTNo:   input.GSTNo,
		PANNo:   input.PANNo,
		Phone:   input.Phone,
	}
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *vendorService) List(ctx context.Context, offset, limit int) ([]domain.Vendor, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *vendorService) Update(ctx context.Context, id uuid.UUID, input VendorInput) (*domain.Vendor, error) {
	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vendor.Name = input.Name
	vendor.Address = input.Address
	vendor.GSTNo = input.GSTNo
	vendor.PANNo = input.PANNo
	vendor.Phone = input.Phone

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
