package service

import (
	"context"

	"github.com/google/uuid"

	"billbook/internal/domain"
	"billbook/internal/port"
)

// PackingInput is one packing option on a product.
type PackingInput struct {
	Value float64 `json:"value" binding:"required,gt=0"`
	Rate  float64 `json:"rate" binding:"gte=0"`
}

// ProductInput is the DTO for creating or updating a product.
type ProductInput struct {
	Name     string         `json:"name" binding:"required"`
	HSNCode  string         `json:"hsn_code"`
	Unit     string         `json:"unit" binding:"required"`
	Rate     float64        `json:"rate" binding:"gte=0"`
	Packings []PackingInput `json:"packings"`
}

// ProductService defines the product catalogue contract.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func packingsFromInput(in []PackingInput) domain.PackingList {
	packings := make(domain.PackingList, 0, len(in))
	for _, p := range in {
		packings = append(packings, domain.Packing{Value: p.Value, Rate: p.Rate})
	}
	return packings
}

func (s *productService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	unit := domain.Unit(input.Unit)
	if !unit.Valid() {
		return nil, domain.ErrInvalidUnit
	}

	product := &domain.Product{
		Name:     input.Name,
		HSNCode:  input.HSNCode,
		Unit:     unit,
		Rate:     input.Rate,
		Packings: packingsFromInput(input.Packings),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, offset, limit int) ([]domain.Product, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	unit := domain.Unit(input.Unit)
	if !unit.Valid() {
		return nil, domain.ErrInvalidUnit
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.HSNCode = input.HSNCode
	product.Unit = unit
	product.Rate = input.Rate
	product.Packings = packingsFromInput(input.Packings)

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
