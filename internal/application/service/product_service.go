package service

import (
	"context"

	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/goapub/pos-api/internal/domain/repository"
	"github.com/goapub/pos-api/pkg/apperror"
)

// ProductService exposes the menu
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListProducts returns the menu, restricted to one tab when category is set
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]entity.Product, error) {
	if category == "" {
		return s.productRepo.List(ctx, nil)
	}
	c, err := enum.ParseProductCategory(category)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	return s.productRepo.List(ctx, &c)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}
