package repository

import (
	"context"

	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/enum"
)

// ProductRepository defines read access to the immutable product catalog
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs returns the products found, keyed by ID. Unknown IDs are absent.
	GetByIDs(ctx context.Context, ids []string) (map[string]entity.Product, error)
	// List returns the catalog in menu order, optionally restricted to a category
	List(ctx context.Context, category *enum.ProductCategory) ([]entity.Product, error)
}
