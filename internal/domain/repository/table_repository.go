package repository

import (
	"context"

	"github.com/goapub/pos-api/internal/domain/entity"
)

// TableRepository defines the interface for floor table data operations.
// Tables are seeded once and never created or deleted afterwards.
type TableRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Table, error)
	List(ctx context.Context) ([]entity.Table, error)
	Update(ctx context.Context, table *entity.Table) error
}
