package repository

import (
	"context"
	"time"

	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/goapub/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for the append-only order ledger.
// There is no update or delete of order content, only status changes.
type OrderRepository interface {
	// Create appends an order together with its lines
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	// List returns orders in insertion order
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error)
	// ListItemsBetween returns order lines created in [start, end)
	ListItemsBetween(ctx context.Context, start, end time.Time) ([]entity.OrderItem, error)
}

// OrderFilterParams contains filtering parameters for order queries.
// A nil Pagination returns every matching order.
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	TableID    string
}
