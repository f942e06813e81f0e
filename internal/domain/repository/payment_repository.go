package repository

import (
	"context"
	"time"

	"github.com/goapub/pos-api/internal/domain/entity"
)

// PaymentRepository defines the interface for the journal of accepted payments
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// ListBetween returns payments created in [start, end), oldest first
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Payment, error)
	ListByTable(ctx context.Context, tableID string) ([]entity.Payment, error)
}
