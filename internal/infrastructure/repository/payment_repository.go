package repository

import (
	"context"
	"time"

	"github.com/goapub/pos-api/internal/domain/entity"
	domainRepo "github.com/goapub/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return conn(ctx, r.db).Create(payment).Error
}

// ListBetween bounds are normalised to UTC like the stored created_at
func (r *paymentRepository) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := conn(ctx, r.db).
		Where("created_at >= ? AND created_at < ?", start.UTC(), end.UTC()).
		Order("rowid ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListByTable(ctx context.Context, tableID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := conn(ctx, r.db).
		Where("table_id = ?", tableID).
		Order("rowid ASC").
		Find(&payments).Error
	return payments, err
}
