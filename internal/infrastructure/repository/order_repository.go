package repository

import (
	"context"
	"errors"
	"time"

	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/enum"
	domainRepo "github.com/goapub/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its lines in one statement batch
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return conn(ctx, r.db).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := conn(ctx, r.db).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("rowid ASC") }).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return conn(ctx, r.db).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := conn(ctx, r.db).Model(&entity.Order{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.TableID != "" {
		query = query.Where("table_id = ?", params.TableID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// rowid follows insertion, created_at can tie within a millisecond
	query = query.Order("rowid ASC")
	if params.Pagination != nil {
		params.Pagination.Validate()
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage)
	}

	err := query.Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// ListItemsBetween returns lines created in [start, end). created_at is UTC
// text in SQLite, so the bounds are compared in UTC whatever zone they carry.
func (r *orderRepository) ListItemsBetween(ctx context.Context, start, end time.Time) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := conn(ctx, r.db).
		Where("created_at >= ? AND created_at < ?", start.UTC(), end.UTC()).
		Order("rowid ASC").
		Find(&items).Error
	return items, err
}
