package repository

import (
	"context"
	"errors"

	"github.com/goapub/pos-api/internal/domain/entity"
	domainRepo "github.com/goapub/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) GetByID(ctx context.Context, id string) (*entity.Table, error) {
	var table entity.Table
	err := conn(ctx, r.db).First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

// List returns tables in floor order (M-1, M-2, ... M-12)
func (r *tableRepository) List(ctx context.Context) ([]entity.Table, error) {
	var tables []entity.Table
	err := conn(ctx, r.db).Order("CAST(id AS INTEGER) ASC").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) Update(ctx context.Context, table *entity.Table) error {
	return conn(ctx, r.db).Save(table).Error
}
