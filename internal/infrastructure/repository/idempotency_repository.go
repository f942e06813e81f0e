package repository

import (
	"context"
	"errors"
	"time"

	"github.com/goapub/pos-api/internal/domain/entity"
	domainRepo "github.com/goapub/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type idempotencyRepository struct {
	db *gorm.DB
}

func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) Find(ctx context.Context, key, endpoint string) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	// "key" is reserved in some dialects
	err := conn(ctx, r.db).Where(`"key" = ? AND endpoint = ?`, key, endpoint).Take(&ikey).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return &ikey, nil
}

func (r *idempotencyRepository) Save(ctx context.Context, ikey *entity.IdempotencyKey) error {
	return conn(ctx, r.db).Save(ikey).Error
}

func (r *idempotencyRepository) Purge(ctx context.Context, before time.Time) (int64, error) {
	res := conn(ctx, r.db).Where("expires_at < ?", before.UTC()).Delete(&entity.IdempotencyKey{})
	return res.RowsAffected, res.Error
}
