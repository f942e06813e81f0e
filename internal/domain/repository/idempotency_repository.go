package repository

import (
	"context"
	"time"

	"github.com/goapub/pos-api/internal/domain/entity"
)

// IdempotencyRepository keeps the recorded answers of retried POST and PUT
// requests, keyed by client key and request path
type IdempotencyRepository interface {
	// Find returns nil when nothing was recorded for key on endpoint
	Find(ctx context.Context, key, endpoint string) (*entity.IdempotencyKey, error)
	// Save inserts, or overwrites the row sharing the key's ID
	Save(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Purge drops keys that expired before the cutoff and reports how many went
	Purge(ctx context.Context, before time.Time) (int64, error)
}
