package service

import (
	"context"
	"math"

	"github.com/goapub/pos-api/internal/config"
	"github.com/goapub/pos-api/internal/domain/billing"
	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/repository"
	"github.com/goapub/pos-api/pkg/apperror"
	"go.uber.org/zap"
)

// TableService handles floor plan reads, the occupancy override and table moves
type TableService struct {
	tableRepo repository.TableRepository
	tx        repository.Transactor
	floor     config.FloorConfig
	log       *zap.Logger
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, tx repository.Transactor, floor config.FloorConfig, log *zap.Logger) *TableService {
	return &TableService{
		tableRepo: tableRepo,
		tx:        tx,
		floor:     floor,
		log:       log,
	}
}

// MoveInput is a drop position. Width and Height override the configured
// floor bounds when the client viewport differs.
type MoveInput struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (s *TableService) ListTables(ctx context.Context) ([]entity.Table, error) {
	return s.tableRepo.List(ctx)
}

func (s *TableService) GetTable(ctx context.Context, id string) (*entity.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// ToggleOccupancy is the operator override: it flips occupancy and leaves the
// bill as it is. Freeing a table that still owes money is allowed and logged.
func (s *TableService) ToggleOccupancy(ctx context.Context, id string) (*entity.Table, error) {
	var table *entity.Table
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		table, err = s.GetTable(ctx, id)
		if err != nil {
			return err
		}
		billing.ToggleOccupancy(table)
		return s.tableRepo.Update(ctx, table)
	})
	if err != nil {
		return nil, err
	}

	if !table.Occupied && !table.CurrentBill.IsZero() {
		s.log.Warn("table freed with an open bill",
			zap.String("table", table.Name),
			zap.String("bill", table.CurrentBill.String()),
		)
	} else {
		s.log.Info("occupancy override", zap.String("table", table.Name), zap.Bool("occupied", table.Occupied))
	}
	return table, nil
}

// MoveTable stores a new floor position clamped inside the visible area
func (s *TableService) MoveTable(ctx context.Context, id string, input MoveInput) (*entity.Table, error) {
	if math.IsNaN(input.X) || math.IsNaN(input.Y) || math.IsInf(input.X, 0) || math.IsInf(input.Y, 0) {
		return nil, apperror.NewBadRequestError("Position must be a finite number")
	}

	width, height := s.floor.Width, s.floor.Height
	if input.Width > 0 {
		width = input.Width
	}
	if input.Height > 0 {
		height = input.Height
	}

	var table *entity.Table
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		table, err = s.GetTable(ctx, id)
		if err != nil {
			return err
		}
		table.Position = entity.Position{
			X: ClampPosition(input.X, width, s.floor.TableSize, s.floor.Padding),
			Y: ClampPosition(input.Y, height, s.floor.TableSize, s.floor.Padding),
		}
		return s.tableRepo.Update(ctx, table)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// ClampPosition keeps a coordinate within [padding, bound-size-padding]. When
// the area is smaller than a table the coordinate pins to padding.
func ClampPosition(v, bound, size, padding float64) float64 {
	lo := padding
	hi := bound - size - padding
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
