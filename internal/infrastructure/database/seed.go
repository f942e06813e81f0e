package database

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type seedTable struct {
	shape  enum.TableShape
	x, y   float64
	guests int
	bill   int64
}

// opening floor of the bar, M-1 through M-12. guests == 0 means free.
var seedTables = []seedTable{
	{enum.TableShapeRound, 50, 140, 2, 450},
	{enum.TableShapeRound, 190, 140, 0, 0},
	{enum.TableShapeRound, 330, 140, 3, 780},
	{enum.TableShapeRound, 470, 140, 0, 0},
	{enum.TableShapeSquare, 80, 280, 4, 1250},
	{enum.TableShapeSquare, 260, 280, 0, 0},
	{enum.TableShapeRound, 450, 280, 2, 320},
	{enum.TableShapeSquare, 640, 280, 0, 0},
	{enum.TableShapeRound, 80, 420, 2, 890},
	{enum.TableShapeSquare, 260, 420, 6, 2100},
	{enum.TableShapeRound, 450, 420, 0, 0},
	{enum.TableShapeSquare, 640, 420, 0, 0},
}

type seedOrder struct {
	items  string
	table  int
	status enum.OrderStatus
	clock  string
	age    time.Duration
}

var seedOrders = []seedOrder{
	{"3x Bira", 5, enum.OrderStatusPreparing, "21:45", time.Minute},
	{"1x Kokteyl", 2, enum.OrderStatusPreparing, "21:42", 4 * time.Minute},
	{"Çerez", 8, enum.OrderStatusServed, "21:38", 8 * time.Minute},
	{"2x Bira, 1x Pizza", 1, enum.OrderStatusPreparing, "21:40", 6 * time.Minute},
	{"4x Kokteyl", 10, enum.OrderStatusPreparing, "21:41", 5 * time.Minute},
}

// SeedFloor loads the opening floor plan and kitchen board. It does nothing
// when tables already exist.
func SeedFloor(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&entity.Table{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count tables: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, st := range seedTables {
			n := i + 1
			table := entity.Table{
				ID:          strconv.Itoa(n),
				Name:        "M-" + strconv.Itoa(n),
				Shape:       st.shape,
				CurrentBill: decimal.NewFromInt(st.bill),
				Position:    entity.Position{X: st.x, Y: st.y},
			}
			if st.guests > 0 {
				guests := st.guests
				table.Occupied = true
				table.Guests = &guests
			}
			if err := tx.Create(&table).Error; err != nil {
				return fmt.Errorf("failed to seed table %s: %w", table.Name, err)
			}
		}

		now := time.Now().UTC()
		for _, so := range seedOrders {
			order := entity.Order{
				TableID:     strconv.Itoa(so.table),
				TableNumber: so.table,
				Items:       so.items,
				Status:      so.status,
				Time:        so.clock,
				Total:       decimal.Zero,
				CreatedAt:   now.Add(-so.age),
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("failed to seed order %q: %w", so.items, err)
			}
		}

		log.Info("seeded floor", zap.Int("tables", len(seedTables)), zap.Int("orders", len(seedOrders)))
		return nil
	})
}
