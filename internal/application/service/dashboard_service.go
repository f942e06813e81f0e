package service

import (
	"context"
	"encoding/json"

	"github.com/goapub/pos-api/internal/domain/billing"
	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/goapub/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardService provides floor statistics
type DashboardService struct {
	tableRepo repository.TableRepository
	orderRepo repository.OrderRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(tableRepo repository.TableRepository, orderRepo repository.OrderRepository) *DashboardService {
	return &DashboardService{
		tableRepo: tableRepo,
		orderRepo: orderRepo,
	}
}

// FloorStats represents the header of the floor plan screen
type FloorStats struct {
	TotalTables     int             `json:"total_tables"`
	OccupiedTables  int             `json:"occupied_tables"`
	EmptyTables     int             `json:"empty_tables"`
	Guests          int             `json:"guests"`
	PreparingOrders int64           `json:"preparing_orders"`
	OpenBills       decimal.Decimal `json:"-"`
}

func (s FloorStats) MarshalJSON() ([]byte, error) {
	type Alias FloorStats
	return json.Marshal(&struct {
		Alias
		OpenBills float64 `json:"open_bills"`
	}{
		Alias:     Alias(s),
		OpenBills: billing.Display(s.OpenBills),
	})
}

// Stats sums the floor plan header from the live tables and the kitchen queue
func (s *DashboardService) Stats(ctx context.Context) (*FloorStats, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &FloorStats{TotalTables: len(tables), OpenBills: decimal.Zero}
	for _, t := range tables {
		if t.Occupied {
			stats.OccupiedTables++
		} else {
			stats.EmptyTables++
		}
		if t.Guests != nil {
			stats.Guests += *t.Guests
		}
		stats.OpenBills = stats.OpenBills.Add(t.CurrentBill)
	}

	stats.PreparingOrders, err = s.orderRepo.CountByStatus(ctx, enum.OrderStatusPreparing)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
