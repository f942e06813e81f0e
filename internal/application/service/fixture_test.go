package service

import (
	"context"
	"testing"
	"time"

	"github.com/goapub/pos-api/internal/config"
	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/infrastructure/catalog"
	"github.com/goapub/pos-api/internal/infrastructure/database"
	infraRepo "github.com/goapub/pos-api/internal/infrastructure/repository"
	"github.com/goapub/pos-api/pkg/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testFloor = config.FloorConfig{Width: 900, Height: 600, TableSize: 100, Padding: 20}

// fixture wires every service against a fresh seeded in-memory store
type fixture struct {
	db        *gorm.DB
	metrics   *metrics.Metrics
	orders    *OrderService
	payments  *PaymentService
	tables    *TableService
	products  *ProductService
	dashboard *DashboardService
	reports   *ReportService
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f, err := buildFixture()
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	t.Cleanup(f.close)
	return f
}

func buildFixture() (*fixture, error) {
	log := zap.NewNop()
	db, err := database.Open(&config.DatabaseConfig{Name: uuid.NewString()}, log)
	if err != nil {
		return nil, err
	}
	if err := database.SeedFloor(db, log); err != nil {
		return nil, err
	}

	m := metrics.New(prometheus.NewRegistry())
	tx := infraRepo.NewTransactor(db)
	tableRepo := infraRepo.NewTableRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	productRepo := catalog.Default()

	return &fixture{
		db:        db,
		metrics:   m,
		orders:    NewOrderService(orderRepo, tableRepo, productRepo, tx, m, log, time.UTC),
		payments:  NewPaymentService(tableRepo, paymentRepo, tx, m, log),
		tables:    NewTableService(tableRepo, tx, testFloor, log),
		products:  NewProductService(productRepo),
		dashboard: NewDashboardService(tableRepo, orderRepo),
		reports:   NewReportService(orderRepo, paymentRepo, time.UTC),
	}, nil
}

func (f *fixture) close() {
	if sqlDB, err := f.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// setBill puts a table into a known billing state, bypassing the services
func (f *fixture) setBill(tableID, bill string, occupied bool) error {
	return f.db.Model(&entity.Table{}).Where("id = ?", tableID).
		Updates(map[string]interface{}{
			"current_bill": decimal.RequireFromString(bill),
			"occupied":     occupied,
		}).Error
}

func (f *fixture) table(t testing.TB, id string) *entity.Table {
	t.Helper()
	table, err := f.tables.GetTable(context.Background(), id)
	if err != nil {
		t.Fatalf("get table %s: %v", id, err)
	}
	return table
}

func (f *fixture) countOrders(t testing.TB) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&entity.Order{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func (f *fixture) countPayments(t testing.TB) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&entity.Payment{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func payment(discount, cash, card string) PaymentInput {
	return PaymentInput{DiscountPercent: dec(discount), Cash: dec(cash), Card: dec(card)}
}
