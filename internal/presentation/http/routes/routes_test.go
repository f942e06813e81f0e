package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/config"
	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/infrastructure/catalog"
	"github.com/goapub/pos-api/internal/infrastructure/database"
	"github.com/goapub/pos-api/internal/infrastructure/repository"
	"github.com/goapub/pos-api/internal/presentation/http/handler"
	"github.com/goapub/pos-api/pkg/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	cfg := &config.Config{
		App:      config.AppConfig{Name: "pos-test"},
		Database: config.DatabaseConfig{Name: uuid.NewString()},
		Floor:    config.FloorConfig{Width: 900, Height: 600, TableSize: 100, Padding: 20},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}

	db, err := database.Open(&cfg.Database, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, database.SeedFloor(db, log))

	m := metrics.New(prometheus.NewRegistry())
	products := catalog.Default()
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	tx := repository.NewTransactor(db)

	h := &Handlers{
		Table:     handler.NewTableHandler(service.NewTableService(tableRepo, tx, cfg.Floor, log)),
		Order:     handler.NewOrderHandler(service.NewOrderService(orderRepo, tableRepo, products, tx, m, log, time.UTC)),
		Payment:   handler.NewPaymentHandler(service.NewPaymentService(tableRepo, paymentRepo, tx, m, log)),
		Product:   handler.NewProductHandler(service.NewProductService(products)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(tableRepo, orderRepo)),
		Report:    handler.NewReportHandler(service.NewReportService(orderRepo, paymentRepo, time.UTC)),
	}

	router := Setup(h, &Deps{
		Cfg:             cfg,
		IdempotencyRepo: repository.NewIdempotencyRepository(db),
		Metrics:         m,
		Logger:          log,
	})
	return router, db
}

func do(t *testing.T, router *gin.Engine, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "%s %s: %s", method, path, w.Body.String())
	}
	return w, env
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTables(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/tables", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tables []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &tables))
	require.Len(t, tables, 12)
	assert.Equal(t, "M-1", tables[0]["name"])
	assert.Equal(t, "M-12", tables[11]["name"])
	assert.Equal(t, "OCCUPIED", tables[0]["state"])
	assert.Equal(t, "EMPTY", tables[1]["state"])
}

func TestGetTable_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/tables/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Table not found", env.Message)
}

func TestConfirmOrderThenSettle(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/tables/2/orders",
		`{"items":[{"product_id":"b1","quantity":2},{"product_id":"f7","quantity":1}]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var summary struct {
		Summary string  `json:"summary"`
		Total   float64 `json:"total"`
		Table   struct {
			Occupied    bool    `json:"occupied"`
			CurrentBill float64 `json:"current_bill"`
		} `json:"table"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "2x EFES PİLSEN, 1x PATATES KIZARTMASI", summary.Summary)
	assert.Equal(t, 130.0, summary.Total)
	assert.Equal(t, 130.0, summary.Table.CurrentBill)
	assert.True(t, summary.Table.Occupied)

	w, env = do(t, router, http.MethodPost, "/api/v1/tables/2/payments/full", `{"cash":100,"card":"30"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Accepted bool    `json:"accepted"`
		NewBill  float64 `json:"new_bill"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Accepted)
	assert.Zero(t, result.NewBill)

	w, env = do(t, router, http.MethodGet, "/api/v1/tables/2/payments", "")
	require.Equal(t, http.StatusOK, w.Code)
	var journal []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &journal))
	require.Len(t, journal, 1)
	assert.Equal(t, "full", journal[0]["kind"])
	assert.Equal(t, 130.0, journal[0]["tendered"])
}

func TestConfirmOrder_EmptyCart(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/tables/2/orders", `{"items":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Cart is empty", env.Message)
}

func TestConfirmOrder_MissingProductID(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := do(t, router, http.MethodPost, "/api/v1/tables/2/orders", `{"items":[{"quantity":1}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConfirmOrder_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := do(t, router, http.MethodPost, "/api/v1/tables/2/orders", `{"items":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmOrder_QuantityOutOfRangeLeavesBill(t *testing.T) {
	router, _ := newTestRouter(t)

	bodies := map[string]string{
		"huge line":   `{"items":[{"product_id":"b1","quantity":9223372036854775807},{"product_id":"b1","quantity":1}]}`,
		"merged line": `{"items":[{"product_id":"b1","quantity":999},{"product_id":"b1","quantity":1}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w, _ := do(t, router, http.MethodPost, "/api/v1/tables/1/orders", body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		})
	}

	w, env := do(t, router, http.MethodGet, "/api/v1/tables/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var table struct {
		CurrentBill float64 `json:"current_bill"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &table))
	assert.Equal(t, 450.0, table.CurrentBill)
}

func TestPayment_RejectionIsNotAnError(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/tables/1/payments/full", `{"cash":"100"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, env.Success)

	var result struct {
		Accepted  bool    `json:"accepted"`
		Reason    string  `json:"reason"`
		NewBill   float64 `json:"new_bill"`
		Remaining float64 `json:"remaining"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Accepted)
	assert.Equal(t, "insufficient-funds", result.Reason)
	assert.Equal(t, 450.0, result.NewBill)
	assert.Equal(t, 350.0, result.Remaining)
}

func TestPayment_InvalidDiscount(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := do(t, router, http.MethodPost, "/api/v1/tables/1/payments/quote", `{"discount_percent":150}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPaymentQuote(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/tables/5/payments/quote", `{"discount_percent":10,"cash":500}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var quote struct {
		FinalTotal    float64 `json:"final_total"`
		Remaining     float64 `json:"remaining"`
		CanPayPartial bool    `json:"can_pay_partial"`
		CanPayFull    bool    `json:"can_pay_full"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.Equal(t, 1125.0, quote.FinalTotal)
	assert.Equal(t, 625.0, quote.Remaining)
	assert.True(t, quote.CanPayPartial)
	assert.False(t, quote.CanPayFull)
}

func TestToggleOrderStatus(t *testing.T) {
	router, db := newTestRouter(t)

	var order entity.Order
	require.NoError(t, db.Order("rowid ASC").First(&order).Error)

	w, env := do(t, router, http.MethodPost, "/api/v1/orders/"+order.ID.String()+"/toggle-status", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var toggled struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.Equal(t, "served", toggled.Status)
}

func TestToggleOrderStatus_BadID(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := do(t, router, http.MethodPost, "/api/v1/orders/not-a-uuid/toggle-status", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/orders/"+uuid.NewString()+"/toggle-status", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrders(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/orders?status=preparing", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Items []struct {
			Items string `json:"items"`
		} `json:"items"`
		Pagination *struct{} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Len(t, result.Items, 4)
	assert.Nil(t, result.Pagination)

	w, _ = do(t, router, http.MethodGet, "/api/v1/orders?status=cancelled", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders_Paginated(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/orders?page=2&per_page=2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Items []struct {
			Items string `json:"items"`
		} `json:"items"`
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Çerez", result.Items[0].Items)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
}

func TestBoard(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/orders/board", "")
	require.Equal(t, http.StatusOK, w.Code)

	var board []struct {
		Items  string `json:"items"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &board))
	require.Len(t, board, 5)
	assert.Equal(t, "3x Bira", board[0].Items)
	assert.Equal(t, "Çerez", board[4].Items)
	assert.Equal(t, "served", board[4].Status)
}

func TestMoveTable_MissingCoordinates(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := do(t, router, http.MethodPut, "/api/v1/tables/3/position", `{"x":10}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMoveTable_Clamped(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodPut, "/api/v1/tables/3/position", `{"x":-50,"y":5000}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var table struct {
		Position struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"position"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &table))
	assert.Equal(t, 20.0, table.Position.X)
	assert.Equal(t, 480.0, table.Position.Y)
}

func TestToggleOccupancy(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/tables/7/occupancy/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	var table struct {
		Occupied    bool    `json:"occupied"`
		CurrentBill float64 `json:"current_bill"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &table))
	assert.False(t, table.Occupied)
	assert.Equal(t, 320.0, table.CurrentBill, "the override is not a payment")
}

func TestIdempotentConfirmReplays(t *testing.T) {
	router, db := newTestRouter(t)
	body := `{"items":[{"product_id":"c1","quantity":1}]}`

	first, _ := do(t, router, http.MethodPost, "/api/v1/tables/4/orders", body, "Idempotency-Key", "abc-1")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second, _ := do(t, router, http.MethodPost, "/api/v1/tables/4/orders", body, "Idempotency-Key", "abc-1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Where("table_id = ?", "4").Count(&n).Error)
	assert.Equal(t, int64(1), n)

	var table entity.Table
	require.NoError(t, db.First(&table, "id = ?", "4").Error)
	assert.Equal(t, "85", table.CurrentBill.String())

	// same key on another table is a different request
	other, _ := do(t, router, http.MethodPost, "/api/v1/tables/6/orders", body, "Idempotency-Key", "abc-1")
	require.Equal(t, http.StatusCreated, other.Code)
	assert.Empty(t, other.Header().Get("X-Idempotency-Replayed"))
}

func TestListProducts(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/products?category=cocktail", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Len(t, products, 9)

	w, _ = do(t, router, http.MethodGet, "/api/v1/products?category=wine", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/products/zz", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardAndReport(t *testing.T) {
	router, _ := newTestRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		OccupiedTables int     `json:"occupied_tables"`
		OpenBills      float64 `json:"open_bills"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 6, stats.OccupiedTables)
	assert.Equal(t, 5790.0, stats.OpenBills)

	w, _ = do(t, router, http.MethodGet, "/api/v1/reports/daily", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/reports/daily?date=yesterday", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
