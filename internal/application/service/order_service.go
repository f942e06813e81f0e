package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goapub/pos-api/internal/domain/billing"
	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/repository"
	"github.com/goapub/pos-api/pkg/apperror"
	"github.com/goapub/pos-api/pkg/metrics"
	"github.com/goapub/pos-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService appends confirmed carts to the order ledger and folds their
// totals into table bills
type OrderService struct {
	orderRepo   repository.OrderRepository
	tableRepo   repository.TableRepository
	productRepo repository.ProductRepository
	tx          repository.Transactor
	metrics     *metrics.Metrics
	log         *zap.Logger
	loc         *time.Location
	now         func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	tableRepo repository.TableRepository,
	productRepo repository.ProductRepository,
	tx repository.Transactor,
	m *metrics.Metrics,
	log *zap.Logger,
	loc *time.Location,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		tableRepo:   tableRepo,
		productRepo: productRepo,
		tx:          tx,
		metrics:     m,
		log:         log,
		loc:         loc,
		now:         time.Now,
	}
}

// OrderItemInput represents a cart line
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// OrderSummary is what the order screen shows after a confirm
type OrderSummary struct {
	Order   *entity.Order   `json:"order"`
	Summary string          `json:"summary"`
	Total   decimal.Decimal `json:"-"`
	Table   *entity.Table   `json:"table"`
}

func (s OrderSummary) MarshalJSON() ([]byte, error) {
	type Alias OrderSummary
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(s),
		Total: billing.Display(s.Total),
	})
}

// ConfirmOrder turns the cart into a preparing order and adds its total to
// the table's bill. Nothing is written unless every line is valid.
func (s *OrderService) ConfirmOrder(ctx context.Context, tableID string, items []OrderItemInput) (*OrderSummary, error) {
	if len(items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		if item.Quantity < 1 || item.Quantity > entity.MaxLineQuantity {
			return nil, apperror.NewInvalidInputError(fmt.Sprintf("items[%d].quantity", i), entity.ErrLineQuantity.Error())
		}
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	cart := entity.NewCart()
	for i, item := range items {
		product, exists := products[item.ProductID]
		if !exists {
			return nil, apperror.NewInvalidInputError(fmt.Sprintf("items[%d].product_id", i), fmt.Sprintf("unknown product %q", item.ProductID))
		}
		if err := cart.Add(product, item.Quantity); err != nil {
			return nil, apperror.NewInvalidInputError(fmt.Sprintf("items[%d].quantity", i), "merged "+err.Error())
		}
	}

	now := s.now()
	created := now.UTC()
	total := cart.Total()

	lines := cart.Lines()
	orderItems := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		orderItems = append(orderItems, entity.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Category:  l.Product.Category,
			Quantity:  l.Quantity,
			UnitPrice: l.Product.Price,
			Total:     l.Total(),
			CreatedAt: created,
		})
	}

	order := &entity.Order{
		Items:     cart.Summary(),
		Time:      now.In(s.loc).Format("15:04"),
		Total:     total,
		CreatedAt: created,
		Lines:     orderItems,
	}

	var table *entity.Table
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		table, err = s.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return apperror.NewNotFoundError("Table")
		}

		order.TableID = table.ID
		order.TableNumber = table.Number()
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("failed to append order: %w", err)
		}

		billing.ApplyOrder(table, total)
		if err := s.tableRepo.Update(ctx, table); err != nil {
			return fmt.Errorf("failed to update table bill: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.OrderConfirmed()
	s.log.Info("order confirmed",
		zap.String("order_id", order.ID.String()),
		zap.String("table", table.Name),
		zap.String("items", order.Items),
		zap.String("total", total.String()),
		zap.String("bill", table.CurrentBill.String()),
	)

	return &OrderSummary{
		Order:   order,
		Summary: order.Items,
		Total:   total,
		Table:   table,
	}, nil
}

// ToggleOrderStatus flips preparing <-> served. No other field changes.
func (s *OrderService) ToggleOrderStatus(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}

		order.Status = order.Status.Toggle()
		return s.orderRepo.UpdateStatus(ctx, order.ID, order.Status)
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("order status toggled", zap.String("order_id", order.ID.String()), zap.Stringer("status", order.Status))
	return order, nil
}

// GetOrder returns an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns orders in insertion order. Without pagination params the
// whole ledger is returned and the result carries no pagination block.
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params == nil {
		params = &repository.OrderFilterParams{}
	}
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	var page *pagination.Pagination
	if params.Pagination != nil {
		page = pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	}
	return pagination.NewPaginatedResult(orders, page), nil
}

// Board returns every order in kitchen display order
func (s *OrderService) Board(ctx context.Context) ([]entity.Order, error) {
	orders, _, err := s.orderRepo.List(ctx, &repository.OrderFilterParams{})
	if err != nil {
		return nil, err
	}
	return entity.SortOrdersForDisplay(orders), nil
}
