package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/goapub/pos-api/internal/domain/repository"
	"github.com/goapub/pos-api/internal/presentation/http/dto/request"
	"github.com/goapub/pos-api/internal/presentation/http/dto/response"
	"github.com/goapub/pos-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Confirm handles POST /tables/:id/orders
func (h *OrderHandler) Confirm(c *gin.Context) {
	var req request.ConfirmOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]service.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	summary, err := h.orderService.ConfirmOrder(c.Request.Context(), c.Param("id"), items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order confirmed", summary)
}

// ToggleStatus handles POST /orders/:id/toggle-status
func (h *OrderHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.ToggleOrderStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles GET /orders. Without page or per_page the whole ledger is
// returned in insertion order.
func (h *OrderHandler) List(c *gin.Context) {
	var req request.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		TableID:    req.TableID,
		Pagination: pagination.FromQuery(req.Page, req.PerPage, c.Query("page") != "" || c.Query("per_page") != ""),
	}
	if req.Status != "" {
		status := enum.OrderStatusPreparing
		if req.Status == enum.OrderStatusServed.String() {
			status = enum.OrderStatusServed
		}
		params.Status = &status
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Board handles GET /orders/board
func (h *OrderHandler) Board(c *gin.Context) {
	orders, err := h.orderService.Board(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(orders)))
	response.OK(c, "Kitchen board retrieved successfully", orders)
}
