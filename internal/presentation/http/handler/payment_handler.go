package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/presentation/http/dto/request"
	"github.com/goapub/pos-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles the payment dialog. A refused payment is a normal
// 200 answer with accepted=false and a reason.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func bindPayment(c *gin.Context) (service.PaymentInput, bool) {
	var req request.PaymentRequest
	if !bindJSON(c, &req) {
		return service.PaymentInput{}, false
	}
	return service.PaymentInput{
		DiscountPercent: req.DiscountPercent,
		Cash:            req.Cash,
		Card:            req.Card,
	}, true
}

// Partial handles POST /tables/:id/payments/partial
func (h *PaymentHandler) Partial(c *gin.Context) {
	input, ok := bindPayment(c)
	if !ok {
		return
	}

	result, err := h.paymentService.AttemptPartialPayment(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondPayment(c, result)
}

// Full handles POST /tables/:id/payments/full
func (h *PaymentHandler) Full(c *gin.Context) {
	input, ok := bindPayment(c)
	if !ok {
		return
	}

	result, err := h.paymentService.AttemptFullPayment(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondPayment(c, result)
}

// Quote handles POST /tables/:id/payments/quote
func (h *PaymentHandler) Quote(c *gin.Context) {
	input, ok := bindPayment(c)
	if !ok {
		return
	}

	quote, err := h.paymentService.Quote(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment quote calculated", quote)
}

// List handles GET /tables/:id/payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentService.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

func respondPayment(c *gin.Context, result *service.PaymentResult) {
	if !result.Accepted {
		response.OK(c, "Payment rejected", result)
		return
	}
	response.OK(c, "Payment accepted", result)
}
