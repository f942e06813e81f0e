package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/pkg/apperror"
	"github.com/goapub/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// requestID prefers the id set by the logger middleware, then the inbound
// header. A fresh one is minted for requests that bypassed both.
func requestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

func write(c *gin.Context, status int, body APIResponse) {
	body.Meta = &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID(c),
	}
	c.JSON(status, body)
}

func OK(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	write(c, http.StatusCreated, APIResponse{Success: true, Message: message, Data: data})
}

// SuccessWithPagination answers with a listing. The pagination block is null
// when the caller did not ask for a page.
func SuccessWithPagination[T any](c *gin.Context, statusCode int, message string, result *pagination.PaginatedResult[T]) {
	write(c, statusCode, APIResponse{Success: true, Message: message, Data: result})
}

// Error maps err onto its AppError status. Anything unrecognised is a 500.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Code >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	write(c, appErr.Code, APIResponse{Message: appErr.Message, Errors: appErr.Errors})
}

// ValidationError answers 422 with one entry per offending field
func ValidationError(c *gin.Context, fields []apperror.FieldError) {
	write(c, http.StatusUnprocessableEntity, APIResponse{Message: "Validation failed", Errors: fields})
}

func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, APIResponse{Message: message})
}

func TooManyRequests(c *gin.Context, message string) {
	write(c, http.StatusTooManyRequests, APIResponse{Message: message})
}
