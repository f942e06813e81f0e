package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/presentation/http/dto/request"
	"github.com/goapub/pos-api/internal/presentation/http/dto/response"
)

// TableHandler handles floor plan requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List handles GET /tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.ListTables(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables retrieved successfully", tables)
}

// Get handles GET /tables/:id
func (h *TableHandler) Get(c *gin.Context) {
	table, err := h.tableService.GetTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table retrieved successfully", table)
}

// ToggleOccupancy handles POST /tables/:id/occupancy/toggle
func (h *TableHandler) ToggleOccupancy(c *gin.Context) {
	table, err := h.tableService.ToggleOccupancy(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table occupancy updated", table)
}

// Move handles PUT /tables/:id/position
func (h *TableHandler) Move(c *gin.Context) {
	var req request.MoveTableRequest
	if !bindJSON(c, &req) {
		return
	}

	table, err := h.tableService.MoveTable(c.Request.Context(), c.Param("id"), service.MoveInput{
		X:      *req.X,
		Y:      *req.Y,
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table moved", table)
}
