package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the floor plan header
type DashboardHandler struct {
	floor *service.DashboardService
}

func NewDashboardHandler(floor *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{floor: floor}
}

// Show handles GET /dashboard
func (h *DashboardHandler) Show(c *gin.Context) {
	stats, err := h.floor.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	response.OK(c, "Floor summary", stats)
}
