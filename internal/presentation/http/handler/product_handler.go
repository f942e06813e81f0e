package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/goapub/pos-api/internal/application/service"
	"github.com/goapub/pos-api/internal/presentation/http/dto/response"
)

// the catalog is loaded once at startup and never changes while running
const menuCacheControl = "public, max-age=300"

type ProductHandler struct {
	menu *service.ProductService
}

func NewProductHandler(menu *service.ProductService) *ProductHandler {
	return &ProductHandler{menu: menu}
}

// List handles GET /products. ?category= narrows it to one menu tab.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.menu.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", menuCacheControl)
	response.OK(c, "Menu", products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.menu.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", menuCacheControl)
	response.OK(c, "Product", product)
}
