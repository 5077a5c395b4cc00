// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

type CategoryHandler struct {
	productService *services.ProductService
}

func NewCategoryHandler(productService *services.ProductService) *CategoryHandler {
	return &CategoryHandler{
		productService: productService,
	}
}

// GET /api/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /api/categories/:id/products
func (h *CategoryHandler) GetCategoryProducts(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	products, err := h.productService.ListProductsByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}
