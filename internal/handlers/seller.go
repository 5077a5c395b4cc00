// internal/handlers/seller.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/shop-admin/internal/i18n"
	"github.com/javajoker/shop-admin/internal/models"
	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

type SellerHandler struct {
	sellerService *services.SellerService
}

func NewSellerHandler(sellerService *services.SellerService) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
	}
}

// GET /api/sellers
func (h *SellerHandler) GetSellers(c *gin.Context) {
	sellers, err := h.sellerService.ListSellers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, sellers)
}

// GET /api/sellers/:id
func (h *SellerHandler) GetSeller(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	seller, err := h.sellerService.GetSeller(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if seller == nil {
		utils.NotFoundResponse(c, i18n.KeySellerNotFound, "")
		return
	}

	utils.SuccessResponse(c, seller)
}

// POST /api/sellers
func (h *SellerHandler) CreateSeller(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req models.SellerDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	seller, err := h.sellerService.CreateSeller(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, seller)
}

// PUT /api/sellers/:id
func (h *SellerHandler) UpdateSeller(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	var req models.SellerDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	seller, err := h.sellerService.UpdateSeller(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if seller == nil {
		utils.NotFoundResponse(c, i18n.KeySellerNotFound, "")
		return
	}

	utils.SuccessResponse(c, seller)
}

// DELETE /api/sellers/:id
func (h *SellerHandler) DeleteSeller(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	if err := h.sellerService.DeleteSeller(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GET /api/sellers/count
func (h *SellerHandler) CountSellers(c *gin.Context) {
	count, err := h.sellerService.CountSellers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, count)
}
