package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi/internal/domain"
	"taxi/internal/service"
)

// PricingHandler handles HTTP requests for pricing.
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// PricingItem is the flattened client shape of a pricing record, used in
// both list responses and bulk update requests.
type PricingItem struct {
	Type       string  `json:"type"`
	Rate       float64 `json:"rate"`
	FixedPrice float64 `json:"fixedPrice"`
}

// UpdatePricingResponse is the HTTP response for a bulk pricing update.
type UpdatePricingResponse struct {
	Message string            `json:"message"`
	Data    []*domain.Pricing `json:"data"`
}

// GetAll handles GET /api/pricing
func (h *PricingHandler) GetAll(c *gin.Context) {
	views, err := h.pricingService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]PricingItem, 0, len(views))
	for _, v := range views {
		items = append(items, PricingItem{
			Type:       v.Type,
			Rate:       v.Rate,
			FixedPrice: v.FixedPrice,
		})
	}
	respondJSON(c, http.StatusOK, items)
}

// GetByCategory handles GET /api/pricing/:category
func (h *PricingHandler) GetByCategory(c *gin.Context) {
	pricing, err := h.pricingService.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, pricing)
}

// Update handles PUT /api/pricing
func (h *PricingHandler) Update(c *gin.Context) {
	var items []PricingItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be an array of pricing objects"})
		return
	}

	updates := make([]service.PricingUpdate, 0, len(items))
	for _, item := range items {
		updates = append(updates, service.PricingUpdate{
			Type:       item.Type,
			Rate:       item.Rate,
			FixedPrice: item.FixedPrice,
		})
	}

	results, err := h.pricingService.UpsertMany(c.Request.Context(), updates)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, UpdatePricingResponse{
		Message: "Pricing updated successfully",
		Data:    results,
	})
}
