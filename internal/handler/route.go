package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi/internal/service"
)

// RouteHandler handles HTTP requests for routes.
type RouteHandler struct {
	routeService *service.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(routeService *service.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

// RouteRequest is the HTTP request body for creating or updating a route.
// Price is a pointer so that a missing price can be told apart from zero.
type RouteRequest struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Time     string   `json:"time"`
	Price    *float64 `json:"price"`
	Distance float64  `json:"distance"`
}

// RouteListItem is the flattened route shape returned by the list endpoint.
type RouteListItem struct {
	ID       string  `json:"_id"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Time     string  `json:"time"`
	Price    float64 `json:"price"`
	Distance float64 `json:"distance"`
}

// DeleteRouteResponse is the HTTP response for deleting a route.
type DeleteRouteResponse struct {
	Message string `json:"message"`
}

// GetAll handles GET /api/routes
func (h *RouteHandler) GetAll(c *gin.Context) {
	views, err := h.routeService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]RouteListItem, 0, len(views))
	for _, v := range views {
		items = append(items, RouteListItem{
			ID:       v.ID,
			From:     v.From,
			To:       v.To,
			Time:     v.Time,
			Price:    v.Price,
			Distance: v.Distance,
		})
	}
	respondJSON(c, http.StatusOK, items)
}

// GetByID handles GET /api/routes/:id
func (h *RouteHandler) GetByID(c *gin.Context) {
	route, err := h.routeService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, route)
}

// Create handles POST /api/routes
func (h *RouteHandler) Create(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Price == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "price is required"})
		return
	}

	route, err := h.routeService.Create(c.Request.Context(), service.RouteInput{
		From:     req.From,
		To:       req.To,
		Time:     req.Time,
		Price:    *req.Price,
		Distance: req.Distance,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, route)
}

// Update handles PUT /api/routes/:id
func (h *RouteHandler) Update(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Price == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "price is required"})
		return
	}

	route, err := h.routeService.Update(c.Request.Context(), c.Param("id"), service.RouteInput{
		From:     req.From,
		To:       req.To,
		Time:     req.Time,
		Price:    *req.Price,
		Distance: req.Distance,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, route)
}

// Delete handles DELETE /api/routes/:id
func (h *RouteHandler) Delete(c *gin.Context) {
	if err := h.routeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, DeleteRouteResponse{Message: "Route deleted successfully"})
}
