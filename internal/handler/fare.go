package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi/internal/domain"
	"taxi/internal/service"
)

// FareHandler handles HTTP requests for fare calculation and raw distance
// lookup.
type FareHandler struct {
	fareService *service.FareService
	distance    service.DistanceLookup
}

// NewFareHandler creates a new FareHandler. distance may be nil when the
// maps API key is unconfigured.
func NewFareHandler(fareService *service.FareService, distance service.DistanceLookup) *FareHandler {
	return &FareHandler{fareService: fareService, distance: distance}
}

// CalculateFareRequest is the HTTP request body for fare calculation.
type CalculateFareRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Category string `json:"category"`
	TripType string `json:"tripType"`
}

// CalculateFareResponse is the HTTP response for fare calculation.
type CalculateFareResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Fare       float64 `json:"fare"`
}

// DistanceRequest is the HTTP request body for a raw distance lookup.
type DistanceRequest struct {
	Pickup string `json:"pickup"`
	Drop   string `json:"drop"`
}

// DistanceResponse is the HTTP response for a raw distance lookup.
type DistanceResponse struct {
	Distance float64 `json:"distance"`
	Text     string  `json:"text"`
}

// CalculateFare handles POST /api/calculate-fare
func (h *FareHandler) CalculateFare(c *gin.Context) {
	var req CalculateFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.fareService.Calculate(c.Request.Context(), service.FareRequest{
		From:     req.From,
		To:       req.To,
		Category: domain.Category(req.Category),
		TripType: domain.TripType(req.TripType),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CalculateFareResponse{
		DistanceKm: result.DistanceKm,
		Fare:       result.Fare,
	})
}

// GetDistance handles POST /api/distance
func (h *FareHandler) GetDistance(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Pickup == "" || req.Drop == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Pickup & Drop required"})
		return
	}

	if h.distance == nil {
		respondError(c, service.ErrDistanceNotConfigured)
		return
	}

	km, text, err := h.distance.Distance(c.Request.Context(), req.Pickup, req.Drop)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, DistanceResponse{Distance: km, Text: text})
}
