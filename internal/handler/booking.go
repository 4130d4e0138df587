package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi/internal/domain"
	"taxi/internal/service"
)

// BookingHandler handles HTTP requests for ride bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest is the HTTP request body for submitting a booking.
type BookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Pickup      string `json:"pickup"`
	Drop        string `json:"drop"`
	VehicleType string `json:"vehicleType"`
	Date        string `json:"date"`
}

// BookingResponse is the HTTP response for an accepted booking.
type BookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

// Create handles POST /api/booking
func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.bookingService.Submit(domain.Booking{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Pickup:      req.Pickup,
		Drop:        req.Drop,
		VehicleType: req.VehicleType,
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, BookingResponse{
		Success:   true,
		Message:   result.Message,
		BookingID: result.BookingID,
	})
}
