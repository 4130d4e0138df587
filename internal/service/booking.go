package service

import (
	"strings"

	"github.com/google/uuid"

	"taxi/internal/domain"
)

// BookingService validates booking requests. Bookings are acknowledged with
// a reference id but not persisted in this revision.
type BookingService struct{}

// NewBookingService creates a new BookingService.
func NewBookingService() *BookingService {
	return &BookingService{}
}

// BookingResult is the acknowledgement for an accepted booking.
type BookingResult struct {
	BookingID string
	Message   string
}

// Submit validates a booking request and returns an acknowledgement.
func (s *BookingService) Submit(booking domain.Booking) (*BookingResult, error) {
	if booking.Name == "" || booking.Phone == "" || booking.Pickup == "" ||
		booking.Drop == "" || booking.Date == "" {
		return nil, ErrInvalidBooking
	}

	if booking.Email != "" && !validEmail(booking.Email) {
		return nil, ErrInvalidEmail
	}

	if booking.VehicleType != "" && !domain.IsValidCategory(domain.Category(booking.VehicleType)) {
		return nil, ErrInvalidCategory
	}

	return &BookingResult{
		BookingID: uuid.New().String(),
		Message:   "booking request received",
	}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	// Needs a local part, a host part, and a dot in the host.
	return at > 0 && strings.Contains(email[at+1:], ".")
}
