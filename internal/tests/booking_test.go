package tests

import (
	"testing"

	"taxi/internal/domain"
	"taxi/internal/service"
)

func validBooking() domain.Booking {
	return domain.Booking{
		Name:        "Asha Kumar",
		Email:       "asha@example.com",
		Phone:       "+91 98400 00000",
		Pickup:      "Chennai",
		Drop:        "Pondicherry",
		VehicleType: "sedan",
		Date:        "2026-09-15",
	}
}

func TestBookingSubmit_Accepted(t *testing.T) {
	bookingService := service.NewBookingService()

	result, err := bookingService.Submit(validBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BookingID == "" {
		t.Error("expected a booking reference id")
	}
}

func TestBookingSubmit_RequiredFields(t *testing.T) {
	bookingService := service.NewBookingService()

	testCases := []struct {
		name   string
		mutate func(*domain.Booking)
	}{
		{"missing name", func(b *domain.Booking) { b.Name = "" }},
		{"missing phone", func(b *domain.Booking) { b.Phone = "" }},
		{"missing pickup", func(b *domain.Booking) { b.Pickup = "" }},
		{"missing drop", func(b *domain.Booking) { b.Drop = "" }},
		{"missing date", func(b *domain.Booking) { b.Date = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			booking := validBooking()
			tc.mutate(&booking)

			_, err := bookingService.Submit(booking)
			if err != service.ErrInvalidBooking {
				t.Errorf("expected ErrInvalidBooking, got %v", err)
			}
		})
	}
}

func TestBookingSubmit_EmailOptionalButValidated(t *testing.T) {
	bookingService := service.NewBookingService()

	booking := validBooking()
	booking.Email = ""
	if _, err := bookingService.Submit(booking); err != nil {
		t.Errorf("empty email should be accepted, got %v", err)
	}

	booking.Email = "not-an-email"
	if _, err := bookingService.Submit(booking); err != service.ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestBookingSubmit_VehicleType(t *testing.T) {
	bookingService := service.NewBookingService()

	booking := validBooking()
	booking.VehicleType = "helicopter"
	if _, err := bookingService.Submit(booking); err != service.ErrInvalidCategory {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}

	booking.VehicleType = ""
	if _, err := bookingService.Submit(booking); err != nil {
		t.Errorf("empty vehicle type should be accepted, got %v", err)
	}
}
