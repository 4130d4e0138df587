package domain

// Booking is a ride booking request. Bookings are validated and acknowledged
// but not persisted in this revision.
type Booking struct {
	Name        string
	Email       string
	Phone       string
	Pickup      string
	Drop        string
	VehicleType string
	Date        string
}
