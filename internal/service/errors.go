package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the admin username/password
	// pair does not match. It never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrUnauthorized is returned when an admin token is missing, malformed,
	// expired, or signed with the wrong secret.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCategory is returned when a category is not one of the
	// supported vehicle classes.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidTripType is returned when a trip type is neither oneWay
	// nor roundTrip.
	ErrInvalidTripType = errors.New("invalid trip type")

	// ErrMissingLocations is returned when origin or destination is empty.
	ErrMissingLocations = errors.New("from and to are required")

	// ErrInvalidRoute is returned when a route write is missing from, to,
	// or distance.
	ErrInvalidRoute = errors.New("from, to, and distance are required")

	// ErrInvalidLocation is returned when the distance service cannot
	// resolve one of the supplied place names.
	ErrInvalidLocation = errors.New("invalid locations")

	// ErrDistanceNotConfigured is returned when no maps API key is
	// configured, so no distance lookup can be attempted.
	ErrDistanceNotConfigured = errors.New("distance service not configured")

	// ErrDistanceUnavailable is returned when the distance service is
	// unreachable or fails.
	ErrDistanceUnavailable = errors.New("distance service unavailable")

	// ErrInvalidBooking is returned when a booking request is missing a
	// required field.
	ErrInvalidBooking = errors.New("name, phone, pickup, drop, and date are required")

	// ErrInvalidEmail is returned when a booking email is malformed.
	ErrInvalidEmail = errors.New("invalid email address")
)
