package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi/internal/repository"
	"taxi/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	c.JSON(mapErrorToHTTPStatus(err), ErrorResponse{Error: errorMessage(err)})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidTripType),
		errors.Is(err, service.ErrMissingLocations),
		errors.Is(err, service.ErrInvalidRoute),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidBooking),
		errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest

	// External distance service misconfigured or unreachable
	case errors.Is(err, service.ErrDistanceNotConfigured),
		errors.Is(err, service.ErrDistanceUnavailable):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

// publicErrors are the sentinels whose text is safe to return to callers.
var publicErrors = []error{
	repository.ErrNotFound,
	service.ErrInvalidCredentials,
	service.ErrMissingCredentials,
	service.ErrUnauthorized,
	service.ErrInvalidCategory,
	service.ErrInvalidTripType,
	service.ErrMissingLocations,
	service.ErrInvalidRoute,
	service.ErrInvalidLocation,
	service.ErrDistanceNotConfigured,
	service.ErrDistanceUnavailable,
	service.ErrInvalidBooking,
	service.ErrInvalidEmail,
}

// errorMessage resolves err to the bare sentinel message. Wrapped detail
// (transport errors, driver errors) stays in logs; callers only ever see
// sentinel text or a generic message.
func errorMessage(err error) string {
	for _, sentinel := range publicErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal server error"
}
