package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locshare/internal/geolocation"
	"locshare/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidPhoneNumber),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidLimit),
		errors.Is(err, service.ErrUnknownService):
		return http.StatusBadRequest

	// No position fix - the update was abandoned
	case errors.Is(err, geolocation.ErrPositionUnavailable),
		errors.Is(err, geolocation.ErrPermissionDenied):
		return http.StatusUnprocessableEntity

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
