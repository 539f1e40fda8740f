package theme

import (
	"errors"
	"net/http"
)

// ErrInvalid indicates a preference outside light, dark, and system.
var ErrInvalid = errors.New("theme must be light, dark, or system")

// MapHTTPStatus maps theme errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
