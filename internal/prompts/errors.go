package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrNotFound  = errors.New("prompt not found")
	ErrInvalid   = errors.New("title and text are required")
	ErrNotReady  = errors.New("prompt library not loaded")
	ErrStorage   = errors.New("backing store failure")
	ErrBadFilter = errors.New("invalid filter")
	ErrNoChange  = errors.New("update sets no fields")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalid), errors.Is(err, ErrBadFilter), errors.Is(err, ErrNoChange):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrStorage):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
