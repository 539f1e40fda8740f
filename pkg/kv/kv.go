// Package kv defines the key-value backing store that persists application state,
// with bbolt, SQL, Azure Blob, Redis, and in-memory implementations.
package kv

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

var (
	// ErrNotFound indicates no value is stored under the requested key.
	ErrNotFound = errors.New("key not found")
	// ErrEmptyKey indicates an empty key was provided.
	ErrEmptyKey = errors.New("key must not be empty")
	// ErrInvalidKey indicates the key contains a path traversal segment.
	ErrInvalidKey = errors.New("key contains invalid path segment")
	// ErrNotStarted indicates the store was used before Start prepared it.
	ErrNotStarted = errors.New("store not started")
)

// Store is the asynchronous get/set/remove contract consumed by domain systems.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// System is a Store that participates in the application lifecycle.
type System interface {
	Store
	// Name returns the driver name backing the store.
	Name() string
	// Start prepares the store before returning and registers shutdown cleanup.
	Start(lc *lifecycle.Coordinator) error
}

// MapHTTPStatus maps store errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmptyKey) || errors.Is(err, ErrInvalidKey) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotStarted) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
