package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken is returned by authenticated calls when no bearer token has
	// been set on the adapter.
	ErrNoToken = errors.New("no access token is set")
)

// APIError carries a failure envelope returned by the server: the HTTP status
// code and the client-facing message from the response field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.StatusCode, e.Message)
}
