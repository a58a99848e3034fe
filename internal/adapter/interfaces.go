package adapter

import (
	"context"

	"github.com/avrorin/go-task-auth/models"
)

// ServerAdapter is the client-side contract for talking to the task-auth API.
// Implementations hold the bearer token between calls so the TUI never
// touches transport details.
type ServerAdapter interface {
	// SignUp registers a new account and stores the returned access token on
	// the adapter for subsequent authenticated calls.
	SignUp(ctx context.Context, username, email, password string) (models.AuthResponse, error)

	// SignIn authenticates an existing account and stores the returned access
	// token on the adapter.
	SignIn(ctx context.Context, username, password string) (models.AuthResponse, error)

	// Tasks lists the tasks of the given user, newest first. Requires a token
	// set by SignUp, SignIn, or SetToken.
	Tasks(ctx context.Context, userID int64) ([]models.Task, error)

	// SetToken replaces the bearer token used for authenticated calls
	// (e.g. one restored from the local session cache).
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string
}
