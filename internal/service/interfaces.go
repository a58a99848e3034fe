package service

import (
	"context"

	"github.com/avrorin/go-task-auth/models"
)

// AuthService owns the credential lifecycle: signup (password policy, bcrypt
// hashing, one-time token issuance), signin (hash comparison), and bearer
// token verification for the request gate.
type AuthService interface {
	// SignUp validates and registers a new account. The returned user carries
	// the server-assigned ID and the freshly issued access token.
	SignUp(ctx context.Context, username, email, password string) (models.User, error)

	// SignIn authenticates an existing account by username and password.
	SignIn(ctx context.Context, username, password string) (models.User, error)

	// Authenticate resolves an access token to its owning user. It is the
	// lookup behind the authorization middleware.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// TaskService exposes the read-only task listing consumed by the protected
// tasks endpoint.
type TaskService interface {
	// ListUserTasks returns every task owned by userID, newest first.
	ListUserTasks(ctx context.Context, userID int64) ([]models.Task, error)
}
