package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/avrorin/go-task-auth/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Uniqueness of username and email is enforced at the database layer: two
// concurrent CreateUser calls with the same username race at the UNIQUE
// constraint and exactly one of them receives [ErrUserAlreadyExists].
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (UserID, CreatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken returns the user whose access token equals token
	// verbatim, or [ErrNoUserWasFound].
	FindUserByToken(ctx context.Context, token string) (models.User, error)
}

// TaskRepository is the read-only persistence contract for tasks.
type TaskRepository interface {
	// FindTasksByUser returns every task referencing userID, newest first.
	// The result is an empty slice (not nil) when the user has no tasks.
	FindTasksByUser(ctx context.Context, userID int64) ([]models.Task, error)
}
