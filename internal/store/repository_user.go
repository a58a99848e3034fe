package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on username or email →
//     [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.AccessToken)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.AccessToken, &user.TaskID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}

		return models.User{}, err
	}

	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches the
// argument. An empty result set maps to [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username, "*userRepository.FindUserByUsername")
}

// FindUserByToken retrieves the user record whose access token equals token
// verbatim. An empty result set maps to [ErrNoUserWasFound].
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return r.findUser(ctx, findUserByToken, token, "*userRepository.FindUserByToken")
}

func (r *userRepository) findUser(ctx context.Context, query string, arg string, caller string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.AccessToken, &foundUser.TaskID, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", caller).Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
