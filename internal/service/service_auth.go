package service

import (
	"context"
	"fmt"

	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/store"
	"github.com/avrorin/go-task-auth/internal/utils"
	"github.com/avrorin/go-task-auth/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the signup password policy: anything shorter is
// rejected before a single byte reaches the store.
const MinPasswordLength = 5

// authService is the concrete implementation of [AuthService].
// It handles user registration, credential verification, and access-token
// issuance using a UserRepository for persistence and bcrypt for password
// hashing. bcrypt embeds a fresh random salt into every hash, so equal
// passwords still produce distinct stored values.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// It enforces the password length policy, hashes the password with bcrypt,
// issues the account's one-time access token, and delegates persistence to
// the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or email is empty.
//   - ErrPasswordTooShort if the password has fewer than [MinPasswordLength]
//     characters; no record is created in that case.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUserAlreadyExists).
func (a *authService) SignUp(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" {
		log.Error().Str("username", username).Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if len(password) < MinPasswordLength {
		log.Error().Str("username", username).Msg("password below minimum length")
		return models.User{}, ErrPasswordTooShort
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	token, err := utils.GenerateAccessToken()
	if err != nil {
		log.Err(err).Msg("access token generation failed")
		return models.User{}, fmt.Errorf("access token generation failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		AccessToken:  token,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn authenticates an existing user.
//
// It looks up the account by username and compares the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated user record (including the access token issued at
// signup) or:
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
//
// Empty credentials get no special treatment: an unknown (or empty) username
// fails the lookup and an empty password fails the hash comparison, so both
// end up in the same credential-mismatch response as any other bad signin.
// The endpoint layer maps a missing user and a wrong password to the same
// client-facing response so the two cases stay indistinguishable.
func (a *authService) SignIn(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// Authenticate resolves an access token to its owning user.
//
// The token is compared verbatim against stored values; there is no parsing,
// expiry, or rotation. Returns a wrapped store.ErrNoUserWasFound when no user
// carries the token.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		log.Err(err).Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return foundUser, nil
}
