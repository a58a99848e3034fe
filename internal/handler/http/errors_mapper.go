package http

import (
	"errors"
	"net/http"

	"github.com/avrorin/go-task-auth/internal/service"
	"github.com/avrorin/go-task-auth/internal/store"
)

// Client-facing failure messages. The signin mismatch message is shared by
// "unknown username" and "wrong password" so the two stay indistinguishable.
const (
	msgPleaseLogIn      = "Please, log in"
	msgPasswordTooShort = "Password must be at least 5 characters long"
	msgCredentialsTaken = "Username or email is already taken"
	msgCredentialsWrong = "Username or password doesn't match"
	msgGenericFailure   = "Something went wrong"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusNotFound,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:    http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	service.ErrPasswordTooShort: msgPasswordTooShort,
	service.ErrWrongPassword:    msgCredentialsWrong,

	store.ErrUserAlreadyExists: msgCredentialsTaken,
	store.ErrNoUserWasFound:    msgCredentialsWrong,
}

// statusFromError maps a service or store error to its HTTP status. Anything
// outside the closed sentinel set — driver failures included — answers 400,
// the blanket failure status of this API.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}

// clientMessageFromError maps an error to its sanitized client-facing
// message. Raw internal errors never reach the wire.
func clientMessageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgGenericFailure
}
