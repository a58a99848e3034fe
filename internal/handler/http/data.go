package http

import (
	"net/http"

	"github.com/avrorin/go-task-auth/internal/utils"
	"github.com/avrorin/go-task-auth/models"
)

// signUpRequest is the POST /signup body. The password travels in plaintext
// only as far as this layer; it is hashed before anything is persisted.
type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signInRequest is the POST /signin body.
type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// writeSuccess wraps payload in the success envelope and writes it with the
// given status code.
func writeSuccess(w http.ResponseWriter, payload any, statusCode int) {
	_, _ = utils.WriteJSON(w, models.Envelope{Response: payload, Success: true}, statusCode)
}

// writeFailure wraps payload in the failure envelope and writes it with the
// given status code. payload is a sanitized client-facing message, never a
// raw internal error.
func writeFailure(w http.ResponseWriter, payload any, statusCode int) {
	_, _ = utils.WriteJSON(w, models.Envelope{Response: payload, Success: false}, statusCode)
}

// authResponseFromUser shapes the identity payload shared by signup and
// signin.
func authResponseFromUser(user models.User) models.AuthResponse {
	return models.AuthResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		AccessToken: user.AccessToken,
	}
}
