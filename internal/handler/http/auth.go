package http

import (
	"encoding/json"
	"net/http"

	"github.com/avrorin/go-task-auth/internal/logger"
)

// start answers the unauthenticated health route.
func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Start"))
}

// home answers the token-gated acknowledgment route. The auth middleware has
// already verified the bearer token by the time this runs.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Home"))
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, msgGenericFailure, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("signup failed")
		writeFailure(w, clientMessageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user signed up")

	writeSuccess(w, authResponseFromUser(registeredUser), http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, msgGenericFailure, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("signin failed")
		writeFailure(w, clientMessageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user signed in")

	writeSuccess(w, authResponseFromUser(foundUser), http.StatusOK)
}
