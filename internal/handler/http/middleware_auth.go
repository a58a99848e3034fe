package http

import (
	"errors"
	"net/http"

	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/store"
	"github.com/avrorin/go-task-auth/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It reads the "Authorization" header value verbatim — the header carries the
// raw access token with no "Bearer" scheme prefix — and resolves it to a user
// via [service.AuthService.Authenticate]. On a match the request proceeds
// unchanged: the matched user is looked up but deliberately not attached to
// the request context, mirroring the source design where downstream handlers
// never consume the caller's identity.
//
// Rejections:
//   - Missing header or token matching no stored user → 401 with the fixed
//     {"message": "Please, log in"} failure envelope.
//   - Any store failure during the lookup → 400 with the generic failure
//     envelope.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		accessToken := r.Header.Get("Authorization")
		if accessToken == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeFailure(w, models.Message{Message: msgPleaseLogIn}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		_, err := h.services.AuthService.Authenticate(ctx, accessToken)

		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Msg("no user carries the presented token")
				writeFailure(w, models.Message{Message: msgPleaseLogIn}, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during token lookup")
				writeFailure(w, msgGenericFailure, http.StatusBadRequest)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
