package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/service"
	"github.com/avrorin/go-task-auth/internal/store"
	"github.com/avrorin/go-task-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		authenticateFn func(ctx context.Context, token string) (models.User, error)
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "token matching a stored user → next called",
			authHeader: "sometoken",
			authenticateFn: func(_ context.Context, token string) (models.User, error) {
				assert.Equal(t, "sometoken", token, "header value must be passed verbatim")
				return models.User{UserID: 42, Username: "alice"}, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "token matching no user → 401",
			authHeader: "unknown-token",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, store.ErrNoUserWasFound
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "store failure during lookup → 400",
			authHeader: "sometoken",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, errors.New("db connection lost")
			},
			expectedStatus: http.StatusBadRequest,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.authenticateFn != nil {
				authSvc = &mockAuthService{authenticateFn: tt.authenticateFn}
			} else {
				// Authenticate не должна вызваться — header пустой
				authSvc = &mockAuthService{authenticateFn: func(_ context.Context, _ string) (models.User, error) {
					t.Fatal("Authenticate should not be called")
					return models.User{}, nil
				}}
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

// ---- Тело ответа при ошибках ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header answers the fixed log-in message", func(t *testing.T) {
		rr := executeAuth(h, "", next)

		env := decodeEnvelope(t, rr.Body.String())
		assert.False(t, env.Success)

		payload, ok := env.Response.(map[string]any)
		require.True(t, ok, "response should be the message object")
		assert.Equal(t, msgPleaseLogIn, payload["message"])
	})

	t.Run("unknown token answers the same message", func(t *testing.T) {
		rr := executeAuth(h, "unknown-token", next)

		env := decodeEnvelope(t, rr.Body.String())
		assert.False(t, env.Success)

		payload, ok := env.Response.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, msgPleaseLogIn, payload["message"])
	})
}

// ---- Токен не попадает в контекст ----

// TestAuth_UserNotAttachedToContext confirms the middleware only gates the
// request: downstream handlers never receive the matched user.
func TestAuth_UserNotAttachedToContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 99}, nil
		},
	})

	middleware := h.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "sometoken")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, originalCtx, req.Context(), "request context must pass through unchanged")
}

// ---- Concurrent requests — нет гонок ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 7}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/home", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
