package http

import (
	"context"
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

// ---- Mock: AuthService ----

// mockAuthSvc accepts the token "valid-token" and rejects everything else.
type mockAuthSvc struct{}

func (m *mockAuthSvc) SignUp(_ context.Context, username, email, _ string) (models.User, error) {
	return models.User{UserID: 1, Username: username, Email: email, AccessToken: "valid-token"}, nil
}

func (m *mockAuthSvc) SignIn(_ context.Context, username, _ string) (models.User, error) {
	return models.User{UserID: 1, Username: username, AccessToken: "valid-token"}, nil
}

func (m *mockAuthSvc) Authenticate(_ context.Context, token string) (models.User, error) {
	if token == "valid-token" {
		return models.User{UserID: 1, Username: "alice"}, nil
	}
	return models.User{}, store.ErrNoUserWasFound
}

// ---- Mock: TaskService ----

type mockTaskSvc struct{}

func (m *mockTaskSvc) ListUserTasks(_ context.Context, userID int64) ([]models.Task, error) {
	return []models.Task{{TaskID: 1, UserID: userID, Description: "buy milk"}}, nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthSvc{},
			TaskService: &mockTaskSvc{},
		},
	}
	return h.Init()
}

// ---- Public routes ----

func TestInit_StartRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Start", rr.Body.String())
}

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodPost, "/signup"},
		{http.MethodPost, "/signin"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"route should be reachable without a token: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/home"},
		{http.MethodGet, "/tasks/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), msgPleaseLogIn)
		})
	}
}

// ---- Protected routes: pass with a valid token ----

func TestInit_ProtectedRoutes_WithValidToken(t *testing.T) {
	router := newTestRouter(t)

	t.Run("GET /home", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		req.Header.Set("Authorization", "valid-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Home", rr.Body.String())
	})

	t.Run("GET /tasks/{userID}", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks/1", nil)
		req.Header.Set("Authorization", "valid-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "buy milk")
	})
}

// ---- Wrong token is rejected before the handler runs ----

func TestInit_ProtectedRoutes_WrongToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks/1", nil)
	req.Header.Set("Authorization", "forged-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "buy milk")
}
