// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aleksei Avrorin

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avrorin/go-task-auth/internal/config"
	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(w http.ResponseWriter, status int, response any, success bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Envelope{Response: response, Success: success})
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_AddressNormalization(t *testing.T) {
	log := logger.NewClientLogger("test")

	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full URL", address: "http://localhost:8080", wantErr: false},
		{name: "host and port without scheme", address: "localhost:8080", wantErr: false},
		{name: "trailing slash", address: "http://localhost:8080/", wantErr: false},
		{name: "surrounding whitespace", address: "  localhost:8080  ", wantErr: false},
		{name: "empty address", address: "", wantErr: true},
		{name: "whitespace only", address: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, log)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid adapter http address")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNormalizeBaseURL_StripsTrailingSlash(t *testing.T) {
	got, err := normalizeBaseURL("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

// ── SignUp ──────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "s3cret", body["password"])

		writeEnvelope(w, http.StatusCreated, models.AuthResponse{
			UserID:      1,
			Username:    "alice",
			Email:       "alice@example.com",
			AccessToken: "deadbeef",
		}, true)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignUp(context.Background(), "alice", "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "deadbeef", got.AccessToken)
	assert.Equal(t, "deadbeef", a.Token(), "токен должен сохраниться в адаптере")
}

func TestSignUp_FailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, "Username or email is already taken", false)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), "alice", "alice@example.com", "s3cret")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Username or email is already taken", apiErr.Message)
	assert.Empty(t, a.Token())
}

// ── SignIn ──────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signin", r.URL.Path)

		writeEnvelope(w, http.StatusOK, models.AuthResponse{
			UserID:      7,
			Username:    "bob",
			AccessToken: "cafebabe",
		}, true)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignIn(context.Background(), "bob", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "cafebabe", a.Token())
}

func TestSignIn_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, "Username or password doesn't match", false)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), "bob", "wrong")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Username or password doesn't match", apiErr.Message)
}

func TestSignIn_MalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), "bob", "s3cret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding response envelope")
}

// ── Tasks ───────────────────────────────────────────────────────────────────

func TestTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks/7", r.URL.Path)
		// токен уходит в заголовок как есть, без префикса Bearer
		assert.Equal(t, "cafebabe", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusCreated, []models.Task{
			{TaskID: 2, UserID: 7, Description: "buy milk"},
			{TaskID: 1, UserID: 7, Description: "water the plants"},
		}, true)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("cafebabe")

	got, err := a.Tasks(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "buy milk", got[0].Description)
	assert.Equal(t, "water the plants", got[1].Description)
}

func TestTasks_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the server without a token")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Tasks(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestTasks_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, models.Message{Message: "Please, log in"}, false)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale-token")

	_, err := a.Tasks(context.Background(), 7)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	// сообщение достаётся и из объектной формы {"message": ...}
	assert.Equal(t, "Please, log in", apiErr.Message)
}

// ── SetToken ────────────────────────────────────────────────────────────────

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := &httpServerAdapter{}
	a.SetToken("  cafebabe \n")
	assert.Equal(t, "cafebabe", a.Token())
}

// ── APIError ────────────────────────────────────────────────────────────────

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Username or password doesn't match"}
	assert.Equal(t, "server answered 404: Username or password doesn't match", err.Error())
}

func TestFailureMessage_Forms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare string", raw: `"Something went wrong"`, want: "Something went wrong"},
		{name: "message object", raw: `{"message":"Please, log in"}`, want: "Please, log in"},
		{name: "unknown shape falls back to raw", raw: `[1,2,3]`, want: "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failureMessage(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}
