// Package adapter implements the client-side HTTP surface of the task-auth
// API: signup, signin, and the authenticated task listing, all answering in
// the server's {response, success} envelope.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/avrorin/go-task-auth/internal/config"
	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/utils"
	"github.com/avrorin/go-task-auth/models"
	"github.com/go-resty/resty/v2"
)

// envelope mirrors the server's uniform response wrapper. Response stays raw
// until the caller knows whether it holds a payload or a failure message.
type envelope struct {
	Response json.RawMessage `json:"response"`
	Success  bool            `json:"success"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests. The header carries the token verbatim; the API uses no "Bearer"
// scheme prefix.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs the credentials to /signup and,
// on success, stores the issued access token for subsequent calls.
func (h *httpServerAdapter) SignUp(ctx context.Context, username, email, password string) (models.AuthResponse, error) {
	return h.authRequest(ctx, "/signup", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

// SignIn implements [ServerAdapter]. It POSTs the credentials to /signin and,
// on success, stores the issued access token for subsequent calls.
func (h *httpServerAdapter) SignIn(ctx context.Context, username, password string) (models.AuthResponse, error) {
	return h.authRequest(ctx, "/signin", map[string]string{
		"username": username,
		"password": password,
	})
}

func (h *httpServerAdapter) authRequest(ctx context.Context, path string, body map[string]string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request failed")
		return models.AuthResponse{}, fmt.Errorf("request to %s failed: %w", path, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err := json.Unmarshal(env.Response, &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("error decoding auth payload: %w", err)
	}

	h.SetToken(auth.AccessToken)

	return auth, nil
}

// Tasks implements [ServerAdapter]. It GETs /tasks/{userID} with the stored
// access token in the Authorization header.
func (h *httpServerAdapter) Tasks(ctx context.Context, userID int64) ([]models.Task, error) {
	if h.token == "" {
		return nil, ErrNoToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", h.token).
		Get(fmt.Sprintf("/tasks/%d", userID))
	if err != nil {
		h.logger.Err(err).Int64("userID", userID).Msg("task listing request failed")
		return nil, fmt.Errorf("task listing request failed: %w", err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(env.Response, &tasks); err != nil {
		return nil, fmt.Errorf("error decoding task payload: %w", err)
	}

	return tasks, nil
}

// decodeEnvelope unwraps the uniform {response, success} envelope. A failure
// envelope becomes an [APIError] carrying the server's message, whether the
// response field holds a bare string or a {"message": ...} object.
func decodeEnvelope(resp *resty.Response) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return envelope{}, fmt.Errorf("error decoding response envelope: %w", err)
	}

	if !env.Success {
		return envelope{}, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    failureMessage(env.Response),
		}
	}

	return env, nil
}

func failureMessage(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var obj models.Message
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	return string(raw)
}
