package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/avrorin/go-task-auth/internal/adapter"
	"github.com/avrorin/go-task-auth/internal/config"
	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/avrorin/go-task-auth/internal/tui"
	"github.com/avrorin/go-task-auth/models"
)

// App owns the terminal client's collaborators and their lifecycles.
type App struct {
	adapter  adapter.ServerAdapter
	sessions *SessionStore
	logger   *logger.Logger
}

// NewApp constructs the client from its configuration: the HTTP adapter
// pointed at the API server and the local session cache.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessions, err := NewSessionStore(cfg.Storage.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	return &App{
		adapter:  serverAdapter,
		sessions: sessions,
		logger:   log,
	}, nil
}

// Run restores a cached session when one exists, hands the adapter its
// token, and enters the TUI. It blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()
	defer a.sessions.Close()

	var restored *models.ClientSession

	session, err := a.sessions.Load(ctx)
	switch {
	case err == nil:
		a.adapter.SetToken(session.AccessToken)
		restored = &session
		a.logger.Info().Str("username", session.Username).Msg("restored cached session")
	case errors.Is(err, ErrNoSession):
		// first run or signed out, start at the welcome screen
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	return tui.Run(ctx, a.adapter, a.sessions, restored)
}
