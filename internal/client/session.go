// Package client wires the terminal client: the HTTP adapter towards the
// API server, the local SQLite session cache, and the TUI on top of both.
package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avrorin/go-task-auth/models"
	_ "github.com/mattn/go-sqlite3" // register the sqlite3 database/sql driver
)

// ErrNoSession is returned by [SessionStore.Load] when no session has been
// cached yet (or the cache was cleared by a sign-out).
var ErrNoSession = errors.New("no cached session")

const createSessionTable = `CREATE TABLE IF NOT EXISTS session (
    id           INTEGER PRIMARY KEY CHECK (id = 1),
    user_id      INTEGER   NOT NULL,
    username     TEXT      NOT NULL,
    email        TEXT      NOT NULL,
    access_token TEXT      NOT NULL,
    saved_at     TIMESTAMP NOT NULL
);`

// SessionStore caches at most one signed-in session in a local SQLite file.
// The single-row constraint keeps the cache honest: saving a new session
// always replaces the previous one.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore opens (and if needed initialises) the session cache at
// path. An empty path falls back to an in-memory database, useful in tests.
func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening session cache: %w", err)
	}

	if _, err := db.Exec(createSessionTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initialising session cache: %w", err)
	}

	return &SessionStore{db: db}, nil
}

// Save caches the session, replacing any previously cached one.
func (s *SessionStore) Save(ctx context.Context, session models.ClientSession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO session (id, user_id, username, email, access_token, saved_at)
         VALUES (1, ?, ?, ?, ?, ?);`,
		session.UserID, session.Username, session.Email, session.AccessToken, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// Load returns the cached session or [ErrNoSession].
func (s *SessionStore) Load(ctx context.Context) (models.ClientSession, error) {
	var session models.ClientSession
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, username, email, access_token, saved_at FROM session WHERE id = 1;`,
	)

	if err := row.Scan(&session.UserID, &session.Username, &session.Email, &session.AccessToken, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClientSession{}, ErrNoSession
		}

		return models.ClientSession{}, fmt.Errorf("error loading session: %w", err)
	}

	return session, nil
}

// Clear removes the cached session. Clearing an empty cache is a no-op.
func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session;`); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *SessionStore) Close() error {
	return s.db.Close()
}
