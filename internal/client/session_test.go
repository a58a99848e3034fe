package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avrorin/go-task-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSessionStore открывает кэш сессии во временном файле
func newTestSessionStore(t *testing.T) *SessionStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.db")
	store, err := NewSessionStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestNewSessionStore_EmptyPathUsesMemory(t *testing.T) {
	store, err := NewSessionStore("")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	want := models.ClientSession{
		UserID:      7,
		Username:    "alice",
		Email:       "alice@example.com",
		AccessToken: "cafebabe",
	}

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Username, got.Username)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.AccessToken, got.AccessToken)
	assert.False(t, got.SavedAt.IsZero())
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	store := newTestSessionStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStore_SaveReplacesPrevious(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.ClientSession{UserID: 1, Username: "alice", Email: "a@example.com", AccessToken: "old"}))
	require.NoError(t, store.Save(ctx, models.ClientSession{UserID: 2, Username: "bob", Email: "b@example.com", AccessToken: "new"}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "new", got.AccessToken)
}

func TestSessionStore_Clear(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.ClientSession{UserID: 1, Username: "alice", Email: "a@example.com", AccessToken: "tok"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionStore_ClearEmptyIsNoOp(t *testing.T) {
	store := newTestSessionStore(t)

	require.NoError(t, store.Clear(context.Background()))
}

func TestSessionStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, err := NewSessionStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, models.ClientSession{UserID: 7, Username: "alice", Email: "a@example.com", AccessToken: "tok"}))
	require.NoError(t, store.Close())

	reopened, err := NewSessionStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "tok", got.AccessToken)
}
