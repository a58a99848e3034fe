package tui

import "github.com/avrorin/go-task-auth/models"

// authDoneMsg is produced by the async signup/signin commands on success.
type authDoneMsg struct {
	auth models.AuthResponse
}

// tasksLoadedMsg carries a fresh task listing for the current user.
type tasksLoadedMsg struct {
	tasks []models.Task
}

// tokenCopiedMsg signals that the access token landed on the clipboard.
type tokenCopiedMsg struct{}

// signedOutMsg signals that the cached session was cleared.
type signedOutMsg struct{}

// errMsg wraps any failure from an async command for display.
type errMsg struct {
	err error
}
