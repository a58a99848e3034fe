// Package tui implements the terminal client on top of Bubble Tea: a welcome
// menu, signup and signin forms, and the authenticated task listing for the
// signed-in user.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/avrorin/go-task-auth/internal/adapter"
	"github.com/avrorin/go-task-auth/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenSignUp
	screenSignIn
	screenTasks
)

// SessionStore is the slice of the client's session cache the TUI needs:
// persisting a fresh signin and clearing it again on sign-out.
type SessionStore interface {
	Save(ctx context.Context, session models.ClientSession) error
	Clear(ctx context.Context) error
}

// App is the root Bubble Tea model. It owns the current screen, the active
// form, and the signed-in identity, and dispatches async commands against the
// server adapter.
type App struct {
	ctx      context.Context
	adapter  adapter.ServerAdapter
	sessions SessionStore

	screen  screen
	menuIdx int
	form    formModel

	auth    models.AuthResponse
	tasks   []models.Task
	loading bool
	status  string
	errText string
}

var menuItems = []string{"Sign in", "Sign up"}

// New constructs the root model. When restored is non-nil the client starts
// on the task screen with the cached identity instead of the welcome menu.
func New(ctx context.Context, serverAdapter adapter.ServerAdapter, sessions SessionStore, restored *models.ClientSession) *App {
	app := &App{
		ctx:      ctx,
		adapter:  serverAdapter,
		sessions: sessions,
	}

	if restored != nil {
		app.screen = screenTasks
		app.auth = models.AuthResponse{
			UserID:      restored.UserID,
			Username:    restored.Username,
			Email:       restored.Email,
			AccessToken: restored.AccessToken,
		}
		app.loading = true
	}

	return app
}

// Run constructs the root model and blocks inside the Bubble Tea event loop
// until the user quits.
func Run(ctx context.Context, serverAdapter adapter.ServerAdapter, sessions SessionStore, restored *models.ClientSession) error {
	_, err := tea.NewProgram(New(ctx, serverAdapter, sessions, restored)).Run()
	return err
}

// Init implements [tea.Model]. A restored session triggers an immediate task
// load; otherwise only the cursor blink starts.
func (a *App) Init() tea.Cmd {
	if a.screen == screenTasks {
		return a.loadTasksCmd()
	}
	return textinput.Blink
}

// Update implements [tea.Model].
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		a.loading = false
		a.errText = ""
		a.auth = msg.auth
		a.screen = screenTasks
		a.loading = true
		return a, tea.Batch(a.saveSessionCmd(msg.auth), a.loadTasksCmd())

	case tasksLoadedMsg:
		a.loading = false
		a.tasks = msg.tasks
		return a, nil

	case tokenCopiedMsg:
		a.status = "access token copied to clipboard"
		return a, nil

	case signedOutMsg:
		// drop the bearer token too, otherwise the adapter could still
		// call the API after the session cache is gone
		a.adapter.SetToken("")
		a.auth = models.AuthResponse{}
		a.tasks = nil
		a.status = ""
		a.screen = screenWelcome
		return a, nil

	case errMsg:
		a.loading = false
		a.errText = humanizeError(msg.err)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.screen == screenSignUp || a.screen == screenSignIn {
		return a, a.form.update(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.screen {
	case screenWelcome:
		return a.handleWelcomeKey(msg)
	case screenSignUp, screenSignIn:
		return a.handleFormKey(msg)
	case screenTasks:
		return a.handleTasksKey(msg)
	}

	return a, nil
}

func (a *App) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.menuIdx > 0 {
			a.menuIdx--
		}
	case "down", "j":
		if a.menuIdx < len(menuItems)-1 {
			a.menuIdx++
		}
	case "enter":
		a.errText = ""
		if a.menuIdx == 0 {
			a.form = newSignInForm()
			a.screen = screenSignIn
		} else {
			a.form = newSignUpForm()
			a.screen = screenSignUp
		}
		return a, textinput.Blink
	}

	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.loading = false
		a.errText = ""
		a.screen = screenWelcome
		return a, nil
	case "tab", "down":
		a.form.cycleFocus(1)
		return a, nil
	case "shift+tab", "up":
		a.form.cycleFocus(-1)
		return a, nil
	case "enter":
		if a.loading {
			return a, nil
		}
		a.loading = true
		a.errText = ""
		if a.screen == screenSignUp {
			return a, a.signUpCmd()
		}
		return a, a.signInCmd()
	}

	return a, a.form.update(msg)
}

func (a *App) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.loading = true
		a.errText = ""
		return a, a.loadTasksCmd()
	case "c":
		return a, a.copyTokenCmd()
	case "s":
		return a, a.signOutCmd()
	}

	return a, nil
}

// View implements [tea.Model].
func (a *App) View() string {
	switch a.screen {
	case screenSignUp, screenSignIn:
		return appStyle.Render(a.form.view() + a.footer())
	case screenTasks:
		return appStyle.Render(a.tasksView() + a.footer())
	default:
		return appStyle.Render(a.welcomeView() + a.footer())
	}
}

func (a *App) welcomeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Auth"))
	b.WriteString("\n\nChoose an action:\n\n")
	for i, item := range menuItems {
		cursor := "  "
		if i == a.menuIdx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter select • q quit"))
	return b.String()
}

func (a *App) footer() string {
	var b strings.Builder
	if a.loading {
		b.WriteString("\n" + statusStyle.Render("working..."))
	}
	if a.status != "" {
		b.WriteString("\n" + statusStyle.Render(a.status))
	}
	if a.errText != "" {
		b.WriteString("\n" + errorStyle.Render(a.errText))
	}
	return b.String()
}

func humanizeError(err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	return fmt.Sprintf("request failed: %v", err)
}

// commandTimeout bounds every async adapter call issued by the TUI so a dead
// server cannot freeze the event loop forever.
const commandTimeout = 30 * time.Second

func (a *App) signUpCmd() tea.Cmd {
	values := a.form.values()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, commandTimeout)
		defer cancel()

		auth, err := a.adapter.SignUp(ctx, values[0], values[1], values[2])
		if err != nil {
			return errMsg{err}
		}
		return authDoneMsg{auth}
	}
}

func (a *App) signInCmd() tea.Cmd {
	values := a.form.values()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, commandTimeout)
		defer cancel()

		auth, err := a.adapter.SignIn(ctx, values[0], values[1])
		if err != nil {
			return errMsg{err}
		}
		return authDoneMsg{auth}
	}
}

func (a *App) loadTasksCmd() tea.Cmd {
	userID := a.auth.UserID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, commandTimeout)
		defer cancel()

		tasks, err := a.adapter.Tasks(ctx, userID)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks}
	}
}

func (a *App) copyTokenCmd() tea.Cmd {
	token := a.auth.AccessToken
	return func() tea.Msg {
		if err := clipboard.WriteAll(token); err != nil {
			return errMsg{err}
		}
		return tokenCopiedMsg{}
	}
}

func (a *App) saveSessionCmd(auth models.AuthResponse) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, commandTimeout)
		defer cancel()

		err := a.sessions.Save(ctx, models.ClientSession{
			UserID:      auth.UserID,
			Username:    auth.Username,
			Email:       auth.Email,
			AccessToken: auth.AccessToken,
		})
		if err != nil {
			return errMsg{err}
		}
		return nil
	}
}

func (a *App) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(a.ctx, commandTimeout)
		defer cancel()

		if err := a.sessions.Clear(ctx); err != nil {
			return errMsg{err}
		}
		return signedOutMsg{}
	}
}
