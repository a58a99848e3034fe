package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel renders the signup or signin form: a stack of text inputs with
// tab-cycled focus. Which fields exist depends on the screen it serves.
type formModel struct {
	title  string
	inputs []textinput.Model
	focus  int
}

func newSignInForm() formModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return formModel{
		title:  "Sign in",
		inputs: []textinput.Model{username, password},
	}
}

func newSignUpForm() formModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password (5+ characters)"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return formModel{
		title:  "Sign up",
		inputs: []textinput.Model{username, email, password},
	}
}

// cycleFocus moves input focus by delta, wrapping around the field list.
func (f *formModel) cycleFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards a message to the focused input.
func (f *formModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// values returns the trimmed content of every input, in field order.
func (f *formModel) values() []string {
	out := make([]string, len(f.inputs))
	for i, input := range f.inputs {
		out[i] = strings.TrimSpace(input.Value())
	}
	return out
}

func (f *formModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	for _, input := range f.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit • tab next field • esc back"))
	return b.String()
}
