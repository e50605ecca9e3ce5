// Package login implements the sign-in screen.
package login

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/tui/common"
	"github.com/CrestNiraj12/termsocial/tui/components"
)

const (
	fieldEmail = iota
	fieldPassword
)

// --- Messages ---

// DoneMsg is emitted once the user is signed in.
type DoneMsg struct {
	User domain.User
}

// SwitchMsg asks the root to show the registration screen.
type SwitchMsg struct{}

// resultMsg carries the outcome of the delayed login call.
type resultMsg struct {
	user domain.User
	err  error
}

// --- Model ---

// Model holds the state for the login screen.
type Model struct {
	auth    app.AuthService
	sched   common.Scheduler
	delay   time.Duration
	keys    common.KeyMap
	form    components.Form
	spinner spinner.Model
	loading bool
	err     error
	width   int
}

// New creates a login screen. The login call resolves after delay on sched.
func New(auth app.AuthService, sched common.Scheduler, delay time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = common.LoadingStyle

	return Model{
		auth:  auth,
		sched: sched,
		delay: delay,
		keys:  common.DefaultKeyMap(),
		form: components.NewForm(
			components.Field{Label: "Email", Placeholder: "tu@email.com"},
			components.Field{Label: "Contraseña", Placeholder: "••••••••", Secret: true},
		),
		spinner: s,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Loading reports whether a login call is in flight.
func (m Model) Loading() bool { return m.loading }

// Err returns the last validation or login error.
func (m Model) Err() error { return m.err }

// Update handles messages for the login screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		user := msg.user
		return m, func() tea.Msg { return DoneMsg{User: user} }

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.SwitchForm):
			return m, func() tea.Msg { return SwitchMsg{} }
		case key.Matches(msg, m.keys.TogglePassword):
			m.form.ToggleSecrets()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			if !m.form.OnLast() {
				return m, m.form.Next()
			}
			return m.submit()
		case key.Matches(msg, m.keys.NextField):
			return m, m.form.Next()
		case key.Matches(msg, m.keys.PrevField):
			return m, m.form.Prev()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	creds := domain.Credentials{
		Email:    m.form.Value(fieldEmail),
		Password: m.form.Value(fieldPassword),
	}
	if err := creds.Validate(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.loading = true

	auth := m.auth
	return m, tea.Batch(
		m.spinner.Tick,
		m.sched.After(m.delay, func() tea.Msg {
			user, err := auth.Login(context.Background(), creds)
			return resultMsg{user: user, err: err}
		}),
	)
}
