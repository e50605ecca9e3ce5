// Package register implements the sign-up screen.
package register

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
	fieldAge = iota
	fieldDNI
	fieldProfession
	fieldEmail
	fieldPassword
	fieldConfirm
)

// SuccessText is shown once the account is created.
const SuccessText = "Registro exitoso"

// DoneMsg is emitted once the account is created and signed in.
type DoneMsg struct {
	User domain.User
}

// SwitchMsg asks the root to show the login screen.
type SwitchMsg struct{}

type resultMsg struct {
	user domain.User
	err  error
}

// Model holds the state for the registration screen.
type Model struct {
	auth    app.AuthService
	sched   common.Scheduler
	delay   time.Duration
	keys    common.KeyMap
	form    components.Form
	spinner spinner.Model
	loading bool
	success bool
	err     error
	width   int
}

// New creates a registration screen. Registration resolves after delay.
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
			components.Field{Label: "Edad", Placeholder: "18"},
			components.Field{Label: "DNI", Placeholder: "12345678"},
			components.Field{Label: "Profesión", Placeholder: "Desarrollador"},
			components.Field{Label: "Email", Placeholder: "tu@email.com"},
			components.Field{Label: "Contraseña", Placeholder: "••••••••", Secret: true},
			components.Field{Label: "Confirmar contraseña", Placeholder: "••••••••", Secret: true},
		),
		spinner: s,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Loading reports whether registration is in flight.
func (m Model) Loading() bool { return m.loading }

// Succeeded reports whether the account was created.
func (m Model) Succeeded() bool { return m.success }

// Err returns the last validation or registration error.
func (m Model) Err() error { return m.err }

// Update handles messages for the registration screen.
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
		m.success = true
		user := msg.user
		return m, func() tea.Msg { return DoneMsg{User: user} }

	case tea.KeyMsg:
		if m.loading || m.success {
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
	reg := domain.Registration{
		Age:             m.form.Value(fieldAge),
		DNI:             m.form.Value(fieldDNI),
		Profession:      m.form.Value(fieldProfession),
		Email:           m.form.Value(fieldEmail),
		Password:        m.form.Value(fieldPassword),
		PasswordConfirm: m.form.Value(fieldConfirm),
	}
	if err := reg.Validate(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.loading = true

	auth := m.auth
	return m, tea.Batch(
		m.spinner.Tick,
		m.sched.After(m.delay, func() tea.Msg {
			user, err := auth.Register(context.Background(), reg)
			return resultMsg{user: user, err: err}
		}),
	)
}
