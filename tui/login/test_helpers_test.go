package login

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/domain"
)

type stubAuth struct {
	logins []domain.Credentials
	err    error
}

func (s *stubAuth) Login(_ context.Context, creds domain.Credentials) (domain.User, error) {
	s.logins = append(s.logins, creds)
	if s.err != nil {
		return domain.User{}, s.err
	}
	return domain.User{ID: "u1", Name: "Ariel"}, nil
}

func (s *stubAuth) Register(context.Context, domain.Registration) (domain.User, error) {
	return domain.User{}, errors.New("not used")
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, t tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: t})
}
