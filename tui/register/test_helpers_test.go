package register

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/domain"
)

type stubAuth struct {
	registrations []domain.Registration
}

func (s *stubAuth) Login(context.Context, domain.Credentials) (domain.User, error) {
	return domain.User{}, errors.New("not used")
}

func (s *stubAuth) Register(_ context.Context, reg domain.Registration) (domain.User, error) {
	s.registrations = append(s.registrations, reg)
	return domain.User{ID: "u1", Name: "Ariel"}, nil
}

// fill types values into consecutive fields starting at the focused one.
func fill(m Model, values ...string) Model {
	for i, v := range values {
		if v != "" {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(v)})
		}
		if i < len(values)-1 {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		}
	}
	return m
}
