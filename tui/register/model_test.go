package register

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/tui/common"
)

const delay = 1500 * time.Millisecond

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   error
		text   string
	}{
		{
			name:   "missing profession",
			values: []string{"30", "123", "", "a@b.c", "pw", "pw"},
			want:   domain.ErrMissingFields,
			text:   "Por favor, completa todos los campos",
		},
		{
			name:   "password mismatch",
			values: []string{"30", "123", "Dev", "a@b.c", "pw", "px"},
			want:   domain.ErrPasswordMismatch,
			text:   "Las contraseñas no coinciden",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sched := &common.ManualScheduler{}
			m := New(&stubAuth{}, sched, delay)
			m = fill(m, tc.values...)
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			if !errors.Is(m.Err(), tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, m.Err())
			}
			if sched.Pending() != 0 {
				t.Fatalf("invalid form must not register")
			}
			if !strings.Contains(m.View(), tc.text) {
				t.Fatalf("expected %q in view", tc.text)
			}
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	auth := &stubAuth{}
	sched := &common.ManualScheduler{}
	m := New(auth, sched, delay)
	m = fill(m, "30", "12345678", "Dev", "a@b.c", "pw", "pw")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.Loading() {
		t.Fatalf("expected loading after valid submit")
	}
	msgs := sched.Advance(delay)
	if len(msgs) != 1 {
		t.Fatalf("expected one result, got %d", len(msgs))
	}
	m, cmd := m.Update(msgs[0])
	if !m.Succeeded() || m.Loading() {
		t.Fatalf("expected success state")
	}
	if !strings.Contains(m.View(), SuccessText) {
		t.Fatalf("expected success text in view")
	}
	if cmd == nil {
		t.Fatalf("expected done command")
	}
	if _, ok := cmd().(DoneMsg); !ok {
		t.Fatalf("expected DoneMsg")
	}
	if len(auth.registrations) != 1 || auth.registrations[0].DNI != "12345678" {
		t.Fatalf("unexpected registrations %#v", auth.registrations)
	}
}

func TestEnterAdvancesUntilLastField(t *testing.T) {
	sched := &common.ManualScheduler{}
	m := New(&stubAuth{}, sched, delay)
	for range 5 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	if m.Err() != nil || sched.Pending() != 0 {
		t.Fatalf("enter before the last field must only move focus")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !errors.Is(m.Err(), domain.ErrMissingFields) {
		t.Fatalf("expected submit on last field, got %v", m.Err())
	}
}
