package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/termsocial/tui/common"
)

// Field describes one input of a Form.
type Field struct {
	Label       string
	Placeholder string
	Secret      bool
}

// Form is a vertical list of labelled inputs with a single focused field.
type Form struct {
	fields  []Field
	inputs  []textinput.Model
	focus   int
	showing bool
}

// NewForm builds a form and focuses its first field.
func NewForm(fields ...Field) Form {
	f := Form{fields: fields, inputs: make([]textinput.Model, len(fields))}
	for i, fd := range fields {
		f.inputs[i] = NewInput(fd.Placeholder, fd.Secret)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Len returns the number of fields.
func (f Form) Len() int { return len(f.inputs) }

// Focused returns the index of the focused field.
func (f Form) Focused() int { return f.focus }

// OnLast reports whether the last field is focused.
func (f Form) OnLast() bool { return f.focus == len(f.inputs)-1 }

// Value returns the raw value of field i.
func (f Form) Value(i int) string { return f.inputs[i].Value() }

// SetValue replaces the value of field i.
func (f *Form) SetValue(i int, v string) { f.inputs[i].SetValue(v) }

// Next moves focus forward, wrapping around.
func (f *Form) Next() tea.Cmd { return f.focusAt((f.focus + 1) % len(f.inputs)) }

// Prev moves focus backward, wrapping around.
func (f *Form) Prev() tea.Cmd {
	return f.focusAt((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *Form) focusAt(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// ToggleSecrets shows or masks every secret field.
func (f *Form) ToggleSecrets() {
	f.showing = !f.showing
	for i, fd := range f.fields {
		if fd.Secret {
			SetSecretVisible(&f.inputs[i], f.showing)
		}
	}
}

// SecretsVisible reports whether secret fields are shown in clear.
func (f Form) SecretsVisible() bool { return f.showing }

// Update forwards msg to the focused input.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

// View renders each field with its label.
func (f Form) View() string {
	var b strings.Builder
	for i, fd := range f.fields {
		label := labelStyle.Render(fd.Label)
		if i == f.focus {
			label = common.ScreenTitleStyle.UnsetMarginLeft().Render(fd.Label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if i < len(f.fields)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
