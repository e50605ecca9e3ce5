// Package compose writes a post in the user's $EDITOR. Bubble Tea is
// suspended while the editor runs.
package compose

import (
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/infra/editor"
)

const editorHeader = "El texto se publica en tu feed de inicio."

// --- Messages ---

// DoneMsg is sent when composing is complete (success or cancel).
type DoneMsg struct {
	Content string // Empty if cancelled
	Err     error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Editor prepares the external editor and reads back what was written.
// Implemented by *editor.EnvEditor.
type Editor interface {
	Cmd(draft, header string) (*exec.Cmd, string, error)
	ReadContent(path string) (string, error)
}

var _ Editor = (*editor.EnvEditor)(nil)

// Model holds the state for the compose view.
type Model struct {
	editor Editor
	draft  string
	status string
}

// NewEditor creates a compose model that opens $EDITOR on draft.
func NewEditor(ed Editor, draft string) Model {
	return Model{
		editor: ed,
		draft:  draft,
		status: "Abriendo el editor...",
	}
}

// Init prepares the editor command.
func (m Model) Init() tea.Cmd {
	return m.launchEditor()
}

// launchEditor uses tea.ExecProcess so Bubble Tea leaves raw mode while the
// editor owns the terminal.
func (m Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.draft, editorHeader)
	if err != nil {
		return done(DoneMsg{Err: fmt.Errorf("preparing editor: %w", err)})
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	finished, ok := msg.(editorFinishedMsg)
	if !ok {
		return m, nil
	}
	if finished.err != nil {
		return m, done(DoneMsg{Err: fmt.Errorf("editor: %w", finished.err)})
	}

	content, err := m.editor.ReadContent(finished.tmpPath)
	if err != nil {
		return m, done(DoneMsg{Err: err})
	}
	if content == "" || content == m.draft {
		return m, done(DoneMsg{}) // Cancel
	}
	return m, done(DoneMsg{Content: content})
}

// View renders the status shown while the editor is open.
func (m Model) View() string {
	return m.status + "\n"
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
