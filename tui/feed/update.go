package feed

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/tui/common"
)

// Update handles messages for the home screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.compose.SetWidth(max(min(msg.Width-8, 100), 20))
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.mgr.Publishing() && !m.mgr.Refreshing() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PublishResultMsg:
		m.mgr.CompletePublish(msg.Post, msg.Err)
		if msg.Err != nil {
			slog.Error("publish failed", "err", msg.Err)
			m.status = common.ErrorText(msg.Err)
			return m, nil
		}
		slog.Info("post published", "id", msg.Post.ID)
		m.compose.SetValue(m.mgr.Draft())
		m.composing = false
		m.compose.Blur()
		m.cursor, m.start = 0, 0
		m.status = "Publicado"
		return m, nil

	case RefreshResultMsg:
		added := m.mgr.CompleteRefresh(msg.Posts, msg.Err)
		if msg.Err != nil {
			slog.Error("refresh failed", "err", msg.Err)
			m.status = common.ErrorText(msg.Err)
			return m, nil
		}
		slog.Info("feed refreshed", "added", added)
		if added == 0 {
			m.status = "No hay posts nuevos"
			return m, nil
		}
		m.cursor, m.start = 0, 0
		m.status = fmt.Sprintf("%d posts nuevos", added)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Blink and other widget messages.
	switch {
	case m.mgr.ThreadOpen():
		m.comment, cmd = m.comment.Update(msg)
	case m.composing:
		m.compose, cmd = m.compose.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case m.mgr.ThreadOpen():
		return m.handleThreadKey(msg)
	case m.composing:
		return m.handleComposeKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.composing = false
		m.compose.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Publish):
		return m.publish()
	}
	if m.mgr.Publishing() {
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	m.mgr.SetDraft(m.compose.Value())
	return m, cmd
}

func (m Model) handleThreadKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mgr.CloseThread()
		m.comment.Reset()
		m.comment.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.mgr.SetCommentDraft(m.comment.Value())
		c, err := m.mgr.AddComment()
		if err != nil {
			slog.Debug("comment rejected", "err", err)
			return m, nil
		}
		slog.Info("comment added", "id", c.ID)
		m.comment.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	m.mgr.SetCommentDraft(m.comment.Value())
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.mgr.Len()-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.Compose):
		m.composing = true
		return m, tea.Batch(m.compose.Focus(), textarea.Blink)

	case key.Matches(msg, m.keys.Publish):
		return m.publish()

	case key.Matches(msg, m.keys.ComposeEditor):
		if m.mgr.Publishing() {
			return m, nil
		}
		draft := m.mgr.Draft()
		return m, func() tea.Msg { return ComposeEditorMsg{Draft: draft} }

	case key.Matches(msg, m.keys.Like):
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		if _, err := m.mgr.ToggleLike(p.ID); err != nil {
			m.status = common.ErrorText(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Comments), key.Matches(msg, m.keys.Submit):
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.mgr.OpenThread(p.ID); err != nil {
			m.status = common.ErrorText(err)
			return m, nil
		}
		m.comment.SetValue(m.mgr.CommentDraft())
		return m, m.comment.Focus()

	case key.Matches(msg, m.keys.Profile):
		return m, func() tea.Msg { return OpenProfileMsg{} }

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}
	return m, nil
}
