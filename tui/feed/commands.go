package feed

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/tui/common"
)

// publish hands the compose buffer to the backend after the publish delay.
// Blank drafts and re-entry are silent no-ops.
func (m Model) publish() (Model, tea.Cmd) {
	content, err := m.mgr.BeginPublish()
	if err != nil {
		slog.Debug("publish rejected", "err", err)
		return m, nil
	}
	m.status = ""

	posts := m.opts.Posts
	author := m.mgr.CurrentUser()
	return m, tea.Batch(
		m.spinner.Tick,
		m.opts.Scheduler.After(m.opts.PublishDelay, func() tea.Msg {
			p, err := posts.Publish(context.Background(), author, content)
			return PublishResultMsg{Post: p, Err: err}
		}),
	)
}

// refresh asks the backend for new posts after the refresh delay.
func (m Model) refresh() (Model, tea.Cmd) {
	if err := m.mgr.BeginRefresh(); err != nil {
		slog.Debug("refresh rejected", "err", err)
		return m, nil
	}
	m.status = ""

	posts := m.opts.Posts
	return m, tea.Batch(
		m.spinner.Tick,
		m.opts.Scheduler.After(m.opts.RefreshDelay, func() tea.Msg {
			batch, err := posts.Refresh(context.Background())
			return RefreshResultMsg{Posts: batch, Err: err}
		}),
	)
}

// PublishContent replaces the draft with content and publishes it. Used when
// a post was written in the external editor. While another publish is in
// flight the draft is left alone.
func (m Model) PublishContent(content string) (Model, tea.Cmd) {
	if m.mgr.Publishing() {
		slog.Debug("publish rejected", "err", domain.ErrPublishInFlight)
		m.status = common.ErrorText(domain.ErrPublishInFlight)
		return m, nil
	}
	m.mgr.SetDraft(content)
	m.compose.SetValue(content)
	return m.publish()
}
