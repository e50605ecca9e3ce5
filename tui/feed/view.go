package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/tui/common"
	"github.com/CrestNiraj12/termsocial/tui/components"
)

const (
	defaultWidth    = 80
	cardBodyLines   = 6
	refreshingLabel = "Cargando nuevos posts..."
	noCommentsLabel = "Sé el primero en comentar"
	emptyFeedLabel  = "No hay posts todavía. Pulsa n para escribir el primero."
)

// View renders the home screen.
func (m Model) View() string {
	sections := []string{m.headerView(), m.composeView()}
	if m.mgr.Refreshing() {
		sections = append(sections, m.spinner.View()+" "+common.LoadingStyle.Render(refreshingLabel))
	}
	if m.mgr.ThreadOpen() {
		sections = append(sections, m.threadView())
	} else {
		sections = append(sections, m.listView())
	}
	sections = append(sections, m.footerView())
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(sections, "\n"))
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return max(m.width-2, 30)
}

func (m Model) headerView() string {
	u := m.mgr.CurrentUser()
	return common.AppTitleStyle.Render("termsocial") +
		common.ScreenTitleStyle.Render("Inicio") +
		"  " + common.SubtitleStyle.Render(u.Name) + "\n"
}

func (m Model) composeView() string {
	u := m.mgr.CurrentUser()
	var b strings.Builder
	b.WriteString(components.Avatar(u.Name))
	b.WriteString(" ")
	b.WriteString(common.SubtitleStyle.Render(composePlaceholder))
	b.WriteString("\n")
	b.WriteString(m.compose.View())
	b.WriteString("\n")

	publishing := m.mgr.Publishing()
	if publishing {
		b.WriteString(m.spinner.View() + " ")
	}
	b.WriteString(components.Button("Publicar", "Publicando...", publishing, !m.mgr.CanPublish()))
	b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("  %d/%d", len([]rune(m.compose.Value())), composeCharLimit)))

	style := common.UnselectedStyle
	if m.composing {
		style = common.SelectedStyle
	}
	return style.Width(m.contentWidth() - 2).Render(b.String())
}

func (m Model) card(p domain.Post, selected bool) string {
	return components.PostCard(p, components.CardOptions{
		Now:      m.now(),
		Locale:   m.opts.Locale,
		Width:    m.contentWidth(),
		Selected: selected,
		MaxLines: cardBodyLines,
	})
}

func (m Model) listView() string {
	posts := m.mgr.Posts()
	if len(posts) == 0 {
		return common.SubtitleStyle.Render(emptyFeedLabel)
	}

	budget := m.listHeight()
	var cards []string
	used := 0
	for i := m.start; i < len(posts); i++ {
		c := m.card(posts[i], i == m.cursor && !m.composing)
		h := lipgloss.Height(c)
		if budget > 0 && used+h > budget && len(cards) > 0 {
			break
		}
		cards = append(cards, c)
		used += h
	}
	return strings.Join(cards, "\n")
}

func (m Model) threadView() string {
	p, ok := m.mgr.SelectedPost()
	if !ok {
		return ""
	}
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(common.ScreenTitleStyle.UnsetMarginLeft().Render(fmt.Sprintf("Comentarios (%d)", len(p.Comments))))
	b.WriteString("\n\n")
	b.WriteString(components.PostCard(p, components.CardOptions{
		Now:    m.now(),
		Locale: m.opts.Locale,
		Width:  width - 6,
	}))
	b.WriteString("\n\n")

	if len(p.Comments) == 0 {
		b.WriteString(common.SubtitleStyle.Render(noCommentsLabel))
	} else {
		lines := make([]string, 0, len(p.Comments))
		for _, c := range p.Comments {
			lines = append(lines, components.CommentLine(c, m.now(), m.opts.Locale, width-6))
		}
		b.WriteString(strings.Join(lines, "\n\n"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.comment.View())
	b.WriteString("\n")
	b.WriteString(common.MetadataStyle.Render("enter: comentar • esc: cerrar"))

	return common.PanelStyle.Width(width - 2).Render(b.String())
}

func (m Model) footerView() string {
	var parts []string
	if m.status != "" {
		style := common.SuccessStyle
		if err := m.mgr.Err(); err != nil {
			style = common.ErrorStyle
		}
		parts = append(parts, style.Render(m.status))
	}
	switch {
	case m.mgr.ThreadOpen():
	case m.composing:
		parts = append(parts, common.MetadataStyle.Render("ctrl+s: publicar • esc: salir del editor"))
	default:
		parts = append(parts, m.help.View(m.keys))
	}
	return common.StatusBarStyle.Render(strings.Join(parts, "\n"))
}

// listHeight is the number of lines available to post cards; 0 means unknown.
func (m Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.composeView()) + lipgloss.Height(m.footerView())
	if m.mgr.Refreshing() {
		chrome++
	}
	return max(m.height-chrome, 1)
}

// ensureCursorVisible advances the list window until the cursor's card fits.
func (m *Model) ensureCursorVisible() {
	m.clampCursor()
	budget := m.listHeight()
	if budget == 0 {
		return
	}
	posts := m.mgr.Posts()
	for m.start < m.cursor {
		used := 0
		for i := m.start; i <= m.cursor; i++ {
			used += lipgloss.Height(m.card(posts[i], i == m.cursor))
		}
		if used <= budget {
			return
		}
		m.start++
	}
}
