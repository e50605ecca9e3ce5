package profile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/termsocial/tui/common"
	"github.com/CrestNiraj12/termsocial/tui/components"
)

const (
	noMediaLabel = "No hay media para mostrar"
	noLikesLabel = "No hay likes para mostrar"
)

// View renders the profile card and the active tab.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("termsocial"))
	b.WriteString(common.ScreenTitleStyle.Render("Perfil"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(common.LoadingStyle.Render("Cargando perfil..."))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(common.ErrorText(m.err)))
	default:
		b.WriteString(m.cardView())
		b.WriteString("\n\n")
		b.WriteString(m.tabsView())
		b.WriteString("\n\n")
		b.WriteString(m.tabContentView())
	}

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render("tab: cambiar pestaña • f: seguir • esc: volver • q: salir"))
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m Model) panelWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-2, 40)
}

func (m Model) cardView() string {
	p := m.profile
	var b strings.Builder
	b.WriteString(components.Avatar(p.User.Name) + " " + components.AuthorLine(p.User.Name, p.User.Verified))
	b.WriteString("\n")
	b.WriteString(common.SubtitleStyle.Render(p.Username))
	b.WriteString("\n\n")
	b.WriteString(common.ContentStyle.Render(p.Bio))
	b.WriteString("\n\n")
	b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("📍 %s   📅 Se unió en %s", p.Location, p.JoinDate)))
	b.WriteString("\n\n")
	b.WriteString(m.statsView())
	b.WriteString("\n\n")

	label := "Seguir"
	if m.following {
		label = "Siguiendo"
	}
	b.WriteString(components.Button(label, "", false, m.following))

	return common.PanelStyle.Width(m.panelWidth() - 2).Render(b.String())
}

func (m Model) statsView() string {
	stat := func(n int, label string) string {
		return common.AuthorStyle.Render(common.FormatCount(n, m.locale)) + " " + common.MetadataStyle.Render(label)
	}
	return strings.Join([]string{
		stat(m.profile.PostCount, "Posts"),
		stat(m.profile.Followers, "Seguidores"),
		stat(m.profile.Following, "Seguidos"),
	}, "   ")
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabPosts; t < tabCount; t++ {
		style := common.TabInactiveStyle
		if t == m.tab {
			style = common.TabActiveStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) tabContentView() string {
	switch m.tab {
	case TabMedia:
		return common.SubtitleStyle.Render(noMediaLabel)
	case TabLikes:
		return common.SubtitleStyle.Render(noLikesLabel)
	}

	if len(m.profile.Posts) == 0 {
		return common.SubtitleStyle.Render("No hay posts para mostrar")
	}
	cards := make([]string, 0, len(m.profile.Posts))
	for _, p := range m.profile.Posts {
		body := common.ContentStyle.Render(p.Content) + "\n" +
			common.MetadataStyle.Render(fmt.Sprintf("%s • ♡ %s • 💬 %s",
				p.Age, common.FormatCount(p.Likes, m.locale), common.FormatCount(p.Comments, m.locale)))
		cards = append(cards, common.UnselectedStyle.Width(m.panelWidth()-2).Render(body))
	}
	return strings.Join(cards, "\n")
}
