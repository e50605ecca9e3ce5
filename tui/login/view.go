package login

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/termsocial/tui/common"
	"github.com/CrestNiraj12/termsocial/tui/components"
)

// View renders the login form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("termsocial"))
	b.WriteString(common.ScreenTitleStyle.Render("Iniciar Sesión"))
	b.WriteString("\n\n")

	var panel strings.Builder
	panel.WriteString(m.form.View())
	panel.WriteString("\n\n")
	if m.loading {
		panel.WriteString(m.spinner.View() + " ")
	}
	panel.WriteString(components.Button("Iniciar Sesión", "Iniciando...", m.loading, false))
	if m.err != nil {
		panel.WriteString("\n\n")
		panel.WriteString(common.ErrorStyle.Render(common.ErrorText(m.err)))
	}
	b.WriteString(common.PanelStyle.Width(min(max(m.width-4, 52), 64)).Render(panel.String()))

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(strings.Join([]string{
		"¿No tienes cuenta? ctrl+r: registrarse",
		"tab: siguiente",
		"ctrl+t: mostrar contraseña",
		"ctrl+c: salir",
	}, " • ")))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
