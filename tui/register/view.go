package register

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/termsocial/tui/common"
	"github.com/CrestNiraj12/termsocial/tui/components"
)

// View renders the registration form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("termsocial"))
	b.WriteString(common.ScreenTitleStyle.Render("Crear cuenta"))
	b.WriteString("\n\n")

	var panel strings.Builder
	panel.WriteString(m.form.View())
	panel.WriteString("\n\n")
	if m.loading {
		panel.WriteString(m.spinner.View() + " ")
	}
	panel.WriteString(components.Button("Registrarse", "Registrando...", m.loading, m.success))
	switch {
	case m.err != nil:
		panel.WriteString("\n\n" + common.ErrorStyle.Render(common.ErrorText(m.err)))
	case m.success:
		panel.WriteString("\n\n" + common.SuccessStyle.Render(SuccessText))
	}
	b.WriteString(common.PanelStyle.Width(min(max(m.width-4, 52), 64)).Render(panel.String()))

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(strings.Join([]string{
		"¿Ya tienes cuenta? ctrl+r: iniciar sesión",
		"tab: siguiente",
		"ctrl+t: mostrar contraseñas",
		"ctrl+c: salir",
	}, " • ")))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
