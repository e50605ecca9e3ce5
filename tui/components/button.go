package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/termsocial/tui/common"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(common.AccentColor).
			Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E5E7EB")).
				Background(lipgloss.Color("#6B7280")).
				Padding(0, 2)
)

// Button renders a call-to-action. While loading it shows loadingTitle and
// uses the disabled look.
func Button(title, loadingTitle string, loading, disabled bool) string {
	if loading {
		return buttonDisabledStyle.Render(loadingTitle)
	}
	if disabled {
		return buttonDisabledStyle.Render(title)
	}
	return buttonStyle.Render(title)
}
