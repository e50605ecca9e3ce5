package components

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/CrestNiraj12/termsocial/tui/common"
)

// NewInput returns a single-line input. Secret inputs mask their value.
func NewInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.PromptStyle = common.ScreenTitleStyle
	ti.CharLimit = 256
	ti.Width = 40
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

// SetSecretVisible toggles masking of a secret input.
func SetSecretVisible(ti *textinput.Model, visible bool) {
	if visible {
		ti.EchoMode = textinput.EchoNormal
		return
	}
	ti.EchoMode = textinput.EchoPassword
}
