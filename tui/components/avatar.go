// Package components holds small presentational building blocks shared by
// the screens: avatar badge, button, text input and post card.
package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/termsocial/tui/common"
)

var avatarStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(common.AccentColor).
	Padding(0, 1)

// Initials returns up to two uppercase initials of name.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// Avatar renders an initials badge standing in for a profile picture.
func Avatar(name string) string {
	return avatarStyle.Render(Initials(name))
}

// AuthorLine renders an author name with a verified check when applicable.
func AuthorLine(name string, verified bool) string {
	out := common.AuthorStyle.Render(name)
	if verified {
		out += " " + common.VerifiedStyle.Render("✓")
	}
	return out
}
