package common

import "github.com/charmbracelet/lipgloss"

const (
	// AccentColor is the primary brand color.
	AccentColor = lipgloss.Color("#667EEA")
	// AccentAltColor is the secondary brand color.
	AccentAltColor = lipgloss.Color("#764BA2")
	// LikeColor highlights a liked post.
	LikeColor = lipgloss.Color("#E91E63")
	// VerifiedColor marks verified accounts.
	VerifiedColor = lipgloss.Color("#1DA1F2")
)

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(AccentAltColor).
			Padding(0, 2)

	// ScreenTitleStyle styles the current screen name next to the title.
	ScreenTitleStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				MarginLeft(1)

	// SubtitleStyle styles secondary header text.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)

	// AuthorStyle styles author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E5E7EB"))

	// VerifiedStyle styles the verified check.
	VerifiedStyle = lipgloss.NewStyle().
			Foreground(VerifiedColor).
			Bold(true)

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// ContentStyle styles post and comment bodies.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	// MetadataStyle styles counters under a post.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// LikeActiveStyle styles the heart of a liked post.
	LikeActiveStyle = lipgloss.NewStyle().
			Foreground(LikeColor).
			Bold(true)

	// SelectedStyle highlights the current post card.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(0, 1)

	// UnselectedStyle gives other post cards a subtle border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1)

	// PanelStyle frames forms and overlays.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentAltColor).
			Padding(1, 2)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)

	// LoadingStyle styles in-flight labels such as "Publicando...".
	LoadingStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Italic(true)

	// TabActiveStyle styles the active profile tab.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	// TabInactiveStyle styles the other profile tabs.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6B7280")).
				Padding(0, 2)
)
