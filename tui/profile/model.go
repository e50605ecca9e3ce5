// Package profile implements the read-only profile screen of the signed-in
// user.
package profile

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/tui/common"
)

// Tab is a section of the profile screen.
type Tab int

const (
	TabPosts Tab = iota
	TabMedia
	TabLikes
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabPosts:
		return "Posts"
	case TabMedia:
		return "Media"
	case TabLikes:
		return "Me gusta"
	}
	return ""
}

// BackMsg asks the root to return to the feed.
type BackMsg struct{}

// loadedMsg carries the fetched profile.
type loadedMsg struct {
	profile domain.Profile
	err     error
}

// Model holds the state for the profile screen.
type Model struct {
	profiles  app.ProfileService
	locale    language.Tag
	keys      common.KeyMap
	profile   domain.Profile
	loaded    bool
	err       error
	tab       Tab
	following bool
	width     int
}

// New creates a profile screen.
func New(profiles app.ProfileService, locale language.Tag) Model {
	return Model{
		profiles: profiles,
		locale:   locale,
		keys:     common.DefaultKeyMap(),
	}
}

// Init fetches the profile.
func (m Model) Init() tea.Cmd {
	profiles := m.profiles
	return func() tea.Msg {
		p, err := profiles.CurrentProfile(context.Background())
		return loadedMsg{profile: p, err: err}
	}
}

// Tab returns the active tab.
func (m Model) Tab() Tab { return m.tab }

// Following reports whether the follow button is toggled on.
func (m Model) Following() bool { return m.following }

// Update handles messages for the profile screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.profile = msg.profile
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }
		case key.Matches(msg, m.keys.NextField):
			m.tab = (m.tab + 1) % tabCount
		case key.Matches(msg, m.keys.PrevField):
			m.tab = (m.tab + tabCount - 1) % tabCount
		case key.Matches(msg, m.keys.Follow):
			m.following = !m.following
		}
	}
	return m, nil
}
