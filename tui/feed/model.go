// Package feed implements the home screen: the compose box, the post list and
// the comment thread overlay. Feed state lives in a feedstate.Manager owned by
// the caller; this package only adds presentation state such as the cursor.
package feed

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/feedstate"
	"github.com/CrestNiraj12/termsocial/tui/common"
	"github.com/CrestNiraj12/termsocial/tui/components"
)

const (
	composePlaceholder = "¿Qué estás pensando?"
	commentPlaceholder = "Escribe un comentario..."
	composeCharLimit   = 500
)

// --- Messages ---

// PublishResultMsg carries the outcome of a delayed publish.
type PublishResultMsg struct {
	Post domain.Post
	Err  error
}

// RefreshResultMsg carries the outcome of a delayed refresh.
type RefreshResultMsg struct {
	Posts []domain.Post
	Err   error
}

// OpenProfileMsg asks the root to show the profile screen.
type OpenProfileMsg struct{}

// ComposeEditorMsg asks the root to compose the current draft in $EDITOR.
type ComposeEditorMsg struct {
	Draft string
}

// --- Model ---

// Options holds the collaborators of the feed screen.
type Options struct {
	Posts        app.PostService
	Scheduler    common.Scheduler
	Clock        app.Clock
	Locale       language.Tag
	PublishDelay time.Duration
	RefreshDelay time.Duration
}

// Model holds the presentation state of the home screen.
type Model struct {
	mgr  *feedstate.Manager
	opts Options

	keys     common.KeyMap
	help     help.Model
	spinner  spinner.Model
	compose  textarea.Model
	comment  textinput.Model
	showHelp bool

	composing bool // Keystrokes go to the compose box
	cursor    int
	start     int // First post rendered in the list window
	status    string
	width     int
	height    int
}

// New creates the home screen over mgr. The compose box starts with the
// manager's draft so it survives navigation.
func New(mgr *feedstate.Manager, opts Options) Model {
	if opts.Scheduler == nil {
		opts.Scheduler = common.TickScheduler{}
	}
	if opts.Clock == nil {
		opts.Clock = app.SystemClock{}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = common.LoadingStyle

	ta := textarea.New()
	ta.Placeholder = composePlaceholder
	ta.CharLimit = composeCharLimit
	ta.ShowLineNumbers = false
	ta.SetWidth(68)
	ta.SetHeight(3)
	ta.SetValue(mgr.Draft())

	ti := components.NewInput(commentPlaceholder, false)

	return Model{
		mgr:     mgr,
		opts:    opts,
		keys:    common.DefaultKeyMap(),
		help:    help.New(),
		spinner: s,
		compose: ta,
		comment: ti,
	}
}

// Init keeps the spinner running if a request is already in flight.
func (m Model) Init() tea.Cmd {
	if m.mgr.Publishing() || m.mgr.Refreshing() {
		return m.spinner.Tick
	}
	return nil
}

// CapturingInput reports whether keystrokes are being typed into a text
// field, in which case global shortcuts such as quit must not fire.
func (m Model) CapturingInput() bool {
	return m.composing || m.mgr.ThreadOpen()
}

// Cursor returns the index of the highlighted post.
func (m Model) Cursor() int { return m.cursor }

// Status returns the transient status line.
func (m Model) Status() string { return m.status }

// SetStatus replaces the transient status line.
func (m *Model) SetStatus(s string) { m.status = s }

// Composing reports whether the compose box has focus.
func (m Model) Composing() bool { return m.composing }

func (m Model) now() time.Time { return m.opts.Clock.Now() }

func (m Model) selected() (domain.Post, bool) {
	posts := m.mgr.Posts()
	if m.cursor < 0 || m.cursor >= len(posts) {
		return domain.Post{}, false
	}
	return posts[m.cursor], true
}

func (m *Model) clampCursor() {
	n := m.mgr.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.start > m.cursor {
		m.start = m.cursor
	}
	if m.start < 0 {
		m.start = 0
	}
}
