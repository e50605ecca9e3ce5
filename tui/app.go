package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/feedstate"
	"github.com/CrestNiraj12/termsocial/tui/common"
	"github.com/CrestNiraj12/termsocial/tui/compose"
	"github.com/CrestNiraj12/termsocial/tui/feed"
	"github.com/CrestNiraj12/termsocial/tui/login"
	"github.com/CrestNiraj12/termsocial/tui/profile"
	"github.com/CrestNiraj12/termsocial/tui/register"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts     app.PostService
	Auth      app.AuthService
	Profiles  app.ProfileService
	Editor    compose.Editor
	Scheduler common.Scheduler
	Clock     app.Clock
	IDs       app.IDGenerator

	PublishDelay time.Duration
	RefreshDelay time.Duration
	AuthDelay    time.Duration
	Locale       language.Tag

	// SkipLogin starts the session as Profiles.CurrentUser.
	SkipLogin bool
}

type activeView int

const (
	loginView activeView = iota
	registerView
	feedView
	profileView
	composeView
)

// sessionStartedMsg carries the signed-in user and the seed feed.
type sessionStartedMsg struct {
	user  domain.User
	posts []domain.Post
	err   error
}

// App is the root Bubble Tea model. It routes between screens and owns the
// feed state for the whole session.
type App struct {
	deps     Deps
	active   activeView
	login    login.Model
	register register.Model
	feed     feed.Model
	profile  profile.Model
	compose  compose.Model
	mgr      *feedstate.Manager
	keys     common.KeyMap
	status   string // Shown until the session starts or a screen replaces it
	size     *tea.WindowSizeMsg
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Scheduler == nil {
		deps.Scheduler = common.TickScheduler{}
	}
	if deps.Clock == nil {
		deps.Clock = app.SystemClock{}
	}
	a := App{
		deps:   deps,
		active: loginView,
		keys:   common.DefaultKeyMap(),
	}
	if deps.SkipLogin {
		a.active = feedView
		a.status = "Cargando..."
	} else {
		a.login = login.New(deps.Auth, deps.Scheduler, deps.AuthDelay)
	}
	return a
}

// Init starts the first screen.
func (a App) Init() tea.Cmd {
	if a.deps.SkipLogin {
		profiles := a.deps.Profiles
		return a.startSession(func(ctx context.Context) (domain.User, error) {
			return profiles.CurrentUser(ctx)
		})
	}
	return a.login.Init()
}

// Active reports the screen currently shown.
func (a App) Active() string {
	switch a.active {
	case loginView:
		return "login"
	case registerView:
		return "register"
	case feedView:
		return "feed"
	case profileView:
		return "profile"
	case composeView:
		return "compose"
	}
	return ""
}

// Manager returns the session's feed state, nil before sign-in.
func (a App) Manager() *feedstate.Manager { return a.mgr }

func (a App) startSession(user func(context.Context) (domain.User, error)) tea.Cmd {
	posts := a.deps.Posts
	return func() tea.Msg {
		ctx := context.Background()
		u, err := user(ctx)
		if err != nil {
			return sessionStartedMsg{err: err}
		}
		seed, err := posts.Seed(ctx)
		return sessionStartedMsg{user: u, posts: seed, err: err}
	}
}

func signedIn(u domain.User) func(context.Context) (domain.User, error) {
	return func(context.Context) (domain.User, error) { return u, nil }
}

func (a App) feedOptions() feed.Options {
	return feed.Options{
		Posts:        a.deps.Posts,
		Scheduler:    a.deps.Scheduler,
		Clock:        a.deps.Clock,
		Locale:       a.deps.Locale,
		PublishDelay: a.deps.PublishDelay,
		RefreshDelay: a.deps.RefreshDelay,
	}
}

// showFeed rebuilds the feed screen over the session manager.
func (a *App) showFeed() tea.Cmd {
	a.active = feedView
	a.feed = feed.New(a.mgr, a.feedOptions())
	if a.size != nil {
		a.feed, _ = a.feed.Update(*a.size)
	}
	return a.feed.Init()
}

// Update handles messages and routes to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = &msg
		a.login, _ = a.login.Update(msg)
		a.register, _ = a.register.Update(msg)
		a.profile, _ = a.profile.Update(msg)
		if a.mgr != nil {
			a.feed, _ = a.feed.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Quit) && a.canQuit() {
			return a, tea.Quit
		}

	case login.SwitchMsg:
		a.active = registerView
		a.register = register.New(a.deps.Auth, a.deps.Scheduler, a.deps.AuthDelay)
		if a.size != nil {
			a.register, _ = a.register.Update(*a.size)
		}
		return a, a.register.Init()

	case register.SwitchMsg:
		a.active = loginView
		a.login = login.New(a.deps.Auth, a.deps.Scheduler, a.deps.AuthDelay)
		if a.size != nil {
			a.login, _ = a.login.Update(*a.size)
		}
		return a, a.login.Init()

	case login.DoneMsg:
		slog.Info("signed in", "user", msg.User.ID)
		return a, a.startSession(signedIn(msg.User))

	case register.DoneMsg:
		slog.Info("registered", "user", msg.User.ID)
		a.status = register.SuccessText
		return a, a.startSession(signedIn(msg.User))

	case sessionStartedMsg:
		if msg.err != nil {
			slog.Error("session start failed", "err", msg.err)
			a.status = common.ErrorText(msg.err)
			return a, nil
		}
		a.mgr = feedstate.New(msg.user, msg.posts, a.deps.Clock, a.deps.IDs)
		cmd := a.showFeed()
		a.feed.SetStatus(a.status)
		a.status = ""
		return a, cmd

	case feed.PublishResultMsg, feed.RefreshResultMsg:
		// Results may land while another screen is shown.
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd

	case feed.OpenProfileMsg:
		a.active = profileView
		a.profile = profile.New(a.deps.Profiles, a.deps.Locale)
		if a.size != nil {
			a.profile, _ = a.profile.Update(*a.size)
		}
		return a, a.profile.Init()

	case profile.BackMsg:
		return a, a.showFeed()

	case feed.ComposeEditorMsg:
		if a.deps.Editor == nil {
			return a, nil
		}
		a.active = composeView
		a.compose = compose.NewEditor(a.deps.Editor, msg.Draft)
		return a, a.compose.Init()

	case compose.DoneMsg:
		a.active = feedView
		switch {
		case msg.Err != nil:
			a.feed.SetStatus(common.ErrorText(msg.Err))
			return a, nil
		case msg.Content == "":
			a.feed.SetStatus("Cancelado")
			return a, nil
		}
		var cmd tea.Cmd
		a.feed, cmd = a.feed.PublishContent(msg.Content)
		return a, cmd
	}

	// Delegate to the active screen.
	var cmd tea.Cmd
	switch a.active {
	case loginView:
		a.login, cmd = a.login.Update(msg)
	case registerView:
		a.register, cmd = a.register.Update(msg)
	case feedView:
		if a.mgr != nil {
			a.feed, cmd = a.feed.Update(msg)
		}
	case profileView:
		a.profile, cmd = a.profile.Update(msg)
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
	}
	return a, cmd
}

func (a App) canQuit() bool {
	switch a.active {
	case feedView:
		return a.mgr == nil || !a.feed.CapturingInput()
	case profileView:
		return true
	}
	return false
}

// View renders the active screen.
func (a App) View() string {
	var s string
	switch a.active {
	case loginView:
		s = a.login.View()
	case registerView:
		s = a.register.View()
	case feedView:
		if a.mgr != nil {
			s = a.feed.View()
		}
	case profileView:
		s = a.profile.View()
	case composeView:
		s = a.compose.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}
	return s
}
