package feed

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/feedstate"
	"github.com/CrestNiraj12/termsocial/tui/common"
)

const (
	publishDelay = time.Second
	refreshDelay = 1500 * time.Millisecond
)

var testNow = time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

type stubPosts struct {
	publishErr error
	refreshErr error
	published  []string
	refreshes  int
}

func (s *stubPosts) Seed(context.Context) ([]domain.Post, error) { return nil, nil }

func (s *stubPosts) Publish(_ context.Context, author domain.User, content string) (domain.Post, error) {
	if s.publishErr != nil {
		return domain.Post{}, s.publishErr
	}
	s.published = append(s.published, content)
	return domain.Post{
		ID:        fmt.Sprintf("pub-%d", len(s.published)),
		Author:    author,
		Content:   content,
		CreatedAt: testNow,
	}, nil
}

func (s *stubPosts) Refresh(context.Context) ([]domain.Post, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	s.refreshes++
	return []domain.Post{
		makePost(fmt.Sprintf("r%d-a", s.refreshes), "fresh a"),
		makePost(fmt.Sprintf("r%d-b", s.refreshes), "fresh b"),
	}, nil
}

type seqIDs struct{ n int }

func (g *seqIDs) NewID(prefix string) string {
	g.n++
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

func makePost(id, content string) domain.Post {
	return domain.Post{
		ID:        id,
		Author:    domain.User{ID: "u-" + id, Name: "Autor " + id},
		Content:   content,
		CreatedAt: testNow.Add(-time.Hour),
		Likes:     3,
	}
}

var testUser = domain.User{ID: "me", Name: "Ariel Faivisovich", Verified: true}

type fixture struct {
	m     Model
	mgr   *feedstate.Manager
	posts *stubPosts
	sched *common.ManualScheduler
}

func newFixture(seed ...domain.Post) *fixture {
	if seed == nil {
		seed = []domain.Post{makePost("1", "primero"), makePost("2", "segundo")}
	}
	clock := app.ClockFunc(func() time.Time { return testNow })
	mgr := feedstate.New(testUser, seed, clock, &seqIDs{})
	posts := &stubPosts{}
	sched := &common.ManualScheduler{}
	m := New(mgr, Options{
		Posts:        posts,
		Scheduler:    sched,
		Clock:        clock,
		Locale:       language.Spanish,
		PublishDelay: publishDelay,
		RefreshDelay: refreshDelay,
	})
	return &fixture{m: m, mgr: mgr, posts: posts, sched: sched}
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.m, cmd = f.m.Update(msg)
	return cmd
}

func (f *fixture) key(t tea.KeyType) tea.Cmd {
	return f.send(tea.KeyMsg{Type: t})
}

func (f *fixture) runes(s string) tea.Cmd {
	return f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// advance moves virtual time and feeds every fired result back to the model.
func (f *fixture) advance(d time.Duration) int {
	msgs := f.sched.Advance(d)
	for _, msg := range msgs {
		f.send(msg)
	}
	return len(msgs)
}
