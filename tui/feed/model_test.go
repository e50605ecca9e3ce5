package feed

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func TestComposeAndPublishAfterDelay(t *testing.T) {
	f := newFixture()
	f.runes("n")
	if !f.m.Composing() || !f.m.CapturingInput() {
		t.Fatalf("expected compose box focused")
	}
	f.runes("Hola")
	if f.mgr.Draft() != "Hola" {
		t.Fatalf("expected draft synced, got %q", f.mgr.Draft())
	}

	f.key(tea.KeyCtrlS)
	if !f.mgr.Publishing() {
		t.Fatalf("expected publishing after ctrl+s")
	}
	if !strings.Contains(f.m.View(), "Publicando...") {
		t.Fatalf("expected publishing label in view")
	}

	if n := f.advance(publishDelay - time.Millisecond); n != 0 {
		t.Fatalf("publish resolved before its delay")
	}
	if n := f.advance(time.Millisecond); n != 1 {
		t.Fatalf("expected publish to resolve, got %d messages", n)
	}

	posts := f.mgr.Posts()
	if len(posts) != 3 || posts[0].Content != "Hola" || posts[0].Author.ID != testUser.ID {
		t.Fatalf("expected new head post, got %#v", posts[0])
	}
	if f.mgr.Draft() != "" || f.m.compose.Value() != "" {
		t.Fatalf("expected compose box cleared")
	}
	if f.m.Composing() || f.mgr.Publishing() {
		t.Fatalf("expected idle state after publish")
	}
	if f.m.Status() != "Publicado" {
		t.Fatalf("unexpected status %q", f.m.Status())
	}
}

func TestBlankPublishIsNoOp(t *testing.T) {
	f := newFixture()
	f.runes("n")
	f.runes("   ")
	f.key(tea.KeyCtrlS)
	if f.mgr.Publishing() || f.sched.Pending() != 0 {
		t.Fatalf("blank draft must not publish")
	}
	if f.mgr.Len() != 2 {
		t.Fatalf("feed must be unchanged, got %d posts", f.mgr.Len())
	}
}

func TestTypingIgnoredWhilePublishing(t *testing.T) {
	f := newFixture()
	f.runes("n")
	f.runes("Hola")
	f.key(tea.KeyCtrlS)
	f.runes("x")
	f.key(tea.KeyCtrlS)
	if f.mgr.Draft() != "Hola" {
		t.Fatalf("draft changed while publishing: %q", f.mgr.Draft())
	}
	if f.sched.Pending() != 1 {
		t.Fatalf("expected a single publish in flight, got %d", f.sched.Pending())
	}
}

func TestPublishFailureKeepsDraft(t *testing.T) {
	f := newFixture()
	f.posts.publishErr = errors.New("servidor caído")
	f.runes("n")
	f.runes("Hola")
	f.key(tea.KeyCtrlS)
	f.advance(publishDelay)

	if f.mgr.Len() != 2 {
		t.Fatalf("failed publish must not add a post")
	}
	if f.mgr.Draft() != "Hola" || f.m.compose.Value() != "Hola" {
		t.Fatalf("expected draft kept after failure")
	}
	if f.mgr.Publishing() {
		t.Fatalf("expected publishing cleared")
	}
	if !strings.Contains(f.m.View(), "servidor caído") {
		t.Fatalf("expected error in view")
	}
}

func TestRefreshPrependsBatch(t *testing.T) {
	f := newFixture()
	f.runes("j")
	f.runes("r")
	if !f.mgr.Refreshing() {
		t.Fatalf("expected refreshing")
	}
	if !strings.Contains(f.m.View(), "Cargando nuevos posts...") {
		t.Fatalf("expected refreshing label in view")
	}
	f.runes("r")
	if f.sched.Pending() != 1 {
		t.Fatalf("refresh while refreshing must be rejected, pending=%d", f.sched.Pending())
	}

	f.advance(refreshDelay)
	posts := f.mgr.Posts()
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	if strings.Join(ids, ",") != "r1-a,r1-b,1,2" {
		t.Fatalf("unexpected order %v", ids)
	}
	if f.m.Cursor() != 0 {
		t.Fatalf("expected cursor reset to top, got %d", f.m.Cursor())
	}
	if f.m.Status() != "2 posts nuevos" {
		t.Fatalf("unexpected status %q", f.m.Status())
	}
}

func TestRefreshFailureKeepsFeed(t *testing.T) {
	f := newFixture()
	f.posts.refreshErr = errors.New("sin red")
	f.runes("r")
	f.advance(refreshDelay)
	if f.mgr.Len() != 2 || f.mgr.Refreshing() {
		t.Fatalf("failed refresh must leave the feed untouched")
	}
}

func TestLikeTogglesSelectedPost(t *testing.T) {
	f := newFixture()
	f.runes("j")
	f.runes("l")
	p, _ := f.mgr.Post("2")
	if !p.Liked || p.Likes != 4 {
		t.Fatalf("expected second post liked, got %#v", p)
	}
	f.runes("l")
	p, _ = f.mgr.Post("2")
	if p.Liked || p.Likes != 3 {
		t.Fatalf("expected like undone, got %#v", p)
	}
	if first, _ := f.mgr.Post("1"); first.Liked {
		t.Fatalf("first post must be untouched")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	f := newFixture()
	f.send(tea.WindowSizeMsg{Width: 80, Height: 30})
	for range 5 {
		f.runes("j")
	}
	if f.m.Cursor() != 1 {
		t.Fatalf("expected cursor on last post, got %d", f.m.Cursor())
	}
	for range 5 {
		f.runes("k")
	}
	if f.m.Cursor() != 0 {
		t.Fatalf("expected cursor on first post, got %d", f.m.Cursor())
	}
}

func TestCommentThread(t *testing.T) {
	f := newFixture()
	f.runes("c")
	if !f.mgr.ThreadOpen() || !f.m.CapturingInput() {
		t.Fatalf("expected thread open")
	}
	if !strings.Contains(f.m.View(), "Sé el primero en comentar") {
		t.Fatalf("expected empty thread label")
	}

	f.key(tea.KeyEnter)
	if p, _ := f.mgr.Post("1"); len(p.Comments) != 0 {
		t.Fatalf("blank comment must be rejected")
	}

	f.runes("q genial")
	f.key(tea.KeyEnter)
	p, _ := f.mgr.Post("1")
	if len(p.Comments) != 1 || p.Comments[0].Content != "q genial" {
		t.Fatalf("expected one comment, got %#v", p.Comments)
	}
	if p.Comments[0].Author.Name != testUser.Name {
		t.Fatalf("expected comment by current user, got %q", p.Comments[0].Author.Name)
	}
	if f.m.comment.Value() != "" || f.mgr.CommentDraft() != "" {
		t.Fatalf("expected comment box cleared")
	}
	if !strings.Contains(f.m.View(), "q genial") {
		t.Fatalf("expected comment in thread view")
	}

	f.key(tea.KeyEsc)
	if f.mgr.ThreadOpen() {
		t.Fatalf("expected thread closed")
	}
	if p, _ := f.mgr.Post("1"); len(p.Comments) != 1 {
		t.Fatalf("closing the thread must keep comments")
	}
}

func TestNavigationMessages(t *testing.T) {
	f := newFixture()
	f.mgr.SetDraft("borrador")

	cmd := f.runes("e")
	if cmd == nil {
		t.Fatalf("expected editor command")
	}
	msg, ok := cmd().(ComposeEditorMsg)
	if !ok || msg.Draft != "borrador" {
		t.Fatalf("expected ComposeEditorMsg with draft, got %#v", msg)
	}

	cmd = f.runes("p")
	if cmd == nil {
		t.Fatalf("expected profile command")
	}
	if _, ok := cmd().(OpenProfileMsg); !ok {
		t.Fatalf("expected OpenProfileMsg")
	}
}

func TestPublishContentFromEditor(t *testing.T) {
	f := newFixture()
	f.m, _ = f.m.PublishContent("desde el editor")
	if !f.mgr.Publishing() {
		t.Fatalf("expected publish in flight")
	}
	f.advance(publishDelay)
	if posts := f.mgr.Posts(); posts[0].Content != "desde el editor" {
		t.Fatalf("expected editor post at head, got %q", posts[0].Content)
	}
}

func TestEditorContentWhilePublishing(t *testing.T) {
	f := newFixture()
	f.m, _ = f.m.PublishContent("primer post")

	var cmd tea.Cmd
	f.m, cmd = f.m.PublishContent("segundo post desde el editor")
	if cmd != nil {
		t.Fatalf("publish while publishing must be rejected")
	}
	if f.mgr.Draft() != "primer post" {
		t.Fatalf("rejected publish must not touch the draft, got %q", f.mgr.Draft())
	}
	if !strings.Contains(f.m.View(), "Ya se está publicando") {
		t.Fatalf("expected in-flight notice in view")
	}
	if cmd := f.runes("e"); cmd != nil {
		t.Fatalf("editor must not open while publishing")
	}

	f.advance(publishDelay)
	if len(f.posts.published) != 1 || f.posts.published[0] != "primer post" {
		t.Fatalf("expected only the first post published, got %v", f.posts.published)
	}
	if f.mgr.Publishing() || f.mgr.Draft() != "" {
		t.Fatalf("expected publish finished and draft cleared")
	}
}

func TestEditedDraftSurvivesPublish(t *testing.T) {
	f := newFixture()
	f.runes("n")
	f.runes("uno")
	f.key(tea.KeyCtrlS)
	f.mgr.SetDraft("dos")
	f.advance(publishDelay)

	if f.mgr.Draft() != "dos" || f.m.compose.Value() != "dos" {
		t.Fatalf("expected newer draft kept, got %q / %q", f.mgr.Draft(), f.m.compose.Value())
	}
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	f := newFixture()
	if cmd := f.send(spinner.TickMsg{}); cmd != nil {
		t.Fatalf("idle feed must not keep ticking")
	}
	if cmd := f.m.Init(); cmd != nil {
		t.Fatalf("idle feed needs no init command")
	}
}

func TestDraftSurvivesRebuild(t *testing.T) {
	f := newFixture()
	f.runes("n")
	f.runes("a medias")
	rebuilt := New(f.mgr, f.m.opts)
	if rebuilt.compose.Value() != "a medias" {
		t.Fatalf("expected draft restored, got %q", rebuilt.compose.Value())
	}
}
