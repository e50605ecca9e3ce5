// Package feedstate holds the in-memory state of the home feed: posts,
// comment threads, likes, compose buffers and in-flight flags.
//
// Asynchronous intents are split in two. Begin* validates input, raises the
// in-flight flag and captures what the backend call needs; Complete* applies
// the backend result. A Manager is owned by a single goroutine (the Bubble Tea
// update loop) and is not safe for concurrent use.
package feedstate

import (
	"strings"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
)

// Manager is the Feed State Manager.
type Manager struct {
	user  domain.User
	clock app.Clock
	ids   app.IDGenerator

	posts []domain.Post

	draft        string
	commentDraft string
	selectedID   string

	publishing bool
	pending    string
	refreshing bool
	lastErr    error
}

// New creates a manager seeded with posts (newest first).
func New(user domain.User, seed []domain.Post, clock app.Clock, ids app.IDGenerator) *Manager {
	posts := make([]domain.Post, 0, len(seed))
	seen := make(map[string]struct{}, len(seed))
	for _, p := range seed {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		posts = append(posts, p.Clone())
	}
	return &Manager{
		user:  user,
		clock: clock,
		ids:   ids,
		posts: posts,
	}
}

// CurrentUser returns the author used for new posts and comments.
func (m *Manager) CurrentUser() domain.User { return m.user }

// Posts returns a copy of the feed, newest first.
func (m *Manager) Posts() []domain.Post {
	out := make([]domain.Post, len(m.posts))
	for i, p := range m.posts {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of posts in the feed.
func (m *Manager) Len() int { return len(m.posts) }

// Post returns the post with the given ID.
func (m *Manager) Post(id string) (domain.Post, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return domain.Post{}, false
	}
	return m.posts[i].Clone(), true
}

// Draft returns the compose buffer.
func (m *Manager) Draft() string { return m.draft }

// SetDraft replaces the compose buffer.
func (m *Manager) SetDraft(s string) { m.draft = s }

// CommentDraft returns the comment buffer.
func (m *Manager) CommentDraft() string { return m.commentDraft }

// SetCommentDraft replaces the comment buffer.
func (m *Manager) SetCommentDraft(s string) { m.commentDraft = s }

// Publishing reports whether a publish is in flight.
func (m *Manager) Publishing() bool { return m.publishing }

// Refreshing reports whether a refresh is in flight.
func (m *Manager) Refreshing() bool { return m.refreshing }

// CanPublish reports whether BeginPublish would be accepted.
func (m *Manager) CanPublish() bool {
	return !m.publishing && strings.TrimSpace(m.draft) != ""
}

// Err returns the last backend failure, cleared by the next successful
// completion.
func (m *Manager) Err() error { return m.lastErr }

// BeginPublish validates the compose buffer and marks a publish as in flight.
// It returns the trimmed content to hand to the backend.
func (m *Manager) BeginPublish() (string, error) {
	if m.publishing {
		return "", domain.ErrPublishInFlight
	}
	content := strings.TrimSpace(m.draft)
	if content == "" {
		return "", domain.ErrEmptyPost
	}
	m.publishing = true
	m.pending = content
	return content, nil
}

// CompletePublish applies the backend outcome of a publish. On failure the
// draft is kept so the user can retry without retyping. On success the draft
// is cleared only if it still holds the published content.
func (m *Manager) CompletePublish(post domain.Post, err error) {
	published := m.pending
	m.publishing = false
	m.pending = ""
	if err != nil {
		m.lastErr = err
		return
	}
	m.lastErr = nil
	if m.indexOf(post.ID) < 0 {
		m.posts = append([]domain.Post{post.Clone()}, m.posts...)
	}
	if strings.TrimSpace(m.draft) == published {
		m.draft = ""
	}
}

// BeginRefresh marks a refresh as in flight.
func (m *Manager) BeginRefresh() error {
	if m.refreshing {
		return domain.ErrRefreshInFlight
	}
	m.refreshing = true
	return nil
}

// CompleteRefresh prepends batch in order, skipping IDs already in the feed.
// It returns the number of posts added.
func (m *Manager) CompleteRefresh(batch []domain.Post, err error) int {
	m.refreshing = false
	if err != nil {
		m.lastErr = err
		return 0
	}
	m.lastErr = nil

	seen := make(map[string]struct{}, len(m.posts)+len(batch))
	for _, p := range m.posts {
		seen[p.ID] = struct{}{}
	}
	fresh := make([]domain.Post, 0, len(batch))
	for _, p := range batch {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		fresh = append(fresh, p.Clone())
	}
	if len(fresh) == 0 {
		return 0
	}
	m.posts = append(fresh, m.posts...)
	return len(fresh)
}

// ToggleLike flips the current user's like on a post and adjusts its count.
func (m *Manager) ToggleLike(id string) (domain.Post, error) {
	i := m.indexOf(id)
	if i < 0 {
		return domain.Post{}, domain.ErrPostNotFound
	}
	p := &m.posts[i]
	if p.Liked {
		p.Liked = false
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.Liked = true
		p.Likes++
	}
	return p.Clone(), nil
}

// OpenThread selects a post as the comment target.
func (m *Manager) OpenThread(id string) error {
	if m.indexOf(id) < 0 {
		return domain.ErrPostNotFound
	}
	if m.selectedID != id {
		m.commentDraft = ""
	}
	m.selectedID = id
	return nil
}

// CloseThread deselects the comment target. Comments stay on the post.
func (m *Manager) CloseThread() {
	m.selectedID = ""
	m.commentDraft = ""
}

// ThreadOpen reports whether a post is selected.
func (m *Manager) ThreadOpen() bool { return m.selectedID != "" }

// SelectedPost returns the selected post as currently stored in the feed.
func (m *Manager) SelectedPost() (domain.Post, bool) {
	if m.selectedID == "" {
		return domain.Post{}, false
	}
	return m.Post(m.selectedID)
}

// AddComment appends the comment buffer to the selected post.
func (m *Manager) AddComment() (domain.Comment, error) {
	content := strings.TrimSpace(m.commentDraft)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	if m.selectedID == "" {
		return domain.Comment{}, domain.ErrNoPostSelected
	}
	i := m.indexOf(m.selectedID)
	if i < 0 {
		return domain.Comment{}, domain.ErrPostNotFound
	}

	c := domain.Comment{
		ID:        m.ids.NewID("comment"),
		Author:    m.user.Snapshot(),
		Content:   content,
		CreatedAt: m.clock.Now(),
	}
	m.posts[i].Comments = append(m.posts[i].Comments, c)
	m.commentDraft = ""
	return c, nil
}

func (m *Manager) indexOf(id string) int {
	for i := range m.posts {
		if m.posts[i].ID == id {
			return i
		}
	}
	return -1
}
