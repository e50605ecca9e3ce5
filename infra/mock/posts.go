package mock

import (
	"context"
	"log/slog"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
)

const (
	maxRefreshBatch = 3
	maxRandomLikes  = 50
	maxRandomShares = 10
)

// PostService is an in-process app.PostService. It never fails; latency is
// added by the caller's scheduler.
type PostService struct {
	clock   app.Clock
	rand    *Random
	ids     app.IDGenerator
	authors []domain.User
	texts   []string
	seed    func() []domain.Post
}

// NewPostService creates a service drawing from the default candidate pools.
func NewPostService(clock app.Clock, r *Random, ids app.IDGenerator) *PostService {
	return &PostService{
		clock:   clock,
		rand:    r,
		ids:     ids,
		authors: CandidateAuthors,
		texts:   CandidateTexts,
		seed:    SeedPosts,
	}
}

// Seed returns the initial feed.
func (s *PostService) Seed(ctx context.Context) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.seed(), nil
}

// Publish builds a fresh post for author.
func (s *PostService) Publish(ctx context.Context, author domain.User, content string) (domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return domain.Post{}, err
	}
	p := domain.Post{
		ID:        s.ids.NewID("post"),
		Author:    author,
		Content:   content,
		CreatedAt: s.clock.Now(),
	}
	slog.Debug("post published", "id", p.ID, "author", author.ID)
	return p, nil
}

// Refresh generates between 1 and 3 random posts.
func (s *PostService) Refresh(ctx context.Context) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := s.rand.IntN(maxRefreshBatch) + 1
	batch := make([]domain.Post, 0, n)
	for range n {
		batch = append(batch, s.randomPost())
	}
	slog.Debug("feed refreshed", "count", n)
	return batch, nil
}

func (s *PostService) randomPost() domain.Post {
	return domain.Post{
		ID:        s.ids.NewID("random"),
		Author:    Pick(s.rand, s.authors),
		Content:   Pick(s.rand, s.texts),
		CreatedAt: s.clock.Now(),
		Likes:     s.rand.IntN(maxRandomLikes),
		Shares:    s.rand.IntN(maxRandomShares),
	}
}
