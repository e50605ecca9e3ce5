package feedstate

import (
	"context"
	"time"

	"github.com/CrestNiraj12/termsocial/app"
	"github.com/CrestNiraj12/termsocial/domain"
	"github.com/CrestNiraj12/termsocial/infra/mock"
)

var testNow = time.Date(2025, time.July, 2, 12, 0, 0, 0, time.UTC)

type seqIDs struct{ n int }

func (s *seqIDs) NewID(prefix string) string {
	s.n++
	return prefix + "-" + string(rune('a'+s.n-1))
}

func newTestManager() *Manager {
	clock := app.ClockFunc(func() time.Time { return testNow })
	return New(mock.CurrentUser, mock.SeedPosts(), clock, &seqIDs{})
}

func newMockBackend(seed uint64) *mock.PostService {
	clock := app.ClockFunc(func() time.Time { return testNow })
	r := mock.NewRandom(seed)
	return mock.NewPostService(clock, r, mock.NewIDGenerator(clock, r))
}

func ids(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

var bg = context.Background()
