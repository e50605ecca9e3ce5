package feedstate

import (
	"slices"
	"testing"
)

func TestScenario_PublishThenRefresh(t *testing.T) {
	backend := newMockBackend(2024)
	m := newTestManager()
	if m.Len() != 2 {
		t.Fatalf("expected 2 seeded posts")
	}

	m.SetDraft("Hello")
	content, err := m.BeginPublish()
	if err != nil {
		t.Fatalf("begin publish: %v", err)
	}
	post, err := backend.Publish(bg, m.CurrentUser(), content)
	m.CompletePublish(post, err)

	afterPublish := ids(m.Posts())
	if len(afterPublish) != 3 || m.Posts()[0].Content != "Hello" {
		t.Fatalf("unexpected feed after publish: %v", afterPublish)
	}
	if afterPublish[0] == "1" || afterPublish[0] == "2" {
		t.Fatalf("new post reused a seeded id")
	}

	if err := m.BeginRefresh(); err != nil {
		t.Fatalf("begin refresh: %v", err)
	}
	batch, err := backend.Refresh(bg)
	m.CompleteRefresh(batch, err)

	final := ids(m.Posts())
	if len(final) < 4 || len(final) > 6 {
		t.Fatalf("expected 4..6 posts, got %d", len(final))
	}
	if !slices.Equal(final[len(final)-3:], afterPublish) {
		t.Fatalf("original posts must remain as suffix: %v vs %v", final, afterPublish)
	}
}
