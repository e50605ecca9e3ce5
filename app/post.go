package app

import (
	"context"

	"github.com/CrestNiraj12/termsocial/domain"
)

// PostService publishes posts and fetches new ones for the home feed.
type PostService interface {
	// Publish creates a post authored by author with the given content.
	Publish(ctx context.Context, author domain.User, content string) (domain.Post, error)

	// Refresh returns a batch of new posts, newest first.
	Refresh(ctx context.Context) ([]domain.Post, error)

	// Seed returns the posts the feed starts with, newest first.
	Seed(ctx context.Context) ([]domain.Post, error)
}

// IDGenerator produces session-unique identifiers.
type IDGenerator interface {
	NewID(prefix string) string
}
