package app

import (
	"context"

	"github.com/CrestNiraj12/termsocial/domain"
)

// AuthService signs users in and up.
type AuthService interface {
	// Login authenticates with the given credentials.
	Login(ctx context.Context, creds domain.Credentials) (domain.User, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
}

// ProfileService provides information about the signed-in user.
type ProfileService interface {
	// CurrentUser returns the signed-in user.
	CurrentUser(ctx context.Context) (domain.User, error)

	// CurrentProfile returns the signed-in user's profile card.
	CurrentProfile(ctx context.Context) (domain.Profile, error)
}
