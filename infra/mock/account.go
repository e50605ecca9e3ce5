package mock

import (
	"context"
	"log/slog"
	"strings"

	"github.com/CrestNiraj12/termsocial/domain"
)

// AccountService implements app.AuthService and app.ProfileService. Any
// well-formed credentials sign in as CurrentUser.
type AccountService struct {
	user    domain.User
	profile domain.Profile
}

// NewAccountService creates a service for the default account.
func NewAccountService() *AccountService {
	return &AccountService{user: CurrentUser, profile: DefaultProfile()}
}

// Login validates field presence only.
func (s *AccountService) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	if err := creds.Validate(); err != nil {
		return domain.User{}, err
	}
	slog.Info("login", "email", strings.TrimSpace(creds.Email))
	return s.user, nil
}

// Register validates the form and signs in as the default account.
func (s *AccountService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	if err := reg.Validate(); err != nil {
		return domain.User{}, err
	}
	slog.Info("register", "email", strings.TrimSpace(reg.Email))
	return s.user, nil
}

// CurrentUser returns the signed-in user.
func (s *AccountService) CurrentUser(ctx context.Context) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	return s.user, nil
}

// CurrentProfile returns the signed-in user's profile card.
func (s *AccountService) CurrentProfile(ctx context.Context) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}
	p := s.profile
	p.Posts = append([]domain.ProfilePost(nil), s.profile.Posts...)
	return p, nil
}
