package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/auth"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// InitiateOAuth starts the provider's browser login flow and returns the
// URL the user is sent to. The OAuth family stays loading until the
// redirect comes back through ProcessOAuthRedirect or CompleteOAuth.
func (s *Service) InitiateOAuth(ctx context.Context, provider string) (string, error) {
	p := domain.OAuthProvider(strings.ToLower(strings.TrimSpace(provider)))

	if !p.IsValid() || !s.cfg.IsProviderAllowed(p.String()) {
		return "", s.reject(ctx, store.FamilyOAuth, domain.NewValidationError("provider", msgUnsupportedSSO))
	}

	s.state.Begin(store.FamilyOAuth)

	target := s.api.OAuthURL(p.String())
	s.nav.Navigate(ctx, target)

	s.log.InfoContext(ctx, "oauth flow started", slog.String("provider", p.String()))
	return target, nil
}

// CompleteOAuth finishes an OAuth login with a token obtained out of band.
// user may be nil; provider defaults to unknown.
func (s *Service) CompleteOAuth(ctx context.Context, token string, user *domain.User, provider domain.OAuthProvider) error {
	t := s.state.Begin(store.FamilyOAuth)
	return s.completeOAuth(ctx, t, token, user, provider)
}

func (s *Service) completeOAuth(ctx context.Context, t store.Ticket, token string, user *domain.User, provider domain.OAuthProvider) error {
	if token == "" {
		s.fail(ctx, t, msgNoOAuthToken)
		return fmt.Errorf("session.CompleteOAuth: %w", errors.New(msgNoOAuthToken))
	}
	if provider == "" {
		provider = domain.OAuthUnknown
	}

	if err := s.signIn(ctx, t, token, provider, user); err != nil {
		return fmt.Errorf("session.CompleteOAuth: %w", err)
	}

	s.log.InfoContext(ctx, "oauth login completed", slog.String("provider", provider.String()))
	s.notify.Success(ctx, msgOAuthLoggedIn)
	return nil
}

// ProcessOAuthRedirect handles the URL the backend redirects to after an
// OAuth login. It reports whether a session was established. The OAuth
// parameters are always stripped from the location afterwards.
func (s *Service) ProcessOAuthRedirect(ctx context.Context, redirectURL string) (bool, error) {
	r, err := auth.ParseRedirect(redirectURL)
	if err != nil {
		return false, fmt.Errorf("session.ProcessOAuthRedirect: %w", err)
	}
	defer s.nav.Replace(ctx, r.Clean)

	t := s.state.Begin(store.FamilyOAuth)

	if r.Error != "" {
		s.fail(ctx, t, r.Error)
		return false, fmt.Errorf("session.ProcessOAuthRedirect: %w", errors.New(r.Error))
	}
	if r.Token == "" {
		s.fail(ctx, t, auth.ErrNoRedirectToken.Error())
		return false, fmt.Errorf("session.ProcessOAuthRedirect: %w", auth.ErrNoRedirectToken)
	}

	// The profile call below authenticates with the stored token.
	if err := s.persist(ctx, t, r.Token); err != nil {
		if errors.Is(err, domain.ErrStale) {
			_ = s.state.Fail(ctx, t, "")
			return false, fmt.Errorf("session.ProcessOAuthRedirect: %w", err)
		}
		s.fail(ctx, t, "Failed to store session")
		return false, fmt.Errorf("session.ProcessOAuthRedirect: save token: %w", err)
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		msg := domain.Describe(err, oauthCopy)
		if s.state.Fail(ctx, t, msg) != nil {
			s.discard(ctx, r.Token)
		} else {
			s.notify.Error(ctx, msg)
		}
		return false, fmt.Errorf("session.ProcessOAuthRedirect: %w", err)
	}

	if err := s.completeOAuth(ctx, t, r.Token, user, r.Provider); err != nil {
		return false, err
	}
	return true, nil
}
