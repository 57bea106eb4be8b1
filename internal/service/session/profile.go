package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Achamanp/ProjectManagentApp/internal/auth"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// GetCurrentUser loads the profile of the signed-in user. Without a stored
// token it fails quietly with domain.ErrNoToken.
func (s *Service) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	t := s.state.Begin(store.FamilyProfile)

	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.fail(ctx, t, msgProfileFailed)
		return nil, fmt.Errorf("session.GetCurrentUser: load token: %w", err)
	}
	if token == "" {
		_ = s.state.Fail(ctx, t, domain.ErrNoToken.Error())
		return nil, domain.ErrNoToken
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		if s.state.Fail(ctx, t, domain.Describe(err, profileCopy)) == nil {
			s.notify.Error(ctx, msgProfileFailed)
		}
		return nil, fmt.Errorf("session.GetCurrentUser: %w", err)
	}

	if err := s.state.ProfileLoaded(ctx, t, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// Rehydrate restores the session from durable storage at start-up and
// returns the token, or "" when there is none. A JWT whose exp has passed
// is discarded.
func (s *Service) Rehydrate(ctx context.Context) (string, error) {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("session.Rehydrate: %w", err)
	}
	if token == "" {
		return "", nil
	}

	claims, err := auth.Inspect(token)
	if err == nil && claims.Expired(s.clock.Now()) {
		s.log.InfoContext(ctx, "stored token expired", slog.Time("expired_at", claims.ExpiresAt))
		if err := s.tokens.Clear(ctx); err != nil {
			return "", fmt.Errorf("session.Rehydrate: clear expired token: %w", err)
		}
		return "", nil
	}

	s.state.Rehydrated(token)
	return token, nil
}

// RequireToken returns domain.ErrNoToken unless a token is stored.
func (s *Service) RequireToken(ctx context.Context) error {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("session.RequireToken: %w", err)
	}
	if token == "" {
		return domain.ErrNoToken
	}
	return nil
}

// IsNoToken reports whether err means the user is signed out.
func IsNoToken(err error) bool {
	return errors.Is(err, domain.ErrNoToken)
}
