package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/auth"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// ErrMissingToken is returned when the server accepted credentials but sent
// no token back.
var ErrMissingToken = errors.New("No JWT token received from server")

// Register creates an account and signs the user in.
func (s *Service) Register(ctx context.Context, input RegisterInput) error {
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)

	if err := input.Validate(); err != nil {
		return s.reject(ctx, store.FamilyAuth, err)
	}

	t := s.state.Begin(store.FamilyAuth)

	res, err := s.api.Signup(ctx, api.SignupRequest{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, registerCopy))
		return fmt.Errorf("session.Register: %w", err)
	}
	if res.Token == "" {
		s.fail(ctx, t, ErrMissingToken.Error())
		return fmt.Errorf("session.Register: %w", ErrMissingToken)
	}

	if err := s.signIn(ctx, t, res.Token, "", nil); err != nil {
		return fmt.Errorf("session.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("email", input.Email))
	s.notify.Success(ctx, msgRegistered)

	_, _ = s.GetCurrentUser(ctx)
	return nil
}

// Login signs in with email and password.
func (s *Service) Login(ctx context.Context, input LoginInput) error {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return s.reject(ctx, store.FamilyAuth, err)
	}

	t := s.state.Begin(store.FamilyAuth)

	res, err := s.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		s.fail(ctx, t, domain.Describe(err, loginCopy))
		return fmt.Errorf("session.Login: %w", err)
	}
	if res.Token == "" {
		if s.state.Fail(ctx, t, ErrMissingToken.Error()) == nil {
			s.notify.Error(ctx, msgLoginNoToken)
		}
		return fmt.Errorf("session.Login: %w", ErrMissingToken)
	}

	if err := s.signIn(ctx, t, res.Token, "", nil); err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("email", input.Email))
	s.notify.Success(ctx, msgLoggedIn)

	_, _ = s.GetCurrentUser(ctx)
	return nil
}

// signIn persists token and commits the ticket. The token is saved before
// the commit so that any request issued by a subscriber already carries it.
func (s *Service) signIn(ctx context.Context, t store.Ticket, token string, provider domain.OAuthProvider, user *domain.User) error {
	if err := s.persist(ctx, t, token); err != nil {
		if errors.Is(err, domain.ErrStale) {
			_ = s.state.Fail(ctx, t, "")
			return err
		}
		s.fail(ctx, t, "Failed to store session")
		return fmt.Errorf("save token: %w", err)
	}

	if err := s.state.Authenticated(ctx, t, token, provider, user); err != nil {
		s.discard(ctx, token)
		return err
	}
	return nil
}

// expiry returns the exp claim of token, or the zero time when it has none
// or is not a JWT.
func (s *Service) expiry(token string) time.Time {
	claims, err := auth.Inspect(token)
	if err != nil {
		s.log.Debug("token is not a readable JWT", slog.String("error", err.Error()))
		return time.Time{}
	}
	return claims.ExpiresAt
}
