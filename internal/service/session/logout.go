package session

import (
	"context"
	"fmt"
	"log/slog"
)

// Logout forgets the token, resets the session slice and runs the teardown
// hooks, which cancel background refreshers and reset the other stores.
func (s *Service) Logout(ctx context.Context) error {
	s.tokenMu.Lock()
	clearErr := s.tokens.Clear(ctx)
	s.state.Reset()
	s.tokenMu.Unlock()
	if clearErr != nil {
		s.log.ErrorContext(ctx, "clear token failed", slog.String("error", clearErr.Error()))
	}

	s.teardown()

	s.log.InfoContext(ctx, "user logged out")
	s.notify.Success(ctx, msgLoggedOut)

	if clearErr != nil {
		return fmt.Errorf("session.Logout: %w", clearErr)
	}
	return nil
}
