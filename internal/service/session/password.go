package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// ForgotPassword requests a reset link and OTP for email.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return s.reject(ctx, store.FamilyForgot, domain.NewValidationError("email", "Email is required"))
	}

	t := s.state.Begin(store.FamilyForgot)

	if _, err := s.api.ForgotPassword(ctx, email); err != nil {
		s.fail(ctx, t, domain.Describe(err, forgotPasswordCopy))
		return fmt.Errorf("session.ForgotPassword: %w", err)
	}

	if err := s.state.PasswordSucceeded(ctx, t); err != nil {
		return err
	}
	s.notify.Success(ctx, msgResetLinkSent)
	return nil
}

// ResetPassword sets a new password with the emailed token and OTP.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	input.Token = strings.TrimSpace(input.Token)
	input.OTP = strings.TrimSpace(input.OTP)

	if err := input.Validate(); err != nil {
		return s.reject(ctx, store.FamilyReset, err)
	}

	t := s.state.Begin(store.FamilyReset)

	if _, err := s.api.ResetPassword(ctx, input.Token, input.OTP, input.NewPassword); err != nil {
		s.fail(ctx, t, domain.Describe(err, resetPasswordCopy))
		return fmt.Errorf("session.ResetPassword: %w", err)
	}

	if err := s.state.PasswordSucceeded(ctx, t); err != nil {
		return err
	}
	s.notify.Success(ctx, msgPasswordReset)
	return nil
}

// ClearPasswordState resets both password recovery flows.
func (s *Service) ClearPasswordState() {
	s.state.ClearPasswordState()
}
