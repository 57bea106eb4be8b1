package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Signup registers a new account. The returned token may be empty; callers
// decide whether that is an error.
func (c *Client) Signup(ctx context.Context, in SignupRequest) (*domain.AuthResult, error) {
	p, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/signup", body: in})
	if err != nil {
		return nil, fmt.Errorf("api.Signup: %w", err)
	}
	return authResult(p)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, fmt.Errorf("api.Login: %w", err)
	}
	return authResult(p)
}

func authResult(p *Payload) (*domain.AuthResult, error) {
	res, err := decode[domain.AuthResult](p)
	if err != nil {
		return nil, err
	}
	if res.Message == "" {
		res.Message = p.Message
	}
	return &res, nil
}

// Profile returns the user the current token belongs to.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: "/api/users/profile"})
	if err != nil {
		return nil, fmt.Errorf("api.Profile: %w", err)
	}
	u, err := decode[domain.User](p)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ForgotPassword asks the server to mail a reset link and OTP.
// Returns the server's confirmation message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/users/forgot-password",
		body:   forgotPasswordRequest{Email: email},
	})
	if err != nil {
		return "", fmt.Errorf("api.ForgotPassword: %w", err)
	}
	return p.Message, nil
}

// ResetPassword sets a new password using the emailed token and OTP.
func (c *Client) ResetPassword(ctx context.Context, token, otp, newPassword string) (string, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/users/reset-password",
		query:  url.Values{"token": {token}},
		body:   resetPasswordRequest{OTP: otp, NewPassword: newPassword},
	})
	if err != nil {
		return "", fmt.Errorf("api.ResetPassword: %w", err)
	}
	return p.Message, nil
}
