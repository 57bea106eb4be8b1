package store

import (
	"context"
	"log/slog"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Session request families.
const (
	FamilyAuth    = "auth"
	FamilyProfile = "profile"
	FamilyOAuth   = "oauth"
	FamilyForgot  = "forgot_password"
	FamilyReset   = "reset_password"
)

// PasswordFlow tracks one of the password recovery requests.
type PasswordFlow struct {
	Status
	Success bool `json:"success"`
}

// SessionState is the authentication slice.
type SessionState struct {
	User        *domain.User `json:"user,omitempty"`
	Token       string       `json:"-"`
	ProjectSize int          `json:"projectSize"`
	Status

	OAuth         Status               `json:"oauth"`
	IsOAuthUser   bool                 `json:"isOAuthUser"`
	OAuthProvider domain.OAuthProvider `json:"oauthProvider,omitempty"`

	ForgotPassword PasswordFlow `json:"forgotPassword"`
	ResetPassword  PasswordFlow `json:"resetPassword"`
}

// Authenticated reports whether a token is held.
func (s SessionState) Authenticated() bool { return s.Token != "" }

// Session owns the authentication slice.
type Session struct {
	*Slice[SessionState]
}

// NewSession creates an empty session store.
func NewSession(logger *slog.Logger) *Session {
	return &Session{Slice: NewSlice("session",
		func() SessionState { return SessionState{} },
		cloneSession,
		sessionStatus,
		logger,
	)}
}

func sessionStatus(st *SessionState, family string) *Status {
	switch family {
	case FamilyOAuth:
		return &st.OAuth
	case FamilyForgot:
		return &st.ForgotPassword.Status
	case FamilyReset:
		return &st.ResetPassword.Status
	}
	return &st.Status
}

func cloneSession(s SessionState) SessionState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Authenticated records a token after register, login or OAuth completion.
// user may be nil when the profile is fetched separately. A non-empty
// provider marks the session as an OAuth login.
func (s *Session) Authenticated(ctx context.Context, t Ticket, token string, provider domain.OAuthProvider, user *domain.User) error {
	return s.Commit(ctx, t, func(st *SessionState) {
		st.Token = token
		st.Error = ""
		if user != nil {
			u := *user
			st.User = &u
			st.ProjectSize = u.ProjectSize
		}
		if provider != "" {
			st.IsOAuthUser = true
			st.OAuthProvider = provider
		}
	})
}

// ProfileLoaded records the current user.
func (s *Session) ProfileLoaded(ctx context.Context, t Ticket, u domain.User) error {
	return s.Commit(ctx, t, func(st *SessionState) {
		st.User = &u
		st.ProjectSize = u.ProjectSize
	})
}

// Rehydrated sets the token found in durable storage at start-up.
func (s *Session) Rehydrated(token string) {
	s.Update(func(st *SessionState) { st.Token = token })
}

// PasswordSucceeded marks the ticket's password flow as successful.
func (s *Session) PasswordSucceeded(ctx context.Context, t Ticket) error {
	return s.Commit(ctx, t, func(st *SessionState) {
		switch t.Family {
		case FamilyForgot:
			st.ForgotPassword.Success = true
		case FamilyReset:
			st.ResetPassword.Success = true
		}
	})
}

// ClearPasswordState resets both recovery flows.
func (s *Session) ClearPasswordState() {
	s.Update(func(st *SessionState) {
		st.ForgotPassword = PasswordFlow{}
		st.ResetPassword = PasswordFlow{}
	})
}
