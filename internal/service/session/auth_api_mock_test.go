package session

import (
	"context"
	"sync"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

var _ authAPI = &authAPIMock{}

type authAPIMock struct {
	ForgotPasswordFunc func(ctx context.Context, email string) (string, error)
	LoginFunc          func(ctx context.Context, email string, password string) (*domain.AuthResult, error)
	OAuthURLFunc       func(provider string) string
	ProfileFunc        func(ctx context.Context) (*domain.User, error)
	ResetPasswordFunc  func(ctx context.Context, token string, otp string, newPassword string) (string, error)
	SignupFunc         func(ctx context.Context, in api.SignupRequest) (*domain.AuthResult, error)

	calls struct {
		ForgotPassword []struct {
			Ctx   context.Context
			Email string
		}
		Login []struct {
			Ctx      context.Context
			Email    string
			Password string
		}
		OAuthURL      []struct{ Provider string }
		Profile       []struct{ Ctx context.Context }
		ResetPassword []struct {
			Ctx         context.Context
			Token       string
			Otp         string
			NewPassword string
		}
		Signup []struct {
			Ctx context.Context
			In  api.SignupRequest
		}
	}
	lockForgotPassword sync.RWMutex
	lockLogin          sync.RWMutex
	lockOAuthURL       sync.RWMutex
	lockProfile        sync.RWMutex
	lockResetPassword  sync.RWMutex
	lockSignup         sync.RWMutex
}

func (mock *authAPIMock) ForgotPassword(ctx context.Context, email string) (string, error) {
	if mock.ForgotPasswordFunc == nil {
		panic("authAPIMock.ForgotPasswordFunc: method is nil but authAPI.ForgotPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockForgotPassword.Lock()
	mock.calls.ForgotPassword = append(mock.calls.ForgotPassword, callInfo)
	mock.lockForgotPassword.Unlock()
	return mock.ForgotPasswordFunc(ctx, email)
}

func (mock *authAPIMock) ForgotPasswordCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockForgotPassword.RLock()
	calls := mock.calls.ForgotPassword
	mock.lockForgotPassword.RUnlock()
	return calls
}

func (mock *authAPIMock) Login(ctx context.Context, email string, password string) (*domain.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authAPIMock.LoginFunc: method is nil but authAPI.Login was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Password string
	}{Ctx: ctx, Email: email, Password: password}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, email, password)
}

func (mock *authAPIMock) LoginCalls() []struct {
	Ctx      context.Context
	Email    string
	Password string
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authAPIMock) OAuthURL(provider string) string {
	if mock.OAuthURLFunc == nil {
		panic("authAPIMock.OAuthURLFunc: method is nil but authAPI.OAuthURL was just called")
	}
	callInfo := struct{ Provider string }{Provider: provider}
	mock.lockOAuthURL.Lock()
	mock.calls.OAuthURL = append(mock.calls.OAuthURL, callInfo)
	mock.lockOAuthURL.Unlock()
	return mock.OAuthURLFunc(provider)
}

func (mock *authAPIMock) OAuthURLCalls() []struct{ Provider string } {
	mock.lockOAuthURL.RLock()
	calls := mock.calls.OAuthURL
	mock.lockOAuthURL.RUnlock()
	return calls
}

func (mock *authAPIMock) Profile(ctx context.Context) (*domain.User, error) {
	if mock.ProfileFunc == nil {
		panic("authAPIMock.ProfileFunc: method is nil but authAPI.Profile was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockProfile.Lock()
	mock.calls.Profile = append(mock.calls.Profile, callInfo)
	mock.lockProfile.Unlock()
	return mock.ProfileFunc(ctx)
}

func (mock *authAPIMock) ProfileCalls() []struct{ Ctx context.Context } {
	mock.lockProfile.RLock()
	calls := mock.calls.Profile
	mock.lockProfile.RUnlock()
	return calls
}

func (mock *authAPIMock) ResetPassword(ctx context.Context, token string, otp string, newPassword string) (string, error) {
	if mock.ResetPasswordFunc == nil {
		panic("authAPIMock.ResetPasswordFunc: method is nil but authAPI.ResetPassword was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Token       string
		Otp         string
		NewPassword string
	}{Ctx: ctx, Token: token, Otp: otp, NewPassword: newPassword}
	mock.lockResetPassword.Lock()
	mock.calls.ResetPassword = append(mock.calls.ResetPassword, callInfo)
	mock.lockResetPassword.Unlock()
	return mock.ResetPasswordFunc(ctx, token, otp, newPassword)
}

func (mock *authAPIMock) ResetPasswordCalls() []struct {
	Ctx         context.Context
	Token       string
	Otp         string
	NewPassword string
} {
	mock.lockResetPassword.RLock()
	calls := mock.calls.ResetPassword
	mock.lockResetPassword.RUnlock()
	return calls
}

func (mock *authAPIMock) Signup(ctx context.Context, in api.SignupRequest) (*domain.AuthResult, error) {
	if mock.SignupFunc == nil {
		panic("authAPIMock.SignupFunc: method is nil but authAPI.Signup was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  api.SignupRequest
	}{Ctx: ctx, In: in}
	mock.lockSignup.Lock()
	mock.calls.Signup = append(mock.calls.Signup, callInfo)
	mock.lockSignup.Unlock()
	return mock.SignupFunc(ctx, in)
}

func (mock *authAPIMock) SignupCalls() []struct {
	Ctx context.Context
	In  api.SignupRequest
} {
	mock.lockSignup.RLock()
	calls := mock.calls.Signup
	mock.lockSignup.RUnlock()
	return calls
}
