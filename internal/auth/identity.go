package auth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// ErrNoRedirectToken is returned when an OAuth redirect carries neither a
// token nor an error.
var ErrNoRedirectToken = errors.New("No authentication token found in URL")

// Redirect is what the backend appends to the app URL after an OAuth login.
type Redirect struct {
	Token    string
	Error    string
	Provider domain.OAuthProvider
	// Clean is the redirect URL with the OAuth parameters removed.
	Clean string
}

var redirectParams = []string{"token", "error", "provider"}

// ParseRedirect extracts the OAuth parameters of rawURL.
func ParseRedirect(rawURL string) (Redirect, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Redirect{}, fmt.Errorf("parse redirect: %w", err)
	}

	q := u.Query()
	r := Redirect{
		Token:    q.Get("token"),
		Error:    q.Get("error"),
		Provider: domain.OAuthProvider(strings.ToLower(q.Get("provider"))),
	}
	if r.Provider == "" {
		r.Provider = domain.OAuthUnknown
	}

	for _, p := range redirectParams {
		q.Del(p)
	}
	u.RawQuery = q.Encode()
	r.Clean = u.String()

	return r, nil
}
