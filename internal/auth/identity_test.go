package auth

import (
	"testing"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

func TestParseRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		token    string
		errMsg   string
		provider domain.OAuthProvider
		clean    string
	}{
		{
			name:     "token with provider",
			raw:      "http://localhost:5173/?token=abc&provider=GitHub",
			token:    "abc",
			provider: domain.OAuthGitHub,
			clean:    "http://localhost:5173/",
		},
		{
			name:     "error is decoded",
			raw:      "http://localhost:5173/login?error=access%20denied&tab=1",
			errMsg:   "access denied",
			provider: domain.OAuthUnknown,
			clean:    "http://localhost:5173/login?tab=1",
		},
		{
			name:     "nothing",
			raw:      "http://localhost:5173/",
			provider: domain.OAuthUnknown,
			clean:    "http://localhost:5173/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := ParseRedirect(tt.raw)
			if err != nil {
				t.Fatalf("ParseRedirect: %v", err)
			}
			if r.Token != tt.token {
				t.Errorf("Token = %q, want %q", r.Token, tt.token)
			}
			if r.Error != tt.errMsg {
				t.Errorf("Error = %q, want %q", r.Error, tt.errMsg)
			}
			if r.Provider != tt.provider {
				t.Errorf("Provider = %q, want %q", r.Provider, tt.provider)
			}
			if r.Clean != tt.clean {
				t.Errorf("Clean = %q, want %q", r.Clean, tt.clean)
			}
		})
	}
}

func TestParseRedirect_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := ParseRedirect("http://[::1"); err == nil {
		t.Error("expected error for malformed URL")
	}
}
