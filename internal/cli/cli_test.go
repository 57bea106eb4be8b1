package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/tokenstore"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/service/subscription"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type server struct {
	mu   sync.Mutex
	reqs []string
	url  string
}

func (s *server) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.reqs...)
}

func newServer(t *testing.T) *server {
	t.Helper()
	s := &server{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jwt":"opaque-token","message":"Login success"}`))
	})
	mux.HandleFunc("GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer opaque-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":3,"fullName":"Grace Hopper","email":"grace@example.com"}`))
	})
	mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"compiler","category":"fullstack","tags":["cobol"]}]`))
	})
	mux.HandleFunc("GET /api/issues/project/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"parser","status":"pending"},{"id":2,"title":"linker","status":"done"}]`))
	})
	mux.HandleFunc("DELETE /api/projects/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`Project deleted successfully`))
	})
	mux.HandleFunc("GET /api/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"planType":"ANNUALLY","subscriptionStartDate":"2026-01-01","subscriptionEndDate":"2099-01-01","isActive":true}`))
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.reqs = append(s.reqs, r.Method+" "+r.URL.Path)
		s.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	s.url = srv.URL
	return s
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api:\n  base_url: \"" + baseURL + "\"\n  max_retries: 0\n" +
		"session:\n  token_store: \"memory\"\n" +
		"log:\n  level: \"error\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type harness struct {
	config string
	tokens tokenstore.Store
}

func newHarness(t *testing.T, baseURL string) *harness {
	return &harness{config: writeConfig(t, baseURL), tokens: tokenstore.NewMemory()}
}

// run executes one pmctl invocation and returns stdout, stderr and the error.
func (h *harness) run(stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCmd(Options{
		In:     strings.NewReader(stdin),
		Out:    &out,
		Err:    &errOut,
		Tokens: h.tokens,
	})
	root.SetArgs(append([]string{"--config", h.config}, args...))
	root.SetContext(context.Background())
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestVersion_JSON(t *testing.T) {
	t.Parallel()

	h := &harness{config: filepath.Join(t.TempDir(), "missing.yaml")}
	out, _, err := h.run("", "version", "-o", "json")
	require.NoError(t, err)

	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "dev", v["version"])
}

func TestOutput_UnknownFormat(t *testing.T) {
	t.Parallel()

	h := &harness{config: filepath.Join(t.TempDir(), "missing.yaml")}
	_, _, err := h.run("", "version", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestLogin_ThenWhoami(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	h := newHarness(t, s.url)

	_, errOut, err := h.run("secret\n", "login", "--email", "grace@example.com")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Login successful")

	token, err := h.tokens.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	out, _, err := h.run("", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper <grace@example.com>")
	assert.Contains(t, out, "projects: 1")
}

func TestWhoami_SignedOut(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	h := newHarness(t, s.url)

	_, _, err := h.run("", "whoami")
	require.ErrorIs(t, err, domain.ErrNoToken)
	assert.Contains(t, err.Error(), "run pmctl login first")
	assert.Empty(t, s.seen())
}

func TestIssuesList_Board(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	h := newHarness(t, s.url)

	out, _, err := h.run("", "issues", "list", "1", "--board")
	require.NoError(t, err)
	assert.Contains(t, out, "pending (1)\n  #1 parser")
	assert.Contains(t, out, "in-progress (0)")
	assert.Contains(t, out, "done (1)\n  #2 linker")
}

func TestProjectsList_YAML(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	h := newHarness(t, s.url)

	out, _, err := h.run("", "projects", "list", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: compiler")
	assert.Contains(t, out, "- cobol")
}

func TestProjectsDelete_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	h := newHarness(t, s.url)

	_, _, err := h.run("n\n", "projects", "delete", "1")
	require.NoError(t, err)
	assert.NotContains(t, s.seen(), "DELETE /api/projects/1")

	_, errOut, err := h.run("y\n", "projects", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, s.seen(), "DELETE /api/projects/1")
	assert.Contains(t, errOut, "Project deleted successfully")
}

func TestPlanUpgrade_LowerTierRefused(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	h := newHarness(t, s.url)

	_, _, err := h.run("", "plan", "upgrade", "monthly")
	require.ErrorIs(t, err, subscription.ErrPlanUnavailable)
	for _, r := range s.seen() {
		assert.NotContains(t, r, "/api/payments")
	}
}

func TestPlanShow_Text(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	h := newHarness(t, s.url)

	out, _, err := h.run("", "plan", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "plan: ANNUALLY")
	assert.Contains(t, out, "Current Plan")
	assert.Contains(t, out, "Not Available")
}
