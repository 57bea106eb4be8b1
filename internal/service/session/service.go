package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/config"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// authAPI defines the remote calls needed by the session service.
type authAPI interface {
	Signup(ctx context.Context, in api.SignupRequest) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Profile(ctx context.Context) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, otp, newPassword string) (string, error)
	OAuthURL(provider string) string
}

// tokenStore defines the durable token storage needed by the session service.
type tokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, expiresAt time.Time) error
	Clear(ctx context.Context) error
}

// notifier shows transient success and error messages.
type notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// navigator moves the user to another location.
type navigator interface {
	Navigate(ctx context.Context, url string)
	Replace(ctx context.Context, url string)
}

// Service implements the authentication dispatchers. It is the session
// context every other dispatcher is built on: the token it persists is
// read back by the HTTP adapter on each request.
type Service struct {
	log    *slog.Logger
	api    authAPI
	tokens tokenStore
	state  *store.Session
	notify notifier
	nav    navigator
	clock  clockwork.Clock
	cfg    config.AuthConfig

	// tokenMu orders durable token writes against Logout.
	tokenMu sync.Mutex

	mu       sync.Mutex
	hooks    map[int]func()
	nextHook int
}

// NewService creates a new session service instance.
func NewService(
	logger *slog.Logger,
	api authAPI,
	tokens tokenStore,
	state *store.Session,
	notify notifier,
	nav navigator,
	clock clockwork.Clock,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "session"),
		api:    api,
		tokens: tokens,
		state:  state,
		notify: notify,
		nav:    nav,
		clock:  clock,
		cfg:    cfg,
		hooks:  make(map[int]func()),
	}
}

// Token returns the persisted token. It satisfies api.TokenSource and is
// consulted by the adapter before every request.
func (s *Service) Token(ctx context.Context) (string, error) {
	return s.tokens.Load(ctx)
}

// State returns a snapshot of the session slice.
func (s *Service) State() store.SessionState {
	return s.state.Snapshot()
}

// OnTeardown registers fn to run on Logout. The returned func unregisters it.
func (s *Service) OnTeardown(fn func()) (remove func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextHook
	s.nextHook++
	s.hooks[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.hooks, id)
		s.mu.Unlock()
	}
}

func (s *Service) teardown() {
	s.mu.Lock()
	hooks := make([]func(), 0, len(s.hooks))
	for _, fn := range s.hooks {
		hooks = append(hooks, fn)
	}
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// persist saves token while t is still live. Logout clears the storage and
// resets the slice under the same lock, so a ticket it made stale never
// writes a token afterwards.
func (s *Service) persist(ctx context.Context, t store.Ticket, token string) error {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()
	if !s.state.Live(ctx, t) {
		return domain.ErrStale
	}
	return s.tokens.Save(ctx, token, s.expiry(token))
}

// discard removes token from durable storage after its commit was dropped,
// unless the session has adopted it since.
func (s *Service) discard(ctx context.Context, token string) {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()
	if s.state.Snapshot().Token == token {
		return
	}
	ctx = context.WithoutCancel(ctx)
	cur, err := s.tokens.Load(ctx)
	if err != nil || cur != token {
		return
	}
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.ErrorContext(ctx, "discard token failed", slog.String("error", err.Error()))
	}
}

// reject records a local validation failure on family and shows it.
func (s *Service) reject(ctx context.Context, family string, err error) error {
	msg := domain.Describe(err, domain.StatusCopy{})
	s.state.Reject(family, msg)
	s.notify.Error(ctx, msg)
	return err
}

// fail records msg on the ticket's family and shows it.
func (s *Service) fail(ctx context.Context, t store.Ticket, msg string) {
	if err := s.state.Fail(ctx, t, msg); err != nil {
		return
	}
	s.notify.Error(ctx, msg)
}
