package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/adapter/tokenstore"
	"github.com/Achamanp/ProjectManagentApp/internal/config"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/service/chat"
	"github.com/Achamanp/ProjectManagentApp/internal/service/comment"
	"github.com/Achamanp/ProjectManagentApp/internal/service/issue"
	"github.com/Achamanp/ProjectManagentApp/internal/service/project"
	"github.com/Achamanp/ProjectManagentApp/internal/service/session"
	"github.com/Achamanp/ProjectManagentApp/internal/service/subscription"
	"github.com/Achamanp/ProjectManagentApp/internal/service/workspace"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
	"github.com/Achamanp/ProjectManagentApp/internal/ui"
)

// Options tunes how the client is assembled. The zero value writes
// navigation to stdout, toasts to stderr and uses the real clock.
type Options struct {
	Out   io.Writer
	Err   io.Writer
	Plain bool // disable toast styling
	Clock clockwork.Clock
	// Tokens replaces the store selected by cfg.Session.
	Tokens tokenstore.Store
}

// Client is a fully wired project-management client.
type Client struct {
	log        *slog.Logger
	tokens     tokenstore.Store
	ownsTokens bool

	API           *api.Client
	Session       *session.Service
	Projects      *project.Service
	Issues        *issue.Service
	Comments      *comment.Service
	Chat          *chat.Service
	Subscriptions *subscription.Service
	Workspace     *workspace.Service
	Refresher     *subscription.Refresher
	Navigator     *ui.Navigator
}

// New wires the stores, the HTTP adapter and every service. Logout tears
// down every domain store and stops the subscription refresher.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Client, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	tokens := opts.Tokens
	if tokens == nil {
		var err error
		tokens, err = tokenstore.Open(ctx, cfg.Session, logger)
		if err != nil {
			return nil, fmt.Errorf("app.New: %w", err)
		}
	}

	// The adapter asks the session for the token on every request.
	var sessionSvc *session.Service
	client := api.NewClient(cfg.API, api.TokenFunc(func(ctx context.Context) (string, error) {
		return sessionSvc.Token(ctx)
	}), logger)

	toaster := ui.NewToaster(opts.Err, logger, opts.Plain)
	nav := ui.NewNavigator(opts.Out)

	sessionState := store.NewSession(logger)
	projectState := store.NewProjects(logger)
	issueState := store.NewIssues(logger)
	chatState := store.NewChat(logger)
	subState := store.NewSubscriptions(logger)
	commentState, err := store.NewComments(cfg.Cache.CommentThreads, logger)
	if err != nil {
		_ = tokens.Close()
		return nil, fmt.Errorf("app.New: %w", err)
	}

	sessionSvc = session.NewService(logger, client, tokens, sessionState, toaster, nav, opts.Clock, cfg.Auth)
	projectSvc := project.NewService(logger, client, projectState, toaster, nav)
	issueSvc := issue.NewService(logger, client, issueState, toaster)
	commentSvc := comment.NewService(logger, client, commentState)
	chatSvc := chat.NewService(logger, client, chatState, opts.Clock, cfg.Chat.RefetchDelay)
	subSvc := subscription.NewService(logger, client, subState, nav, opts.Clock)
	refresher := subSvc.NewRefresher(cfg.Subscription.RefreshInterval, cfg.Subscription.MinRefresh)

	sessionSvc.OnTeardown(refresher.Stop)
	sessionSvc.OnTeardown(projectState.Reset)
	sessionSvc.OnTeardown(issueState.Reset)
	sessionSvc.OnTeardown(commentState.Reset)
	sessionSvc.OnTeardown(chatSvc.Reset)
	sessionSvc.OnTeardown(subState.Reset)

	return &Client{
		log:           logger,
		tokens:        tokens,
		ownsTokens:    opts.Tokens == nil,
		API:           client,
		Session:       sessionSvc,
		Projects:      projectSvc,
		Issues:        issueSvc,
		Comments:      commentSvc,
		Chat:          chatSvc,
		Subscriptions: subSvc,
		Workspace:     workspace.NewService(logger, projectSvc, issueSvc, chatSvc),
		Refresher:     refresher,
		Navigator:     nav,
	}, nil
}

// Start restores a persisted session. With a valid token it loads the
// profile and the unfiltered project list; without one it does nothing.
func (c *Client) Start(ctx context.Context) error {
	token, err := c.Session.Rehydrate(ctx)
	if err != nil {
		return fmt.Errorf("app.Start: %w", err)
	}
	if token == "" {
		c.log.DebugContext(ctx, "no stored session")
		return nil
	}

	if _, err := c.Session.GetCurrentUser(ctx); err != nil {
		return fmt.Errorf("app.Start: %w", err)
	}
	if _, err := c.Projects.FetchProjects(ctx, domain.ProjectFilters{Category: domain.FilterAll, Tag: domain.FilterAll}); err != nil {
		return fmt.Errorf("app.Start: %w", err)
	}

	c.log.InfoContext(ctx, "session restored",
		slog.String("version", BuildVersion()))
	return nil
}

// Close stops background work and releases the token store unless it was
// supplied through Options.
func (c *Client) Close() error {
	c.Refresher.Stop()
	c.Chat.Close()
	if !c.ownsTokens {
		return nil
	}
	return c.tokens.Close()
}
