package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Achamanp/ProjectManagentApp/internal/config"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/pkg/ctxutil"
)

// TokenSource yields the bearer token for the next request.
// It is consulted on every request; an empty token means an anonymous call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// Client is the HTTP adapter for the project-management REST API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	tokens     TokenSource
	maxRetries int
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client for cfg.BaseURL. tokens may be nil for a client
// that never authenticates.
func NewClient(cfg config.APIConfig, tokens TokenSource, logger *slog.Logger) *Client {
	if tokens == nil {
		tokens = TokenFunc(func(context.Context) (string, error) { return "", nil })
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		log:        logger.With("adapter", "api"),
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// OAuthURL returns the browser entry point of the provider's login flow.
func (c *Client) OAuthURL(provider string) string {
	return c.baseURL + "/oauth2/authorization/" + url.PathEscape(provider)
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

type rawResponse struct {
	status int
	body   []byte
}

var errRetryableStatus = errors.New("retryable status")

// do sends r and returns the normalized payload. Transport failures become
// KindNetwork errors, non-2xx statuses KindServer/KindAuth errors, and
// success=false envelopes KindDomain errors.
func (c *Client) do(ctx context.Context, r request) (*Payload, error) {
	ctx, reqID := ctxutil.EnsureRequestID(ctx)

	var payload []byte
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", r.method, r.path, err)
		}
		payload = b
	}

	retries := 0
	if r.method == http.MethodGet {
		retries = c.maxRetries
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), uint64(retries)),
		ctx,
	)

	var last rawResponse
	op := func() error {
		last = rawResponse{}
		req, err := c.newRequest(ctx, r, payload, reqID)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Don't retry if context is already cancelled.
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		last = rawResponse{status: resp.StatusCode, body: body}

		if resp.StatusCode >= 500 {
			return errRetryableStatus
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		reason := "network error"
		if last.status != 0 {
			reason = fmt.Sprintf("status %d", last.status)
		}
		c.log.WarnContext(ctx, "api retry",
			slog.String("method", r.method),
			slog.String("path", r.path),
			slog.String("request_id", reqID),
			slog.String("reason", reason),
			slog.Duration("wait", wait),
		)
	}

	err := backoff.RetryNotify(op, policy, notify)
	if err != nil && last.status == 0 {
		c.log.ErrorContext(ctx, "api request failed",
			slog.String("method", r.method),
			slog.String("path", r.path),
			slog.String("operation", ctxutil.OperationFromCtx(ctx)),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		return nil, &domain.APIError{Kind: domain.KindNetwork, Err: err}
	}

	c.log.DebugContext(ctx, "api response",
		slog.String("method", r.method),
		slog.String("path", r.path),
		slog.String("operation", ctxutil.OperationFromCtx(ctx)),
		slog.String("request_id", reqID),
		slog.Int("status", last.status),
		slog.Int("bytes", len(last.body)),
	)

	return Unwrap(last.status, last.body)
}

func (c *Client) newRequest(ctx context.Context, r request, payload []byte, reqID string) (*http.Request, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("api: read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// idPath joins a path prefix and a numeric id.
func idPath(prefix string, id int64, rest ...string) string {
	p := fmt.Sprintf("%s/%d", prefix, id)
	for _, seg := range rest {
		p += "/" + url.PathEscape(seg)
	}
	return p
}
