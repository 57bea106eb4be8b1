package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if len(c.Auth.AllowedProviders()) == 0 {
		return fmt.Errorf("auth.oauth_providers must list at least one provider")
	}

	if c.Subscription.RefreshInterval <= 0 {
		return fmt.Errorf("subscription.refresh_interval must be > 0 (got %v)", c.Subscription.RefreshInterval)
	}
	if c.Subscription.MinRefresh < 0 || c.Subscription.MinRefresh > c.Subscription.RefreshInterval {
		return fmt.Errorf("subscription.min_refresh must be within [0, refresh_interval] (got %v)", c.Subscription.MinRefresh)
	}

	if c.Cache.CommentThreads < 1 {
		return fmt.Errorf("cache.comment_threads must be >= 1 (got %d)", c.Cache.CommentThreads)
	}

	if c.Chat.RefetchDelay < 0 {
		return fmt.Errorf("chat.refetch_delay must be >= 0 (got %v)", c.Chat.RefetchDelay)
	}

	return nil
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be http(s) (got %q)", a.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url has no host (got %q)", a.BaseURL)
	}
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")

	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", a.MaxRetries)
	}
	if a.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", a.RetryDelay)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if strings.TrimSpace(s.TokenKey) == "" {
		return fmt.Errorf("token_key is required")
	}

	switch s.TokenStore {
	case TokenStoreMemory:
	case TokenStoreFile:
		if s.TokenPath == "" {
			return fmt.Errorf("token_path is required for the file store")
		}
	case TokenStoreSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite store")
		}
	case TokenStoreRedis:
		if s.RedisURL == "" {
			return fmt.Errorf("redis_url is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown token_store %q", s.TokenStore)
	}
	return nil
}
