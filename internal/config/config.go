package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root client configuration.
type Config struct {
	API          APIConfig          `yaml:"api"`
	Auth         AuthConfig         `yaml:"auth"`
	Session      SessionConfig      `yaml:"session"`
	Subscription SubscriptionConfig `yaml:"subscription"`
	Cache        CacheConfig        `yaml:"cache"`
	Chat         ChatConfig         `yaml:"chat"`
	Log          LogConfig          `yaml:"log"`
}

// APIConfig holds settings of the remote REST API.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"API_BASE_URL"    env-default:"https://project-mgmt-backend-production.up.railway.app"`
	Timeout    time.Duration `yaml:"timeout"     env:"API_TIMEOUT"     env-default:"10s"`
	MaxRetries int           `yaml:"max_retries" env:"API_MAX_RETRIES" env-default:"1"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"API_RETRY_DELAY" env-default:"500ms"`
	UserAgent  string        `yaml:"user_agent"  env:"API_USER_AGENT"  env-default:"pmctl"`
}

// AuthConfig holds sign-in settings.
type AuthConfig struct {
	OAuthProviders string `yaml:"oauth_providers" env:"AUTH_OAUTH_PROVIDERS" env-default:"google,github"`
	// AppURL is where the server sends the browser after an OAuth login.
	// Transient redirect parameters are stripped relative to it.
	AppURL string `yaml:"app_url" env:"AUTH_APP_URL" env-default:"http://localhost:5173"`
}

// Token store backends.
const (
	TokenStoreMemory = "memory"
	TokenStoreFile   = "file"
	TokenStoreSQLite = "sqlite"
	TokenStoreRedis  = "redis"
)

// SessionConfig holds settings of the durable token store.
type SessionConfig struct {
	TokenStore  string `yaml:"token_store"  env:"SESSION_TOKEN_STORE"  env-default:"file"`
	TokenKey    string `yaml:"token_key"    env:"SESSION_TOKEN_KEY"    env-default:"jwt"`
	TokenPath   string `yaml:"token_path"   env:"SESSION_TOKEN_PATH"   env-default:".pmctl/jwt"`
	SQLitePath  string `yaml:"sqlite_path"  env:"SESSION_SQLITE_PATH"  env-default:".pmctl/session.db"`
	RedisURL    string `yaml:"redis_url"    env:"SESSION_REDIS_URL"`
	RedisPrefix string `yaml:"redis_prefix" env:"SESSION_REDIS_PREFIX" env-default:"pm:session:"`
}

// SubscriptionConfig holds the scheduled-refresh settings.
type SubscriptionConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"SUBSCRIPTION_REFRESH_INTERVAL" env-default:"60s"`
	MinRefresh      time.Duration `yaml:"min_refresh"      env:"SUBSCRIPTION_MIN_REFRESH"      env-default:"1s"`
}

// CacheConfig bounds the in-memory caches.
type CacheConfig struct {
	CommentThreads int `yaml:"comment_threads" env:"CACHE_COMMENT_THREADS" env-default:"64"`
}

// ChatConfig holds chat behaviour settings.
type ChatConfig struct {
	RefetchDelay time.Duration `yaml:"refetch_delay" env:"CHAT_REFETCH_DELAY" env-default:"500ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// AllowedProviders returns the configured OAuth providers, lowercased,
// in configuration order.
func (c AuthConfig) AllowedProviders() []string {
	var providers []string
	for _, p := range strings.Split(c.OAuthProviders, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && !slices.Contains(providers, p) {
			providers = append(providers, p)
		}
	}
	return providers
}

// IsProviderAllowed checks if the given provider string is configured.
func (c AuthConfig) IsProviderAllowed(provider string) bool {
	return slices.Contains(c.AllowedProviders(), strings.ToLower(provider))
}
