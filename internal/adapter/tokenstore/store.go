// Package tokenstore persists the bearer token under a single durable key.
// Its presence at startup is the only signal used to rehydrate a session.
package tokenstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Achamanp/ProjectManagentApp/internal/config"
)

// Store is a durable single-key token holder.
// Load returns "" and no error when nothing is stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, expiresAt time.Time) error
	Clear(ctx context.Context) error
	Close() error
}

// Open creates the backend selected by cfg.TokenStore.
func Open(ctx context.Context, cfg config.SessionConfig, logger *slog.Logger) (Store, error) {
	log := logger.With("adapter", "tokenstore", "backend", cfg.TokenStore)

	var (
		s   Store
		err error
	)
	switch cfg.TokenStore {
	case config.TokenStoreMemory:
		s = NewMemory()
	case config.TokenStoreFile:
		s = NewFile(cfg.TokenPath)
	case config.TokenStoreSQLite:
		s, err = NewSQLite(ctx, cfg.SQLitePath, cfg.TokenKey)
	case config.TokenStoreRedis:
		s, err = NewRedis(ctx, cfg.RedisURL, cfg.RedisPrefix+cfg.TokenKey)
	default:
		return nil, fmt.Errorf("tokenstore: unknown backend %q", cfg.TokenStore)
	}
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "token store opened")
	return s, nil
}
