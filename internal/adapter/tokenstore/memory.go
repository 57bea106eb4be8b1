package tokenstore

import (
	"context"
	"sync"
	"time"
)

// Memory keeps the token for the lifetime of the process.
type Memory struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func (m *Memory) Load(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.expiresAt.IsZero() && !m.now().Before(m.expiresAt) {
		return "", nil
	}
	return m.token, nil
}

func (m *Memory) Save(_ context.Context, token string, expiresAt time.Time) error {
	m.mu.Lock()
	m.token, m.expiresAt = token, expiresAt
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	m.token, m.expiresAt = "", time.Time{}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }
