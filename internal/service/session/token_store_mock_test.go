package session

import (
	"context"
	"sync"
	"time"
)

var _ tokenStore = &tokenStoreMock{}

type tokenStoreMock struct {
	ClearFunc func(ctx context.Context) error
	LoadFunc  func(ctx context.Context) (string, error)
	SaveFunc  func(ctx context.Context, token string, expiresAt time.Time) error

	calls struct {
		Clear []struct{ Ctx context.Context }
		Load  []struct{ Ctx context.Context }
		Save  []struct {
			Ctx       context.Context
			Token     string
			ExpiresAt time.Time
		}
	}
	lockClear sync.RWMutex
	lockLoad  sync.RWMutex
	lockSave  sync.RWMutex
}

func (mock *tokenStoreMock) Clear(ctx context.Context) error {
	if mock.ClearFunc == nil {
		panic("tokenStoreMock.ClearFunc: method is nil but tokenStore.Clear was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx)
}

func (mock *tokenStoreMock) ClearCalls() []struct{ Ctx context.Context } {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *tokenStoreMock) Load(ctx context.Context) (string, error) {
	if mock.LoadFunc == nil {
		panic("tokenStoreMock.LoadFunc: method is nil but tokenStore.Load was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *tokenStoreMock) LoadCalls() []struct{ Ctx context.Context } {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *tokenStoreMock) Save(ctx context.Context, token string, expiresAt time.Time) error {
	if mock.SaveFunc == nil {
		panic("tokenStoreMock.SaveFunc: method is nil but tokenStore.Save was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Token     string
		ExpiresAt time.Time
	}{Ctx: ctx, Token: token, ExpiresAt: expiresAt}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, token, expiresAt)
}

func (mock *tokenStoreMock) SaveCalls() []struct {
	Ctx       context.Context
	Token     string
	ExpiresAt time.Time
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
