package session

import (
	"context"
	"sync"
)

var _ navigator = &navigatorMock{}

type navigatorMock struct {
	NavigateFunc func(ctx context.Context, url string)
	ReplaceFunc  func(ctx context.Context, url string)

	calls struct {
		Navigate []struct {
			Ctx context.Context
			Url string
		}
		Replace []struct {
			Ctx context.Context
			Url string
		}
	}
	lockNavigate sync.RWMutex
	lockReplace  sync.RWMutex
}

func (mock *navigatorMock) Navigate(ctx context.Context, url string) {
	if mock.NavigateFunc == nil {
		panic("navigatorMock.NavigateFunc: method is nil but navigator.Navigate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Url string
	}{Ctx: ctx, Url: url}
	mock.lockNavigate.Lock()
	mock.calls.Navigate = append(mock.calls.Navigate, callInfo)
	mock.lockNavigate.Unlock()
	mock.NavigateFunc(ctx, url)
}

func (mock *navigatorMock) NavigateCalls() []struct {
	Ctx context.Context
	Url string
} {
	mock.lockNavigate.RLock()
	calls := mock.calls.Navigate
	mock.lockNavigate.RUnlock()
	return calls
}

func (mock *navigatorMock) Replace(ctx context.Context, url string) {
	if mock.ReplaceFunc == nil {
		panic("navigatorMock.ReplaceFunc: method is nil but navigator.Replace was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Url string
	}{Ctx: ctx, Url: url}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	mock.ReplaceFunc(ctx, url)
}

func (mock *navigatorMock) ReplaceCalls() []struct {
	Ctx context.Context
	Url string
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}
