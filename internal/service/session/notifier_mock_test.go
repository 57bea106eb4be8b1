package session

import (
	"context"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	ErrorFunc   func(ctx context.Context, msg string)
	SuccessFunc func(ctx context.Context, msg string)

	calls struct {
		Error []struct {
			Ctx context.Context
			Msg string
		}
		Success []struct {
			Ctx context.Context
			Msg string
		}
	}
	lockError   sync.RWMutex
	lockSuccess sync.RWMutex
}

func (mock *notifierMock) Error(ctx context.Context, msg string) {
	if mock.ErrorFunc == nil {
		panic("notifierMock.ErrorFunc: method is nil but notifier.Error was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg string
	}{Ctx: ctx, Msg: msg}
	mock.lockError.Lock()
	mock.calls.Error = append(mock.calls.Error, callInfo)
	mock.lockError.Unlock()
	mock.ErrorFunc(ctx, msg)
}

func (mock *notifierMock) ErrorCalls() []struct {
	Ctx context.Context
	Msg string
} {
	mock.lockError.RLock()
	calls := mock.calls.Error
	mock.lockError.RUnlock()
	return calls
}

func (mock *notifierMock) Success(ctx context.Context, msg string) {
	if mock.SuccessFunc == nil {
		panic("notifierMock.SuccessFunc: method is nil but notifier.Success was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg string
	}{Ctx: ctx, Msg: msg}
	mock.lockSuccess.Lock()
	mock.calls.Success = append(mock.calls.Success, callInfo)
	mock.lockSuccess.Unlock()
	mock.SuccessFunc(ctx, msg)
}

func (mock *notifierMock) SuccessCalls() []struct {
	Ctx context.Context
	Msg string
} {
	mock.lockSuccess.RLock()
	calls := mock.calls.Success
	mock.lockSuccess.RUnlock()
	return calls
}
