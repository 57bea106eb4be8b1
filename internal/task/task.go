// Package task runs dispatcher calls as cancellable handles.
//
// A dispatcher commits to its store only while its context is alive, so
// cancelling a handle detaches the caller: a result that arrives afterwards
// is discarded instead of written.
package task

import (
	"context"
	"sync"
)

// Handle is one in-flight operation.
type Handle[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	val    T
	err    error
}

// Go starts fn in its own goroutine with a context derived from parent.
func Go[T any](parent context.Context, fn func(ctx context.Context) (T, error)) *Handle[T] {
	ctx, cancel := context.WithCancel(parent)
	h := &Handle[T]{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer cancel()
		h.val, h.err = fn(ctx)
	}()
	return h
}

// Cancel detaches interest in the result. Safe to call more than once.
func (h *Handle[T]) Cancel() { h.cancel() }

// Done is closed when the operation has returned.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }

// Wait blocks until the operation returns.
func (h *Handle[T]) Wait() (T, error) {
	<-h.done
	return h.val, h.err
}

// Scope groups handles that share a lifetime, such as everything a screen
// started. Close cancels all of them.
type Scope struct {
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	pending sync.WaitGroup
	closed  bool
}

// NewScope creates a scope bound to parent.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context returns the scope's context; it is cancelled by Close.
func (s *Scope) Context() context.Context { return s.ctx }

// Spawn starts fn inside the scope. After Close it returns a handle whose
// context is already cancelled.
func Spawn[T any](s *Scope, fn func(ctx context.Context) (T, error)) *Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Add(1)
	return Go(s.ctx, func(ctx context.Context) (T, error) {
		defer s.pending.Done()
		return fn(ctx)
	})
}

// Run is Spawn for operations without a result value.
func (s *Scope) Run(fn func(ctx context.Context) error) *Handle[struct{}] {
	return Spawn(s, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

// Close cancels every handle of the scope and waits for them to return.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancel()
	s.mu.Unlock()
	s.pending.Wait()
}
