// Package store holds the client's state slices.
//
// Every slice is owned by one store and mutated only through it. Requests
// against a slice are fenced per family: each dispatch takes a ticket with
// a monotonically increasing sequence number and its result is committed
// only if no later ticket of the same family has committed already.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Status is the request lifecycle part of a slice.
type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Ticket identifies one dispatched request.
type Ticket struct {
	Family string
	Seq    uint64
	epoch  uint64
	write  bool
}

// fence tracks the tickets of one family. A fence is replaced, never
// rewound: tickets carry the epoch of the fence that issued them and are
// stale once that fence is gone.
type fence struct {
	epoch     uint64
	issued    uint64
	committed uint64
	reading   bool // the latest fenced ticket is unsettled
	writes    int  // unsettled write tickets
}

func (f *fence) busy() bool { return f.reading || f.writes > 0 }

// Slice is a mutex-guarded state value with fenced transitions.
type Slice[S any] struct {
	name   string
	mu     sync.Mutex
	state  S
	init   func() S
	clone  func(S) S
	status func(st *S, family string) *Status
	fences map[string]*fence
	epoch  uint64
	subs   map[int]func(S)
	nextID int
	log    *slog.Logger
}

// NewSlice creates a slice. status maps a request family to the Status it
// drives; several families may share one Status. clone deep-copies a state
// for snapshots.
func NewSlice[S any](name string, init func() S, clone func(S) S, status func(st *S, family string) *Status, logger *slog.Logger) *Slice[S] {
	return &Slice[S]{
		name:   name,
		state:  init(),
		init:   init,
		clone:  clone,
		status: status,
		fences: make(map[string]*fence),
		subs:   make(map[int]func(S)),
		log:    logger.With("store", name),
	}
}

// Snapshot returns a copy of the current state.
func (s *Slice[S]) Snapshot() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clone(s.state)
}

// Subscribe registers fn to receive a snapshot after every committed
// transition. The returned func unsubscribes.
func (s *Slice[S]) Subscribe(fn func(S)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Begin issues a fenced ticket for family and marks the family loading.
func (s *Slice[S]) Begin(family string) Ticket {
	return s.begin(family, false)
}

// BeginWrite issues an unfenced ticket. Writes never supersede each other;
// they are dropped when their task is cancelled or the family is reset.
func (s *Slice[S]) BeginWrite(family string) Ticket {
	return s.begin(family, true)
}

func (s *Slice[S]) begin(family string, write bool) Ticket {
	s.mu.Lock()
	f := s.fenceLocked(family)
	t := Ticket{Family: family, epoch: f.epoch, write: write}
	if write {
		f.writes++
	} else {
		f.issued++
		t.Seq = f.issued
		f.reading = true
	}
	st := s.status(&s.state, family)
	st.Loading = true
	st.Error = ""
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()

	notify()
	return t
}

// Live reports whether a result for t would still be committed.
func (s *Slice[S]) Live(ctx context.Context, t Ticket) bool {
	if ctx.Err() != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.fences[t.Family]
	return ok && f.epoch == t.epoch && (t.write || t.Seq > f.committed)
}

// Commit applies a successful result. apply may be nil.
func (s *Slice[S]) Commit(ctx context.Context, t Ticket, apply func(st *S)) error {
	return s.resolve(ctx, t, func(st *S, status *Status) {
		if apply != nil {
			apply(st)
		}
		status.Error = ""
	})
}

// Fail records a failure message for the ticket's family.
func (s *Slice[S]) Fail(ctx context.Context, t Ticket, msg string) error {
	return s.resolve(ctx, t, func(st *S, status *Status) {
		status.Error = msg
	})
}

// Reject records a failure that was detected before any request was
// issued. No ticket is taken and loading is left untouched.
func (s *Slice[S]) Reject(family, msg string) {
	s.Update(func(st *S) { s.status(st, family).Error = msg })
}

// Update mutates the state outside the request lifecycle.
func (s *Slice[S]) Update(mutate func(st *S)) {
	s.mu.Lock()
	mutate(&s.state)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()
	notify()
}

// Reset restores the initial state. Every outstanding ticket, read or
// write, becomes stale.
func (s *Slice[S]) Reset() {
	s.mu.Lock()
	s.state = s.init()
	clear(s.fences)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()
	notify()
}

// Forget drops the fence of family. Its outstanding tickets become stale.
func (s *Slice[S]) Forget(family string) {
	s.mu.Lock()
	delete(s.fences, family)
	s.mu.Unlock()
}

func (s *Slice[S]) resolve(ctx context.Context, t Ticket, mutate func(st *S, status *Status)) error {
	s.mu.Lock()
	f, ok := s.fences[t.Family]
	if !ok || f.epoch != t.epoch {
		s.mu.Unlock()
		s.log.Debug("result dropped", slog.String("family", t.Family), slog.String("reason", "reset"))
		return fmt.Errorf("store.%s.%s: %w", s.name, t.Family, domain.ErrStale)
	}

	if err := ctx.Err(); err != nil {
		changed := false
		switch {
		case t.write:
			f.writes--
			changed = true
		case t.Seq == f.issued:
			f.reading = false
			f.committed = t.Seq
			changed = true
		}
		notify := func() {}
		if changed {
			s.settleLocked(t.Family)
			notify = s.pendingNotifyLocked()
		}
		s.mu.Unlock()
		notify()
		s.log.Debug("result dropped", slog.String("family", t.Family), slog.String("reason", "cancelled"))
		return fmt.Errorf("store.%s.%s: %w", s.name, t.Family, domain.ErrStale)
	}

	if t.write {
		f.writes--
	} else {
		if t.Seq <= f.committed {
			s.mu.Unlock()
			s.log.Debug("result dropped",
				slog.String("family", t.Family),
				slog.Uint64("seq", t.Seq),
				slog.Uint64("committed", f.committed),
			)
			return fmt.Errorf("store.%s.%s: %w", s.name, t.Family, domain.ErrStale)
		}
		f.committed = t.Seq
		if t.Seq == f.issued {
			f.reading = false
		}
	}

	mutate(&s.state, s.status(&s.state, t.Family))
	s.settleLocked(t.Family)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()
	notify()
	return nil
}

// settleLocked clears the loading flag of family's Status unless a family
// sharing that Status still has unsettled tickets.
func (s *Slice[S]) settleLocked(family string) {
	st := s.status(&s.state, family)
	for name, f := range s.fences {
		if f.busy() && s.status(&s.state, name) == st {
			return
		}
	}
	st.Loading = false
}

func (s *Slice[S]) fenceLocked(family string) *fence {
	f, ok := s.fences[family]
	if !ok {
		s.epoch++
		f = &fence{epoch: s.epoch}
		s.fences[family] = f
	}
	return f
}

// pendingNotifyLocked captures the subscribers and a snapshot so they can be
// called after the lock is released.
func (s *Slice[S]) pendingNotifyLocked() func() {
	if len(s.subs) == 0 {
		return func() {}
	}
	subs := make([]func(S), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	snap := s.clone(s.state)
	return func() {
		for _, fn := range subs {
			fn(snap)
		}
	}
}
