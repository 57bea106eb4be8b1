package subscription

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Refresher refetches the subscription on a schedule so expiry-driven state
// does not go stale. Only one timer is ever pending.
type Refresher struct {
	svc      *Service
	interval time.Duration
	min      time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher creates a stopped refresher.
func (s *Service) NewRefresher(interval, minDelay time.Duration) *Refresher {
	return &Refresher{svc: s, interval: interval, min: minDelay}
}

// Start begins refreshing. It is a no-op while already running.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(ctx, r.done)
}

// Stop cancels the pending timer and waits for the loop to exit.
// Safe to call more than once.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop is active.
func (r *Refresher) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *Refresher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		timer := r.svc.clock.NewTimer(r.next())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.Chan():
		}

		if _, err := r.svc.GetUserSubscription(ctx); err != nil && ctx.Err() == nil {
			r.svc.log.WarnContext(ctx, "subscription refresh failed", slog.String("error", err.Error()))
		}
	}
}

// next returns the delay until the following refresh: the interval, or the
// time left until the end date when that comes sooner.
func (r *Refresher) next() time.Duration {
	d := r.interval
	now := r.svc.clock.Now()
	if sub := r.svc.state.Snapshot().Details; sub != nil && !sub.SubscriptionEndDate.IsZero() {
		if left := sub.SubscriptionEndDate.Sub(now); left > 0 && left < d {
			d = left
		}
	}
	if d < r.min {
		d = r.min
	}
	return d
}
