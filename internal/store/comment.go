package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

const threadPrefix = "issue:"

// Thread is the comment list of one issue.
type Thread struct {
	Comments []domain.Comment `json:"comments"`
	Status
}

// CommentState holds the threads that are currently cached, keyed by issue id.
type CommentState struct {
	Threads map[int64]*Thread `json:"threads"`
}

// Comments owns the comment threads. Each thread is fenced on its own, so a
// slow response for one issue never overwrites another issue's thread.
// At most size threads are kept; the least recently requested is evicted.
type Comments struct {
	*Slice[CommentState]

	mu     sync.Mutex
	size   int
	recent *lru.Cache[int64, struct{}]
}

// NewComments creates a comment store holding at most size threads.
func NewComments(size int, logger *slog.Logger) (*Comments, error) {
	recent, err := lru.New[int64, struct{}](size)
	if err != nil {
		return nil, fmt.Errorf("store.NewComments: %w", err)
	}
	return &Comments{
		Slice: NewSlice("comments",
			func() CommentState { return CommentState{Threads: make(map[int64]*Thread)} },
			cloneComments,
			threadStatus,
			logger,
		),
		size:   size,
		recent: recent,
	}, nil
}

func threadFamily(issueID int64) string {
	return threadPrefix + strconv.FormatInt(issueID, 10)
}

func threadStatus(st *CommentState, family string) *Status {
	id, _ := strconv.ParseInt(strings.TrimPrefix(family, threadPrefix), 10, 64)
	th, ok := st.Threads[id]
	if !ok {
		th = &Thread{Comments: []domain.Comment{}}
		st.Threads[id] = th
	}
	return &th.Status
}

func cloneComments(s CommentState) CommentState {
	out := CommentState{Threads: make(map[int64]*Thread, len(s.Threads))}
	for id, th := range s.Threads {
		c := *th
		c.Comments = slices.Clone(th.Comments)
		out.Threads[id] = &c
	}
	return out
}

// Request issues a fenced ticket for the thread of issueID.
func (c *Comments) Request(issueID int64) Ticket {
	c.touch(issueID)
	return c.Begin(threadFamily(issueID))
}

// RequestWrite issues an unfenced ticket for a write against issueID's thread.
func (c *Comments) RequestWrite(issueID int64) Ticket {
	c.touch(issueID)
	return c.BeginWrite(threadFamily(issueID))
}

// touch marks issueID as recently used and evicts the oldest thread when
// the cache is full.
func (c *Comments) touch(issueID int64) {
	c.mu.Lock()
	var evicted []int64
	if !c.recent.Contains(issueID) {
		for c.recent.Len() >= c.size {
			k, _, ok := c.recent.RemoveOldest()
			if !ok {
				break
			}
			evicted = append(evicted, k)
		}
	}
	c.recent.Add(issueID, struct{}{})
	c.mu.Unlock()

	for _, id := range evicted {
		c.drop(id)
	}
}

// drop forgets the fence before the thread so that a result resolving in
// between is discarded rather than recreating the thread.
func (c *Comments) drop(issueID int64) {
	c.Forget(threadFamily(issueID))
	c.Update(func(st *CommentState) { delete(st.Threads, issueID) })
}

// Loaded replaces the thread of issueID.
func (c *Comments) Loaded(ctx context.Context, t Ticket, issueID int64, list []domain.Comment) error {
	return c.Commit(ctx, t, func(st *CommentState) {
		st.Threads[issueID].Comments = list
	})
}

// Added appends a new comment to the thread of issueID unless it is
// already listed.
func (c *Comments) Added(ctx context.Context, t Ticket, issueID int64, cm domain.Comment) error {
	return c.Commit(ctx, t, func(st *CommentState) {
		th := st.Threads[issueID]
		if cm.ID != 0 && slices.ContainsFunc(th.Comments, func(x domain.Comment) bool { return x.ID == cm.ID }) {
			return
		}
		th.Comments = append(th.Comments, cm)
	})
}

// Deleted removes a comment from the thread of issueID.
func (c *Comments) Deleted(ctx context.Context, t Ticket, issueID, commentID int64) error {
	return c.Commit(ctx, t, func(st *CommentState) {
		th := st.Threads[issueID]
		th.Comments = slices.DeleteFunc(th.Comments, func(x domain.Comment) bool { return x.ID == commentID })
	})
}

// Thread returns a copy of the thread of issueID and whether it is cached.
func (c *Comments) Thread(issueID int64) (Thread, bool) {
	snap := c.Snapshot()
	th, ok := snap.Threads[issueID]
	if !ok {
		return Thread{Comments: []domain.Comment{}}, false
	}
	return *th, true
}

// Invalidate drops the cached thread of issueID. Responses still in
// flight for it are discarded.
func (c *Comments) Invalidate(issueID int64) {
	c.mu.Lock()
	c.recent.Remove(issueID)
	c.mu.Unlock()
	c.drop(issueID)
}

// Reset drops every thread.
func (c *Comments) Reset() {
	c.mu.Lock()
	c.recent.Purge()
	c.mu.Unlock()
	c.Slice.Reset()
}
