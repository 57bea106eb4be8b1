package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Navigator shows where the user should go next. A terminal cannot follow
// a link, so Navigate prints it and remembers it for the caller.
type Navigator struct {
	mu   sync.Mutex
	w    io.Writer
	last string
}

// NewNavigator creates a Navigator writing to w.
func NewNavigator(w io.Writer) *Navigator {
	return &Navigator{w: w}
}

// Navigate announces a new location.
func (n *Navigator) Navigate(_ context.Context, url string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = url
	fmt.Fprintf(n.w, "→ %s\n", url)
}

// Replace records a location without announcing it, like a history
// replacement.
func (n *Navigator) Replace(_ context.Context, url string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = url
}

// Last returns the most recent location.
func (n *Navigator) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}
