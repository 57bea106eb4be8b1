// Package ui renders notifications and navigation requests for a terminal.
package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Toaster writes one-line notifications to a terminal.
type Toaster struct {
	mu      sync.Mutex
	w       io.Writer
	log     *slog.Logger
	success lipgloss.Style
	failure lipgloss.Style
}

// NewToaster creates a Toaster writing to w. With plain set, no styling is
// applied.
func NewToaster(w io.Writer, logger *slog.Logger, plain bool) *Toaster {
	t := &Toaster{
		w:       w,
		log:     logger.With("component", "toast"),
		success: lipgloss.NewStyle(),
		failure: lipgloss.NewStyle(),
	}
	if !plain {
		t.success = t.success.Foreground(lipgloss.Color("2")).Bold(true)
		t.failure = t.failure.Foreground(lipgloss.Color("1")).Bold(true)
	}
	return t
}

// Success shows a confirmation.
func (t *Toaster) Success(ctx context.Context, msg string) {
	t.log.InfoContext(ctx, "notify", slog.String("level", "success"), slog.String("message", msg))
	t.write(t.success.Render("✓ " + msg))
}

// Error shows a failure.
func (t *Toaster) Error(ctx context.Context, msg string) {
	t.log.WarnContext(ctx, "notify", slog.String("level", "error"), slog.String("message", msg))
	t.write(t.failure.Render("✗ " + msg))
}

func (t *Toaster) write(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, line)
}
