package ui

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestToaster_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	toaster := NewToaster(&buf, slog.New(slog.NewTextHandler(io.Discard, nil)), true)

	toaster.Success(context.Background(), "Saved")
	toaster.Error(context.Background(), "Nope")

	want := "✓ Saved\n✗ Nope\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNavigator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	nav := NewNavigator(&buf)

	nav.Navigate(context.Background(), "https://pay.example/checkout")
	if !strings.Contains(buf.String(), "https://pay.example/checkout") {
		t.Errorf("Navigate did not print the URL: %q", buf.String())
	}

	nav.Replace(context.Background(), "/projects")
	if nav.Last() != "/projects" {
		t.Errorf("Last() = %q", nav.Last())
	}
	if strings.Contains(buf.String(), "/projects\n") {
		t.Error("Replace should not print")
	}
}
