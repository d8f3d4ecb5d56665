package dialog

import (
	"errors"
	"testing"
	"time"
)

// await polls the runner until a result arrives or the deadline passes,
// imitating an update loop.
func await[T any](t *testing.T, r *Runner[T]) (T, bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if v, ok := r.Poll(); ok {
			return v, true
		}
		if !r.Pending() {
			var zero T
			return zero, false
		}
		select {
		case <-deadline:
			t.Fatal("runner never resolved")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRunnerDeliversResult(t *testing.T) {
	t.Parallel()

	var r Runner[string]
	if err := r.Go(func() (string, bool) { return "/tmp/a.md", true }); err != nil {
		t.Fatalf("Go: %v", err)
	}

	got, ok := await(t, &r)
	if !ok || got != "/tmp/a.md" {
		t.Errorf("got %q, ok=%v", got, ok)
	}
	if r.Pending() {
		t.Error("runner still pending after consuming the result")
	}
}

func TestRunnerCancellation(t *testing.T) {
	t.Parallel()

	var r Runner[int]
	if err := r.Go(func() (int, bool) { return 0, false }); err != nil {
		t.Fatalf("Go: %v", err)
	}

	if _, ok := await(t, &r); ok {
		t.Error("cancelled interaction produced a result")
	}
	if err := r.Go(func() (int, bool) { return 7, true }); err != nil {
		t.Fatalf("Go after cancellation: %v", err)
	}
	if got, ok := await(t, &r); !ok || got != 7 {
		t.Errorf("got %d, ok=%v", got, ok)
	}
}

func TestRunnerRejectsConcurrentDialog(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var r Runner[int]
	if err := r.Go(func() (int, bool) { <-release; return 1, true }); err != nil {
		t.Fatalf("Go: %v", err)
	}

	if err := r.Go(func() (int, bool) { return 2, true }); !errors.Is(err, ErrPending) {
		t.Errorf("second Go: err = %v, want ErrPending", err)
	}
	if !r.Pending() {
		t.Error("Pending() = false while dialog is open")
	}

	close(release)
	if got, ok := await(t, &r); !ok || got != 1 {
		t.Errorf("got %d, ok=%v; the first dialog's result must win", got, ok)
	}
}

func TestPollWithoutDialog(t *testing.T) {
	t.Parallel()

	var r Runner[string]
	if _, ok := r.Poll(); ok {
		t.Error("Poll on idle runner reported a result")
	}
	if r.Pending() {
		t.Error("idle runner is pending")
	}
}
