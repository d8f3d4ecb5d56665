// Package dialog decouples slow user interactions (file choosers) from
// the caller's update loop. A Runner hands the interaction to a
// goroutine and lets the loop poll for the outcome without blocking.
package dialog

import "errors"

// ErrPending is returned when a new dialog is requested while a previous
// one has not been resolved yet.
var ErrPending = errors.New("a dialog is already open")

// Filter restricts a file chooser to one file type.
type Filter struct {
	// Label names the file type, e.g. "Markdown".
	Label string
	// Extensions lists the patterns without dot, e.g. "md".
	Extensions []string
}

// Picker abstracts the platform file chooser so the editor can be tested
// without opening windows.
type Picker interface {
	// PickOpen asks for an existing file to read. ok is false when the
	// user cancelled.
	PickOpen(filter Filter) (path string, ok bool)
	// PickSave asks for a target path, seeding the given file name.
	PickSave(filter Filter, suggested string) (path string, ok bool)
}

// Runner executes at most one dialog interaction at a time and delivers
// its result through a single-slot channel. The zero value is ready to
// use.
type Runner[T any] struct {
	ch chan T
}

// Go starts fn on its own goroutine. fn returns ok=false to signal
// cancellation, in which case Poll never reports a result for this
// interaction. A second Go while one is in flight fails with ErrPending.
func (r *Runner[T]) Go(fn func() (T, bool)) error {
	if r.ch != nil {
		return ErrPending
	}
	ch := make(chan T, 1)
	r.ch = ch
	go func() {
		v, ok := fn()
		if !ok {
			close(ch)
			return
		}
		ch <- v
	}()
	return nil
}

// Poll reports a completed result without blocking. After a result (or a
// cancellation) has been consumed the runner is free for the next Go.
func (r *Runner[T]) Poll() (T, bool) {
	var zero T
	if r.ch == nil {
		return zero, false
	}
	select {
	case v, ok := <-r.ch:
		r.ch = nil
		if !ok {
			return zero, false
		}
		return v, true
	default:
		return zero, false
	}
}

// Pending reports whether an interaction is in flight or its outcome has
// not been consumed via Poll yet.
func (r *Runner[T]) Pending() bool {
	return r.ch != nil
}
