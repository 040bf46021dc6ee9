// Package chflow provides channel and timer waits that give up when a
// context ends.
package chflow

import (
	"context"
	"time"
)

// Receive waits for a value from ch or for ctx to end. The boolean is false
// when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Sleep pauses for d unless the context is canceled first.
// It returns false when the context ended before d elapsed.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
