// Package testutil provides shared helpers for repository tests.
package testutil

import (
	"fmt"
	"testing"
)

// ReleaseLog records resource lifecycle events so tests can assert teardown
// discipline: every acquired resource released exactly once, in reverse
// order of acquisition, and nothing released after a successful handoff.
type ReleaseLog struct {
	acquired int
	released []int
	counts   map[int]int
}

// NewReleaseLog returns an empty log.
func NewReleaseLog() *ReleaseLog {
	return &ReleaseLog{counts: make(map[int]int)}
}

// Acquire allocates the next resource id, starting from 1.
func (l *ReleaseLog) Acquire() int {
	l.acquired++
	return l.acquired
}

// Release records that id was released.
func (l *ReleaseLog) Release(id int) {
	l.released = append(l.released, id)
	l.counts[id]++
}

// Acquired returns how many resources were handed out.
func (l *ReleaseLog) Acquired() int { return l.acquired }

// Released returns release events in the order they happened.
func (l *ReleaseLog) Released() []int { return l.released }

// CheckTornDown fails t unless exactly want resources were acquired and each
// was released exactly once, in reverse order of acquisition.
func (l *ReleaseLog) CheckTornDown(t testing.TB, want int) {
	t.Helper()

	if l.acquired != want {
		t.Fatalf("acquired %d resources, want %d", l.acquired, want)
	}
	if len(l.released) != want {
		t.Fatalf("recorded %d release events, want %d (events: %v)", len(l.released), want, l.released)
	}
	for id, n := range l.counts {
		if n != 1 {
			t.Fatalf("resource %d released %d times, want exactly once", id, n)
		}
	}
	for i, id := range l.released {
		if wantID := l.acquired - i; id != wantID {
			t.Fatalf("release order %v not reverse of acquisition (event %d is id %d, want %d)", l.released, i, id, wantID)
		}
	}
}

// CheckUntouched fails t if any release was recorded.
func (l *ReleaseLog) CheckUntouched(t testing.TB) {
	t.Helper()

	if len(l.released) != 0 {
		t.Fatalf("unexpected release events: %v", l.released)
	}
}

// String summarizes the log for failure messages.
func (l *ReleaseLog) String() string {
	return fmt.Sprintf("acquired=%d released=%v", l.acquired, l.released)
}
