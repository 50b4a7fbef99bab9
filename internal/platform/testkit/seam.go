package testkit

import (
	"sync"
	"testing"
	"time"
)

var seamMu sync.Mutex

// Swap replaces a package-level seam (func or value) for the duration of the test
// Swaps restore in reverse order, so stacking two on the same target is safe
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a global lock for the rest of the test; use it in tests that Swap seams
// other parallel tests read
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// Sequence returns a stub yielding vals in order, then repeating the last one
// It panics when vals is empty
func Sequence[T any](vals ...T) func() T {
	if len(vals) == 0 {
		panic("testkit: Sequence needs at least one value")
	}
	var mu sync.Mutex
	i := 0
	return func() T {
		mu.Lock()
		defer mu.Unlock()
		v := vals[min(i, len(vals)-1)]
		i++
		return v
	}
}

// Clock returns a clock that starts at start+step and advances by step on every call
func Clock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}
