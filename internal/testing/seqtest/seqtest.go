// Package seqtest drives sequences through the advance contract checks
// shared by the adapter tests.
package seqtest

import (
	"testing"

	"github.com/teenjuna/pull"
)

// Drain advances the sequence to exhaustion and returns everything it
// emitted, never nil. Each advance must invoke the callback exactly once
// when it returns true and not at all when it returns false, and the first
// false must be final; any deviation fails the test.
func Drain[E any](t *testing.T, s pull.Sequence[E]) []E {
	out := []E{}
	for {
		e, ok := advance(t, s)
		if !ok {
			break
		}
		out = append(out, e)
	}
	if _, ok := advance(t, s); ok {
		t.Fatal("advance returned true after reporting exhaustion")
	}
	return out
}

// Take advances the sequence n times and returns the emitted elements,
// failing the test if the sequence ends early. It leaves the sequence ready
// for further advances, which makes it the way to sample unbounded
// sequences.
func Take[E any](t *testing.T, s pull.Sequence[E], n int) []E {
	out := []E{}
	for range n {
		e, ok := advance(t, s)
		if !ok {
			t.Fatalf("sequence ended after %d of %d elements", len(out), n)
		}
		out = append(out, e)
	}
	return out
}

func advance[E any](t *testing.T, s pull.Sequence[E]) (E, bool) {
	t.Helper()
	var (
		last  E
		calls int
	)
	ok := s.Advance(func(e E) {
		last = e
		calls++
	})
	if ok && calls != 1 {
		t.Fatalf("advance returned true after yielding %d times", calls)
	}
	if !ok && calls != 0 {
		t.Fatalf("advance returned false after yielding %d times", calls)
	}
	return last, ok
}
