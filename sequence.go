// Package pull provides lazy, pull-based sequences and a family of stateful
// adapters over them: windowing, predicate-driven gating and segmentation,
// bounded top-K filtering, running accumulation, multi-source combination and
// cross-product enumeration.
//
// Elements are produced one at a time, on demand, by [Sequence.Advance]. A
// sequence can optionally be divided by [Sequence.Split] into two disjoint
// sequences for independent consumption; the package enables parallel
// decomposition but deliberately ships no fork/join engine of its own.
package pull

import (
	"iter"
	"math"
)

// Unbounded is the size estimate of a sequence whose remaining element count
// is unknown or infinite.
const Unbounded int64 = math.MaxInt64

// Predicate decides whether an element matches.
type Predicate[E any] func(E) bool

// Compare orders two elements the way the standard library's cmp.Compare
// does: negative when a ranks below b, zero when they are equivalent,
// positive when a ranks above b. Two elements comparing equal form one
// comparator-equivalence class for the adapters that work with keys.
type Compare[E any] func(a, b E) int

// Sequence is a lazy, pull-based sequence of elements.
//
// Implementations are not thread-safe: a sequence instance is advanced by one
// consumer at a time, and concurrency is obtained by splitting first and
// advancing the disjoint halves independently.
type Sequence[E any] interface {
	// Advance attempts to produce exactly one element. If one exists, yield is
	// invoked exactly once with it and Advance returns true; if the sequence
	// is exhausted, yield is never invoked and Advance returns false, now and
	// on every later call. Any other combination is a fatal contract
	// violation, and downstream code is entitled to assume it cannot happen.
	Advance(yield func(E)) bool
	// Split partitions off a disjoint prefix of the not-yet-consumed elements
	// for independent consumption and returns it; the receiver keeps the
	// remainder, and the prefix followed by the remainder reproduces the
	// original sequence. It returns nil when splitting is not supported at
	// this time. Callers split before the first Advance; once consumption has
	// begun a nil result is always allowed.
	Split() Sequence[E]
	// Size estimates the number of remaining elements: exact when the Sized
	// property is set, otherwise an upper bound or [Unbounded].
	Size() int64
	// Props reports the sequence's property set.
	Props() Props
}

// pullOne drives a single advance of s and returns the produced element. It
// panics if s breaks the advance protocol; every adapter in this package pulls
// from its source through it, so a misbehaving sequence fails fast instead of
// corrupting downstream state.
func pullOne[E any](s Sequence[E]) (E, bool) {
	var (
		element E
		yielded bool
	)
	ok := s.Advance(func(e E) {
		if yielded {
			panic("yield called twice in one advance")
		}
		yielded = true
		element = e
	})
	if ok && !yielded {
		panic("advance returned true without yielding")
	}
	if !ok && yielded {
		panic("advance returned false after yielding")
	}
	return element, ok
}

// Collect drains s into a slice.
func Collect[E any](s Sequence[E]) []E {
	items := make([]E, 0)
	for {
		e, ok := pullOne(s)
		if !ok {
			return items
		}
		items = append(items, e)
	}
}

// Count drains s and returns the number of elements it produced.
func Count[E any](s Sequence[E]) int64 {
	var n int64
	for {
		if _, ok := pullOne(s); !ok {
			return n
		}
		n++
	}
}

// Each drains s, applying fn to every element in turn.
func Each[E any](s Sequence[E], fn func(E)) {
	if fn == nil {
		panic("fn can't be nil")
	}
	for {
		e, ok := pullOne(s)
		if !ok {
			return
		}
		fn(e)
	}
}

// Values adapts s into the standard library's push iteration, so a sequence
// can drive a range loop. Stopping the loop early leaves s only partially
// consumed; it can be advanced again later.
func Values[E any](s Sequence[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := pullOne(s)
			if !ok || !yield(e) {
				return
			}
		}
	}
}

func requireSource[E any](source Sequence[E]) {
	if source == nil {
		panic("source can't be nil")
	}
}

func requireOrdered[E any](source Sequence[E]) {
	if !source.Props().Ordered {
		panic("source must be ordered")
	}
}

func addSize(a, b int64) int64 {
	if a == Unbounded || b == Unbounded || a > Unbounded-b {
		return Unbounded
	}
	return a + b
}

func subSize(a, b int64) int64 {
	if a == Unbounded {
		return Unbounded
	}
	return max(a-b, 0)
}

func mulSize(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == Unbounded || b == Unbounded || a > Unbounded/b {
		return Unbounded
	}
	return a * b
}
