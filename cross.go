package pull

import (
	"github.com/teenjuna/pull/buffer"
)

// CrossProduct pairs every element of the ordered source with every element
// of the same source, itself included, as an incremental self-join: each
// pulled element e is paired both ways against all elements seen before it,
// then with itself, and then joins the seen set. A source of n elements
// produces n² pairs. One pair is emitted per Advance. It panics if source is
// nil or not ordered.
func CrossProduct[E any](source Sequence[E]) Sequence[Entry[E, E]] {
	requireSource(source)
	requireOrdered(source)
	s := newCross(source)
	s.expand = func(e E, seen *buffer.AppendingBuffer[E]) []Entry[E, E] {
		pairs := make([]Entry[E, E], 0, 2*seen.Size()+1)
		for prior := range seen.Iter() {
			pairs = append(pairs, Entry[E, E]{e, prior}, Entry[E, E]{prior, e})
		}
		return append(pairs, Entry[E, E]{e, e})
	}
	s.size = func(seen, left, queued int64) int64 {
		// Each of the left elements pairs both ways with everything before
		// it and once with itself.
		future := addSize(mulSize(left, left), mulSize(2, mulSize(seen, left)))
		return addSize(future, queued)
	}
	s.props = Props{Ordered: true, Sized: source.Props().Sized}
	return s
}

// CrossProductNoSelf is [CrossProduct] without each round's self-pair: a
// source of n elements produces n(n−1) pairs. Equal values pulled in
// different rounds still pair with each other. It panics if source is nil or
// not ordered.
func CrossProductNoSelf[E any](source Sequence[E]) Sequence[Entry[E, E]] {
	requireSource(source)
	requireOrdered(source)
	s := newCross(source)
	s.expand = func(e E, seen *buffer.AppendingBuffer[E]) []Entry[E, E] {
		pairs := make([]Entry[E, E], 0, 2*seen.Size())
		for prior := range seen.Iter() {
			pairs = append(pairs, Entry[E, E]{e, prior}, Entry[E, E]{prior, e})
		}
		return pairs
	}
	s.size = func(seen, left, queued int64) int64 {
		future := addSize(mulSize(left, subSize(left, 1)), mulSize(2, mulSize(seen, left)))
		return addSize(future, queued)
	}
	s.props = Props{Ordered: true, Sized: source.Props().Sized}
	return s
}

// CrossProductOrdered keeps only the orientation of each pair that cmp ranks
// strictly ascending, so each unordered pair appears exactly once and ties
// are dropped: a source of n elements distinct under cmp produces n(n−1)/2
// pairs. It panics if source is nil or not ordered, or if cmp is nil.
func CrossProductOrdered[E any](source Sequence[E], cmp Compare[E]) Sequence[Entry[E, E]] {
	requireSource(source)
	requireOrdered(source)
	if cmp == nil {
		panic("comparator can't be nil")
	}
	s := newCross(source)
	s.expand = func(e E, seen *buffer.AppendingBuffer[E]) []Entry[E, E] {
		pairs := make([]Entry[E, E], 0, seen.Size())
		for prior := range seen.Iter() {
			switch {
			case cmp(e, prior) < 0:
				pairs = append(pairs, Entry[E, E]{e, prior})
			case cmp(prior, e) < 0:
				pairs = append(pairs, Entry[E, E]{prior, e})
			}
		}
		return pairs
	}
	s.size = func(seen, left, queued int64) int64 {
		// Upper bound: ties under cmp produce no pair at all.
		pairs := mulSize(left, subSize(left, 1))
		if pairs != Unbounded {
			pairs /= 2
		}
		future := addSize(pairs, mulSize(seen, left))
		return addSize(future, queued)
	}
	s.props = Props{Ordered: true}
	return s
}

func newCross[E any](source Sequence[E]) *crossSeq[E] {
	return &crossSeq[E]{source: source, seen: buffer.Appending[E]()}
}

type crossSeq[E any] struct {
	source  Sequence[E]
	seen    *buffer.AppendingBuffer[E]
	pending []Entry[E, E]
	pos     int
	expand  func(e E, seen *buffer.AppendingBuffer[E]) []Entry[E, E]
	size    func(seen, left, queued int64) int64
	props   Props
}

func (s *crossSeq[E]) Advance(yield func(Entry[E, E])) bool {
	// A round can queue nothing (no priors yet, or all ties), so keep
	// pulling until a pair is available or the source ends.
	for s.pos >= len(s.pending) {
		e, ok := pullOne(s.source)
		if !ok {
			return false
		}
		s.pending = s.expand(e, s.seen)
		s.pos = 0
		s.seen.Push(e)
	}
	pair := s.pending[s.pos]
	s.pos++
	yield(pair)
	return true
}

// Split is unsupported: every element must eventually pair with every other,
// so no half of the source encloses a disjoint share of the output.
func (s *crossSeq[E]) Split() Sequence[Entry[E, E]] {
	return nil
}

func (s *crossSeq[E]) Size() int64 {
	return s.size(int64(s.seen.Size()), s.source.Size(), int64(len(s.pending)-s.pos))
}

func (s *crossSeq[E]) Props() Props {
	return s.props
}
