package pull

import "iter"

// From returns an ordered, exactly sized sequence over the given slice. The
// slice is not copied; it must not be mutated while the sequence is in use.
// The sequence splits its remaining range in half any number of times.
func From[E any](items []E) Sequence[E] {
	return &sliceSeq[E]{items: items}
}

// Of returns an ordered, exactly sized sequence of the given elements.
func Of[E any](items ...E) Sequence[E] {
	return From(items)
}

// Empty returns an ordered, exactly sized sequence with no elements.
func Empty[E any]() Sequence[E] {
	return From[E](nil)
}

type sliceSeq[E any] struct {
	items []E
	pos   int
}

func (s *sliceSeq[E]) Advance(yield func(E)) bool {
	if s.pos >= len(s.items) {
		return false
	}
	e := s.items[s.pos]
	s.pos++
	yield(e)
	return true
}

func (s *sliceSeq[E]) Split() Sequence[E] {
	remaining := len(s.items) - s.pos
	if remaining < 2 {
		return nil
	}
	mid := s.pos + remaining/2
	prefix := &sliceSeq[E]{items: s.items[s.pos:mid]}
	s.items = s.items[mid:]
	s.pos = 0
	return prefix
}

func (s *sliceSeq[E]) Size() int64 {
	return int64(len(s.items) - s.pos)
}

func (s *sliceSeq[E]) Props() Props {
	return Props{Ordered: true, Sized: true}
}

// FromSeq adapts a native push iterator into an ordered pull sequence of
// unknown size. The iterator is stepped lazily, one element per Advance, and
// released exactly once at exhaustion. The result does not split.
func FromSeq[E any](seq iter.Seq[E]) Sequence[E] {
	if seq == nil {
		panic("seq can't be nil")
	}
	next, stop := iter.Pull(seq)
	return &pulledSeq[E]{next: next, stop: stop}
}

type pulledSeq[E any] struct {
	next func() (E, bool)
	stop func()
	done bool
}

func (s *pulledSeq[E]) Advance(yield func(E)) bool {
	if s.done {
		return false
	}
	e, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return false
	}
	yield(e)
	return true
}

func (s *pulledSeq[E]) Split() Sequence[E] {
	return nil
}

func (s *pulledSeq[E]) Size() int64 {
	return Unbounded
}

func (s *pulledSeq[E]) Props() Props {
	return Props{Ordered: true}
}
