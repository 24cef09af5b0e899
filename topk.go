package pull

import (
	"slices"

	"github.com/teenjuna/pull/buffer"
)

// AllMax filters the source down to every element tied with its maximum under
// the comparator, in arrival order. The whole source is consumed on the first
// Advance, since the maximum is unknown until exhaustion. It panics if the
// source or comparator is nil.
func AllMax[E any](source Sequence[E], cmp Compare[E]) Sequence[E] {
	requireSource(source)
	if cmp == nil {
		panic("comparator can't be nil")
	}
	return &topkSeq[E]{
		source:  source,
		ranking: buffer.Ranking(1, cmp, true),
		size:    func() int64 { return 0 },
		props:   source.Props().WithoutSized(),
	}
}

// MaxKeys filters the source down to its n largest distinct keys (comparator
// equivalence classes), emitted in decreasing order with one first-seen
// representative per key. Elements tying an already retained key are
// discarded. The whole source is consumed on the first Advance. It panics if
// the source or comparator is nil or n < 2.
func MaxKeys[E any](source Sequence[E], n int, cmp Compare[E]) Sequence[E] {
	requireSource(source)
	if n < 2 {
		panic("n can't be < 2")
	}
	if cmp == nil {
		panic("comparator can't be nil")
	}
	props := source.Props().WithoutSized().WithoutSorted()
	props.Distinct = true
	return &topkSeq[E]{
		source:  source,
		ranking: buffer.Ranking(n, cmp, false),
		size:    func() int64 { return min(source.Size(), int64(n)) },
		props:   props,
	}
}

// MaxValues filters the source down to every element whose key is among the n
// largest distinct keys, emitted in decreasing key order with ties in arrival
// order. Unlike MaxKeys it keeps all values sharing a retained key, so the
// output can exceed n elements when the boundary key has duplicates. The
// whole source is consumed on the first Advance. It panics if the source or
// comparator is nil or n < 2.
func MaxValues[E any](source Sequence[E], n int, cmp Compare[E]) Sequence[E] {
	requireSource(source)
	if n < 2 {
		panic("n can't be < 2")
	}
	if cmp == nil {
		panic("comparator can't be nil")
	}
	return &topkSeq[E]{
		source:  source,
		ranking: buffer.Ranking(n, cmp, true),
		size:    func() int64 { return 0 },
		props:   source.Props().WithoutSized().WithoutSorted().WithoutDistinct(),
	}
}

type topkSeq[E any] struct {
	source  Sequence[E]
	ranking *buffer.RankingBuffer[E]
	size    func() int64
	props   Props
	drained bool
	out     []E
	pos     int
}

func (s *topkSeq[E]) Advance(yield func(E)) bool {
	if !s.drained {
		s.drained = true
		for {
			e, ok := pullOne(s.source)
			if !ok {
				break
			}
			s.ranking.Push(e)
		}
		s.out = slices.Collect(s.ranking.Iter())
	}
	if s.pos >= len(s.out) {
		return false
	}
	e := s.out[s.pos]
	s.pos++
	yield(e)
	return true
}

// Split returns nil: the top-K filters must see the whole input and define no
// merge for split halves, so they refuse to split.
func (s *topkSeq[E]) Split() Sequence[E] {
	return nil
}

func (s *topkSeq[E]) Size() int64 {
	return s.size()
}

func (s *topkSeq[E]) Props() Props {
	return s.props
}
