package pull

import "github.com/teenjuna/pull/buffer"

// GroupBetween segments the source into slices delimited by two predicates: a
// segment starts when open is true for an element and ends when close is true
// for a later one. The boundary elements themselves are appended to the
// segment iff their kept flag is set. Between segments elements are dropped;
// an element matching open while a segment is already collecting is appended
// like any other, and an element matching close outside a segment is ignored.
// A close always emits, even when the segment is empty; exhaustion mid-segment
// emits the partial segment only if it is non-empty. It panics if the source
// or either predicate is nil, or if the source is not ordered.
func GroupBetween[E any](source Sequence[E], open Predicate[E], openKept bool, close Predicate[E], closeKept bool) Sequence[[]E] {
	return newGroup(source, open, openKept, close, closeKept, false)
}

// GroupOn segments the source into slices starting at each element matched by
// the predicate: a match closes the current segment and immediately opens the
// next one, carrying the matched element into it iff kept is set. Elements
// before the first match are dropped; adjacent matches emit empty segments.
// It panics if the source or predicate is nil, or if the source is not
// ordered.
func GroupOn[E any](source Sequence[E], match Predicate[E], kept bool) Sequence[[]E] {
	return newGroup(source, match, kept, match, false, true)
}

func newGroup[E any](source Sequence[E], open Predicate[E], openKept bool, close Predicate[E], closeKept, reopen bool) Sequence[[]E] {
	requireSource(source)
	if open == nil || close == nil {
		panic("predicate can't be nil")
	}
	requireOrdered(source)
	return &groupSeq[E]{
		source:    source,
		open:      open,
		openKept:  openKept,
		close:     close,
		closeKept: closeKept,
		reopen:    reopen,
		segment:   buffer.Appending[E](),
	}
}

// groupSeq is a two-state machine: waiting for an opening element, or
// collecting a segment until a closing one. The segment buffer is swapped out
// on emission so an emitted slice is never touched again.
type groupSeq[E any] struct {
	source     Sequence[E]
	open       Predicate[E]
	openKept   bool
	close      Predicate[E]
	closeKept  bool
	reopen     bool
	collecting bool
	segment    *buffer.AppendingBuffer[E]
	done       bool
}

func (s *groupSeq[E]) Advance(yield func([]E)) bool {
	if s.done {
		return false
	}
	for {
		e, ok := pullOne(s.source)
		if !ok {
			s.done = true
			if s.collecting && s.segment.Size() > 0 {
				yield(s.segment.Take())
				return true
			}
			return false
		}

		if !s.collecting {
			if s.open(e) {
				s.collecting = true
				if s.openKept {
					s.segment.Push(e)
				}
			}
			continue
		}

		if s.close(e) {
			if s.closeKept {
				s.segment.Push(e)
			}
			segment := s.segment.Take()
			s.collecting = s.reopen
			if s.reopen && s.openKept {
				s.segment.Push(e)
			}
			yield(segment)
			return true
		}

		s.segment.Push(e)
	}
}

// Split wraps the source half in a fresh adapter with empty segment state, so
// a segment spanning the split boundary is emitted as two partial segments.
func (s *groupSeq[E]) Split() Sequence[[]E] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return newGroup(half, s.open, s.openKept, s.close, s.closeKept, s.reopen)
}

func (s *groupSeq[E]) Size() int64 {
	return 0
}

func (s *groupSeq[E]) Props() Props {
	return Props{Ordered: s.source.Props().Ordered}
}
