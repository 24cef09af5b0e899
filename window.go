package pull

import "github.com/teenjuna/pull/buffer"

// Roll emits every contiguous window of width consecutive source elements as
// a fresh slice, advancing the window start by one element per emission: a
// finite ordered source of length L yields L−W+1 windows. It panics unless
// width ≥ 2 and the source is ordered.
func Roll[E any](source Sequence[E], width int) Sequence[[]E] {
	return newWindow(source, width, 1)
}

// Chunk partitions the source into consecutive, non-overlapping slices of
// exactly width elements. A trailing partial chunk is dropped: if the source
// length is not a multiple of width, the leftover elements are never emitted.
// It panics unless width ≥ 2 and the source is ordered.
func Chunk[E any](source Sequence[E], width int) Sequence[[]E] {
	return newWindow(source, width, width)
}

func newWindow[E any](source Sequence[E], width, step int) Sequence[[]E] {
	requireSource(source)
	if width < 2 {
		panic("width can't be < 2")
	}
	requireOrdered(source)
	return &windowSeq[E]{
		source: source,
		ring:   buffer.Ring[E](width + 1),
		width:  width,
		step:   step,
	}
}

// windowSeq is the shared rolling/chunking machine: a circular buffer primed
// with width unread elements, emitted as a copy, then consumed by step (one
// for rolling, width for chunking).
type windowSeq[E any] struct {
	source Sequence[E]
	ring   *buffer.RingBuffer[E]
	width  int
	step   int
	done   bool
}

func (s *windowSeq[E]) Advance(yield func([]E)) bool {
	if s.done {
		return false
	}
	for s.ring.Size() < s.width {
		e, ok := pullOne(s.source)
		if !ok {
			s.done = true
			return false
		}
		s.ring.Push(e)
	}
	window := s.ring.Window(s.width)
	s.ring.Skip(s.step)
	yield(window)
	return true
}

// Split delegates to the source and wraps the returned half in a fresh
// windowing adapter of the same width. Elements adjacent across the split
// boundary never share a window, an accepted approximation.
func (s *windowSeq[E]) Split() Sequence[[]E] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return newWindow(half, s.width, s.step)
}

func (s *windowSeq[E]) Size() int64 {
	width := int64(s.width)
	if s.step > 1 {
		return subSize(s.source.Size(), width-1)
	}
	return subSize(s.source.Size(), width)
}

func (s *windowSeq[E]) Props() Props {
	return s.source.Props().WithoutSized().WithoutSorted().WithoutDistinct()
}
