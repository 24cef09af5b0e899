package pull

// Cycle collects the ordered source into memory at construction time and then
// emits its elements over and over, wrapping from the last back to the first.
// A cycle over a non-empty source never ends on its own, so it is meant to be
// bounded downstream, for example by [Limit] or [Zip]. A cycle over an empty
// source is immediately exhausted. It panics if source is nil or not ordered.
func Cycle[E any](source Sequence[E]) Sequence[E] {
	requireSource(source)
	requireOrdered(source)
	return &cycleSeq[E]{items: Collect(source)}
}

type cycleSeq[E any] struct {
	items []E
	pos   int
}

func (s *cycleSeq[E]) Advance(yield func(E)) bool {
	if len(s.items) == 0 {
		return false
	}
	e := s.items[s.pos]
	s.pos = (s.pos + 1) % len(s.items)
	yield(e)
	return true
}

// Split hands out an independent cycle over the same elements. The halves
// overlap rather than partition the (infinite) whole.
func (s *cycleSeq[E]) Split() Sequence[E] {
	return &cycleSeq[E]{items: s.items}
}

func (s *cycleSeq[E]) Size() int64 {
	if len(s.items) == 0 {
		return 0
	}
	return Unbounded
}

func (s *cycleSeq[E]) Props() Props {
	return Props{Ordered: true}
}

// Repeat emits every element of the ordered, sized source factor times in a
// row before moving on to the next. It panics if source is nil, not ordered
// or not sized, or if factor is below 2.
func Repeat[E any](source Sequence[E], factor int) Sequence[E] {
	requireSource(source)
	requireOrdered(source)
	if !source.Props().Sized {
		panic("source must be sized")
	}
	if factor < 2 {
		panic("factor can't be < 2")
	}
	return &repeatSeq[E]{source: source, factor: factor}
}

type repeatSeq[E any] struct {
	source  Sequence[E]
	factor  int
	current E
	left    int
}

func (s *repeatSeq[E]) Advance(yield func(E)) bool {
	if s.left == 0 {
		e, ok := pullOne(s.source)
		if !ok {
			return false
		}
		s.current = e
		s.left = s.factor
	}
	s.left--
	yield(s.current)
	return true
}

func (s *repeatSeq[E]) Split() Sequence[E] {
	if s.left > 0 {
		// Pending repetitions of the current element precede anything still
		// in the source, so a prefix taken now would be out of order.
		return nil
	}
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return &repeatSeq[E]{source: half, factor: s.factor}
}

func (s *repeatSeq[E]) Size() int64 {
	return addSize(mulSize(s.source.Size(), int64(s.factor)), int64(s.left))
}

func (s *repeatSeq[E]) Props() Props {
	return s.source.Props().WithoutDistinct()
}
