package pull

// Gate drops source elements until open is first true for one of them; that
// element and every element after it pass through unchanged. The gate never
// re-closes. It panics if the source or predicate is nil.
func Gate[E any](source Sequence[E], open Predicate[E]) Sequence[E] {
	requireSource(source)
	if open == nil {
		panic("predicate can't be nil")
	}
	return &gateSeq[E]{source: source, open: open}
}

type gateSeq[E any] struct {
	source Sequence[E]
	open   Predicate[E]
	opened bool
}

func (s *gateSeq[E]) Advance(yield func(E)) bool {
	for {
		e, ok := pullOne(s.source)
		if !ok {
			return false
		}
		if !s.opened && !s.open(e) {
			continue
		}
		s.opened = true
		yield(e)
		return true
	}
}

// Split wraps the source half in a fresh, still-closed gate.
func (s *gateSeq[E]) Split() Sequence[E] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return Gate(half, s.open)
}

func (s *gateSeq[E]) Size() int64 {
	if !s.opened {
		return 0
	}
	return s.source.Size()
}

func (s *gateSeq[E]) Props() Props {
	return s.source.Props().WithoutSized()
}

// Interrupt passes source elements through unchanged until stop is first true
// for one of them; that element and everything after it are dropped and the
// source is not pulled again. It panics if the source or predicate is nil.
func Interrupt[E any](source Sequence[E], stop Predicate[E]) Sequence[E] {
	requireSource(source)
	if stop == nil {
		panic("predicate can't be nil")
	}
	return &interruptSeq[E]{source: source, stop: stop}
}

type interruptSeq[E any] struct {
	source Sequence[E]
	stop   Predicate[E]
	done   bool
}

func (s *interruptSeq[E]) Advance(yield func(E)) bool {
	if s.done {
		return false
	}
	e, ok := pullOne(s.source)
	if !ok || s.stop(e) {
		s.done = true
		return false
	}
	yield(e)
	return true
}

func (s *interruptSeq[E]) Split() Sequence[E] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return Interrupt(half, s.stop)
}

func (s *interruptSeq[E]) Size() int64 {
	return 0
}

func (s *interruptSeq[E]) Props() Props {
	return s.source.Props().WithoutSized()
}

// Limit passes through at most the first n source elements, never pulling the
// source past them. n = 0 is legal and yields an immediately empty sequence.
// It panics if the source is nil or n is negative.
func Limit[E any](source Sequence[E], n int64) Sequence[E] {
	requireSource(source)
	if n < 0 {
		panic("limit can't be < 0")
	}
	return &limitSeq[E]{source: source, limit: n}
}

type limitSeq[E any] struct {
	source Sequence[E]
	limit  int64
	count  int64
}

func (s *limitSeq[E]) Advance(yield func(E)) bool {
	if s.count >= s.limit {
		return false
	}
	e, ok := pullOne(s.source)
	if !ok {
		return false
	}
	s.count++
	yield(e)
	return true
}

// Split wraps the source half in a fresh limit of the full n, so a consumer
// of both halves can see up to 2n elements in total.
func (s *limitSeq[E]) Split() Sequence[E] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return Limit(half, s.limit)
}

func (s *limitSeq[E]) Size() int64 {
	return min(s.limit-s.count, s.source.Size())
}

func (s *limitSeq[E]) Props() Props {
	return s.source.Props()
}
