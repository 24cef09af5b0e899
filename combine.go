package pull

// Traverse consumes n ordered sources in lockstep: every Advance pulls one
// element from each source and emits the bundle as a slice in source order.
// The first exhausted source ends the sequence; elements already pulled in
// that final round are discarded, except that a first round which comes up
// short still emits one empty bundle, so traversing all-empty sources yields
// one empty group rather than none. It panics unless there are at least two
// sources, all non-nil and ordered.
func Traverse[E any](sources ...Sequence[E]) Sequence[[]E] {
	requireSources(sources)
	return &traverseSeq[E]{sources: sources}
}

type traverseSeq[E any] struct {
	sources []Sequence[E]
	rounds  int
	done    bool
}

func (s *traverseSeq[E]) Advance(yield func([]E)) bool {
	if s.done {
		return false
	}
	bundle := make([]E, 0, len(s.sources))
	for _, src := range s.sources {
		// Every source is pulled every round, even after one comes up empty.
		if e, ok := pullOne(src); ok {
			bundle = append(bundle, e)
		}
	}
	if len(bundle) < len(s.sources) {
		s.done = true
		if s.rounds == 0 {
			yield([]E{})
			return true
		}
		return false
	}
	s.rounds++
	yield(bundle)
	return true
}

func (s *traverseSeq[E]) Split() Sequence[[]E] {
	halves, ok := splitAll(s.sources)
	if !ok {
		return nil
	}
	return &traverseSeq[E]{sources: halves}
}

func (s *traverseSeq[E]) Size() int64 {
	if s.done {
		return 0
	}
	size := s.sources[0].Size()
	for _, src := range s.sources[1:] {
		size = min(size, src.Size())
	}
	if size == 0 && s.rounds == 0 {
		// The first round still emits one empty bundle.
		return 1
	}
	return size
}

func (s *traverseSeq[E]) Props() Props {
	return intersectAll(s.sources).WithoutSorted().WithoutDistinct()
}

// Weave consumes n ordered sources in the same rounds as [Traverse] but
// flattens each bundle, emitting one element per Advance: first an element of
// every source in order, then the next round. An incomplete final round is
// discarded entirely. It panics unless there are at least two sources, all
// non-nil and ordered.
func Weave[E any](sources ...Sequence[E]) Sequence[E] {
	requireSources(sources)
	return &weaveSeq[E]{sources: sources}
}

type weaveSeq[E any] struct {
	sources []Sequence[E]
	wave    []E
	pos     int
	done    bool
}

func (s *weaveSeq[E]) Advance(yield func(E)) bool {
	if s.pos >= len(s.wave) {
		if s.done {
			return false
		}
		wave := make([]E, 0, len(s.sources))
		for _, src := range s.sources {
			if e, ok := pullOne(src); ok {
				wave = append(wave, e)
			}
		}
		if len(wave) < len(s.sources) {
			s.done = true
			return false
		}
		s.wave = wave
		s.pos = 0
	}
	e := s.wave[s.pos]
	s.pos++
	yield(e)
	return true
}

func (s *weaveSeq[E]) Split() Sequence[E] {
	halves, ok := splitAll(s.sources)
	if !ok {
		return nil
	}
	return &weaveSeq[E]{sources: halves}
}

func (s *weaveSeq[E]) Size() int64 {
	var size int64
	for _, src := range s.sources {
		size = addSize(size, src.Size())
	}
	return size
}

func (s *weaveSeq[E]) Props() Props {
	return intersectAll(s.sources).WithoutSized().WithoutSorted().WithoutDistinct()
}

// Zip consumes two ordered sources in lockstep, emitting fn(a, b) for each
// pair of elements. The first exhausted side ends the sequence; an element
// already pulled from the other side in that final round is discarded. It
// panics if either source or fn is nil, or either source is not ordered.
func Zip[A, B, R any](a Sequence[A], b Sequence[B], fn func(A, B) R) Sequence[R] {
	if a == nil || b == nil {
		panic("source can't be nil")
	}
	if fn == nil {
		panic("fn can't be nil")
	}
	requireOrdered(a)
	requireOrdered(b)
	return &zipSeq[A, B, R]{a: a, b: b, fn: fn}
}

type zipSeq[A, B, R any] struct {
	a    Sequence[A]
	b    Sequence[B]
	fn   func(A, B) R
	done bool
}

func (s *zipSeq[A, B, R]) Advance(yield func(R)) bool {
	if s.done {
		return false
	}
	ea, ok := pullOne(s.a)
	if !ok {
		s.done = true
		return false
	}
	eb, ok := pullOne(s.b)
	if !ok {
		s.done = true
		return false
	}
	yield(s.fn(ea, eb))
	return true
}

func (s *zipSeq[A, B, R]) Split() Sequence[R] {
	halfA := s.a.Split()
	if halfA == nil {
		return nil
	}
	halfB := s.b.Split()
	if halfB == nil {
		s.a = concat(halfA, s.a)
		return nil
	}
	return Zip(halfA, halfB, s.fn)
}

func (s *zipSeq[A, B, R]) Size() int64 {
	return min(s.a.Size(), s.b.Size())
}

func (s *zipSeq[A, B, R]) Props() Props {
	return s.a.Props().Intersect(s.b.Props()).WithoutSorted().WithoutDistinct()
}

func requireSources[E any](sources []Sequence[E]) {
	if len(sources) < 2 {
		panic("sources can't be fewer than 2")
	}
	for _, src := range sources {
		if src == nil {
			panic("sources can't be nil")
		}
		if !src.Props().Ordered {
			panic("sources must be ordered")
		}
	}
}

func intersectAll[E any](sources []Sequence[E]) Props {
	props := sources[0].Props()
	for _, src := range sources[1:] {
		props = props.Intersect(src.Props())
	}
	return props
}

// splitAll splits every source or none: when a later source refuses to split,
// the halves already taken are stitched back in front of their remainders so
// no element is lost.
func splitAll[E any](sources []Sequence[E]) ([]Sequence[E], bool) {
	halves := make([]Sequence[E], len(sources))
	for i, src := range sources {
		half := src.Split()
		if half == nil {
			for j := range i {
				sources[j] = concat(halves[j], sources[j])
			}
			return nil, false
		}
		halves[i] = half
	}
	return halves, true
}

func concat[E any](head, tail Sequence[E]) Sequence[E] {
	return &concatSeq[E]{head: head, tail: tail}
}

type concatSeq[E any] struct {
	head Sequence[E]
	tail Sequence[E]
}

func (s *concatSeq[E]) Advance(yield func(E)) bool {
	if s.head != nil {
		if e, ok := pullOne(s.head); ok {
			yield(e)
			return true
		}
		s.head = nil
	}
	e, ok := pullOne(s.tail)
	if !ok {
		return false
	}
	yield(e)
	return true
}

func (s *concatSeq[E]) Split() Sequence[E] {
	if s.head == nil {
		return s.tail.Split()
	}
	head := s.head
	s.head = nil
	return head
}

func (s *concatSeq[E]) Size() int64 {
	if s.head == nil {
		return s.tail.Size()
	}
	return addSize(s.head.Size(), s.tail.Size())
}

func (s *concatSeq[E]) Props() Props {
	if s.head == nil {
		return s.tail.Props()
	}
	return s.head.Props().Intersect(s.tail.Props()).WithoutSorted().WithoutDistinct()
}
