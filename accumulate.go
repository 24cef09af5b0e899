package pull

// Entry pairs a key with a value for the keyed adapters.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Accumulate emits the running left-to-right reduction of the source: the
// first element passes through unchanged and seeds the accumulator, and every
// later element e is emitted as acc = op(acc, e). No associativity is assumed;
// the reduction is strictly order-sensitive, which is why the source must be
// ordered. It panics if the source or op is nil or the source is not ordered.
func Accumulate[E any](source Sequence[E], op func(acc, e E) E) Sequence[E] {
	requireSource(source)
	if op == nil {
		panic("op can't be nil")
	}
	requireOrdered(source)
	return &accumulateSeq[E]{source: source, op: op}
}

type accumulateSeq[E any] struct {
	source  Sequence[E]
	op      func(E, E) E
	acc     E
	started bool
}

func (s *accumulateSeq[E]) Advance(yield func(E)) bool {
	e, ok := pullOne(s.source)
	if !ok {
		return false
	}
	if !s.started {
		s.started = true
		s.acc = e
	} else {
		s.acc = s.op(s.acc, e)
	}
	yield(s.acc)
	return true
}

// Split wraps the source half in a fresh adapter with no accumulator state,
// so splitting restarts the reduction at the boundary and changes observable
// results.
func (s *accumulateSeq[E]) Split() Sequence[E] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return Accumulate(half, s.op)
}

func (s *accumulateSeq[E]) Size() int64 {
	return s.source.Size()
}

func (s *accumulateSeq[E]) Props() Props {
	return s.source.Props().WithoutSorted().WithoutDistinct()
}

// AccumulateEntries applies the running reduction of [Accumulate] to the
// value half of key/value entries, re-emitting each entry with its own key
// and the running value. It panics if the source or op is nil or the source
// is not ordered.
func AccumulateEntries[K, V any](source Sequence[Entry[K, V]], op func(acc, v V) V) Sequence[Entry[K, V]] {
	requireSource(source)
	if op == nil {
		panic("op can't be nil")
	}
	requireOrdered(source)
	return &entriesSeq[K, V]{source: source, op: op}
}

type entriesSeq[K, V any] struct {
	source  Sequence[Entry[K, V]]
	op      func(V, V) V
	acc     V
	started bool
}

func (s *entriesSeq[K, V]) Advance(yield func(Entry[K, V])) bool {
	e, ok := pullOne(s.source)
	if !ok {
		return false
	}
	if !s.started {
		s.started = true
		s.acc = e.Value
	} else {
		s.acc = s.op(s.acc, e.Value)
	}
	yield(Entry[K, V]{Key: e.Key, Value: s.acc})
	return true
}

func (s *entriesSeq[K, V]) Split() Sequence[Entry[K, V]] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return AccumulateEntries(half, s.op)
}

func (s *entriesSeq[K, V]) Size() int64 {
	return s.source.Size()
}

func (s *entriesSeq[K, V]) Props() Props {
	return s.source.Props().WithoutSorted().WithoutDistinct()
}
