package pull

// Validate maps every element of the source through one of two functions:
// ifValid when the predicate holds for the element, ifNotValid otherwise. No
// element is ever skipped. It panics if source or any of the three functions
// is nil.
func Validate[E, R any](source Sequence[E], valid Predicate[E], ifValid, ifNotValid func(E) R) Sequence[R] {
	requireSource(source)
	if valid == nil {
		panic("valid can't be nil")
	}
	if ifValid == nil {
		panic("ifValid can't be nil")
	}
	if ifNotValid == nil {
		panic("ifNotValid can't be nil")
	}
	return &validateSeq[E, R]{source: source, valid: valid, ifValid: ifValid, ifNotValid: ifNotValid}
}

type validateSeq[E, R any] struct {
	source     Sequence[E]
	valid      Predicate[E]
	ifValid    func(E) R
	ifNotValid func(E) R
}

func (s *validateSeq[E, R]) Advance(yield func(R)) bool {
	e, ok := pullOne(s.source)
	if !ok {
		return false
	}
	if s.valid(e) {
		yield(s.ifValid(e))
	} else {
		yield(s.ifNotValid(e))
	}
	return true
}

func (s *validateSeq[E, R]) Split() Sequence[R] {
	half := s.source.Split()
	if half == nil {
		return nil
	}
	return &validateSeq[E, R]{source: half, valid: s.valid, ifValid: s.ifValid, ifNotValid: s.ifNotValid}
}

func (s *validateSeq[E, R]) Size() int64 {
	return s.source.Size()
}

func (s *validateSeq[E, R]) Props() Props {
	return s.source.Props().WithoutSorted().WithoutDistinct()
}
