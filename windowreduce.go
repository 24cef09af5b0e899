package pull

import "golang.org/x/exp/constraints"

// WindowReduce rolls a window of width consecutive elements over the ordered
// source, as [Roll] does, and emits reduce(window) for every window position.
// It panics if source or reduce is nil, width is below 2, or the source is
// not ordered.
func WindowReduce[E, R any](source Sequence[E], width int, reduce func([]E) R) Sequence[R] {
	windows := Roll(source, width)
	if reduce == nil {
		panic("reduce can't be nil")
	}
	return &windowReduceSeq[E, R]{windows: windows, reduce: reduce}
}

type windowReduceSeq[E, R any] struct {
	windows Sequence[[]E]
	reduce  func([]E) R
}

func (s *windowReduceSeq[E, R]) Advance(yield func(R)) bool {
	window, ok := pullOne(s.windows)
	if !ok {
		return false
	}
	yield(s.reduce(window))
	return true
}

func (s *windowReduceSeq[E, R]) Split() Sequence[R] {
	half := s.windows.Split()
	if half == nil {
		return nil
	}
	return &windowReduceSeq[E, R]{windows: half, reduce: s.reduce}
}

func (s *windowReduceSeq[E, R]) Size() int64 {
	return s.windows.Size()
}

func (s *windowReduceSeq[E, R]) Props() Props {
	return s.windows.Props()
}

type number interface {
	constraints.Integer | constraints.Float
}

// WindowSum emits the sum of every rolling window of width consecutive
// elements. Same preconditions as [WindowReduce].
func WindowSum[E number](source Sequence[E], width int) Sequence[E] {
	return WindowReduce(source, width, func(window []E) E {
		var sum E
		for _, e := range window {
			sum += e
		}
		return sum
	})
}

// WindowAverage emits the arithmetic mean of every rolling window of width
// consecutive elements. Same preconditions as [WindowReduce].
func WindowAverage[E number](source Sequence[E], width int) Sequence[float64] {
	return WindowReduce(source, width, func(window []E) float64 {
		var sum float64
		for _, e := range window {
			sum += float64(e)
		}
		return sum / float64(len(window))
	})
}
