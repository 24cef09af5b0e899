package pull_test

import (
	"testing"

	"github.com/teenjuna/pull"
	"github.com/teenjuna/pull/internal/testing/require"
	"github.com/teenjuna/pull/internal/testing/seqtest"
)

func TestAccumulate(t *testing.T) {
	add := func(acc, e int) int { return acc + e }

	s := pull.Accumulate(pull.From([]int{1, 1, 1, 1, 1}), add)
	require.Equal(t, int64(5), s.Size())
	require.Equal(t, "ordered|sized", s.Props().String())
	require.Equal(t, []int{1, 2, 3, 4, 5}, seqtest.Drain(t, s))

	s = pull.Accumulate(pull.Empty[int](), add)
	require.Equal(t, []int{}, seqtest.Drain(t, s))
}

func TestAccumulateOrderSensitive(t *testing.T) {
	concat := func(acc, e string) string { return acc + e }

	s := pull.Accumulate(pull.Of("a", "b", "c"), concat)
	require.Equal(t, []string{"a", "ab", "abc"}, seqtest.Drain(t, s))
}

func TestAccumulateSplit(t *testing.T) {
	add := func(acc, e int) int { return acc + e }

	// Each half reduces on its own; the receiver's run restarts at the
	// boundary.
	s := pull.Accumulate(pull.From([]int{1, 1, 1, 1}), add)
	half := s.Split()
	require.NotNil(t, half)
	require.Equal(t, []int{1, 2}, seqtest.Drain(t, half))
	require.Equal(t, []int{1, 2}, seqtest.Drain(t, s))
}

func TestAccumulateEntries(t *testing.T) {
	add := func(acc, v int) int { return acc + v }

	s := pull.AccumulateEntries(pull.Of(
		pull.Entry[string, int]{Key: "a", Value: 1},
		pull.Entry[string, int]{Key: "b", Value: 2},
		pull.Entry[string, int]{Key: "c", Value: 3},
	), add)

	require.Equal(t, []pull.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 3},
		{Key: "c", Value: 6},
	}, seqtest.Drain(t, s))
}

func TestAccumulatePanics(t *testing.T) {
	add := func(acc, e int) int { return acc + e }

	require.PanicWithError(t, "source can't be nil", func() {
		pull.Accumulate[int](nil, add)
	})

	require.PanicWithError(t, "op can't be nil", func() {
		pull.Accumulate(pull.Of(1), nil)
	})

	require.PanicWithError(t, "source must be ordered", func() {
		pull.Accumulate(unordered(pull.Of(1)), add)
	})

	require.PanicWithError(t, "op can't be nil", func() {
		pull.AccumulateEntries[string, int](pull.Empty[pull.Entry[string, int]](), nil)
	})
}
