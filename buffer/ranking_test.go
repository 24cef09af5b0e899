package buffer_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/teenjuna/pull/buffer"
	"github.com/teenjuna/pull/internal/testing/require"
)

var _ buffer.Buffer[string] = (*buffer.RankingBuffer[string])(nil)

func TestRankingBufferKeepsDistinctKeys(t *testing.T) {
	ranking := buffer.Ranking(2, cmp.Compare[string], false)
	for _, s := range []string{"1", "1", "2", "2", "2", "3", "3", "4", "4", "4"} {
		ranking.Push(s)
	}

	require.Equal(t, slices.Collect(ranking.Iter()), []string{"4", "3"})
	require.Equal(t, ranking.Size(), 2)
	require.Equal(t, ranking.Pushes(), 10)
}

func TestRankingBufferKeepsTies(t *testing.T) {
	ranking := buffer.Ranking(2, cmp.Compare[string], true)
	for _, s := range []string{"1", "1", "2", "2", "2", "3", "3", "4", "4", "4"} {
		ranking.Push(s)
	}

	require.Equal(t, slices.Collect(ranking.Iter()), []string{"4", "4", "4", "3", "3"})
	require.Equal(t, ranking.Size(), 5)
}

func TestRankingBufferSingleKeyHoldsAllMaxes(t *testing.T) {
	ranking := buffer.Ranking(1, cmp.Compare[string], true)
	for _, s := range []string{"1", "1", "2", "2", "3", "3"} {
		ranking.Push(s)
	}
	require.Equal(t, slices.Collect(ranking.Iter()), []string{"3", "3"})

	// A maximum seen first survives everything that follows.
	ranking.Reset()
	for _, s := range []string{"4", "1", "1", "2", "2", "3", "3"} {
		ranking.Push(s)
	}
	require.Equal(t, slices.Collect(ranking.Iter()), []string{"4"})
}

func TestRankingBufferInsertsOutOfOrder(t *testing.T) {
	ranking := buffer.Ranking(7, cmp.Compare[string], false)
	for _, s := range []string{"2", "1", "3", "4", "1", "2", "3", "2", "4", "4"} {
		ranking.Push(s)
	}

	require.Equal(t, slices.Collect(ranking.Iter()), []string{"4", "3", "2", "1"})
}

func TestRankingBufferFirstSeenRepresentative(t *testing.T) {
	// Keys are equivalence classes under the comparator: with a length
	// comparator, "aa" and "bb" share one key and the first seen wins.
	byLength := func(a, b string) int { return cmp.Compare(len(a), len(b)) }

	ranking := buffer.Ranking(2, byLength, false)
	for _, s := range []string{"aa", "bb", "c", "ddd"} {
		ranking.Push(s)
	}

	require.Equal(t, slices.Collect(ranking.Iter()), []string{"ddd", "aa"})
}

func TestRankingBufferEvictsValuesWithKey(t *testing.T) {
	ranking := buffer.Ranking(2, cmp.Compare[int], true)
	for _, n := range []int{1, 1, 1, 2, 3} {
		ranking.Push(n)
	}

	// The three 1s fall off together once 2 and 3 outrank their key.
	require.Equal(t, slices.Collect(ranking.Iter()), []int{3, 2})
}

func TestRankingBufferPanics(t *testing.T) {
	require.PanicWithError(t, "capacity can't be < 1", func() {
		buffer.Ranking(0, cmp.Compare[int], false)
	})
	require.PanicWithError(t, "comparator can't be nil", func() {
		buffer.Ranking[int](1, nil, false)
	})
}

func TestRankingBufferDerive(t *testing.T) {
	original := buffer.Ranking(2, cmp.Compare[int], true)
	original.Push(1)

	derived := original.Derive()
	require.Equal(t, derived.Size(), 0)

	derived.Push(2)
	require.Equal(t, original.Size(), 1)
	require.Equal(t, slices.Collect(derived.Iter()), []int{2})
}
