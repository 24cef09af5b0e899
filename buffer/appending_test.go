package buffer_test

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/teenjuna/pull/buffer"
	"github.com/teenjuna/pull/internal/testing/require"
)

var _ buffer.Buffer[any] = (*buffer.AppendingBuffer[any])(nil)

func TestAppendingBuffer(t *testing.T) {
	type Item struct {
		ID string
		N1 int
		N2 int
	}

	var input []Item
	for i := range 1000 {
		input = append(input, Item{
			ID: strconv.Itoa(i),
			N1: rand.IntN(1000),
			N2: rand.IntN(1000),
		})
	}

	buffer := buffer.Appending[Item]()
	require.Equal(t, buffer.Size(), 0)

	for i, item := range input {
		buffer.Push(item)
		require.Equal(t, buffer.Size(), i+1)
	}

	items := slices.Collect(buffer.Iter())
	require.Equal(t, len(items), buffer.Size())
	require.Equal(t, buffer.Pushes(), len(input))
	require.Equal(t, items, input)

	buffer.Reset()

	items = slices.Collect(buffer.Iter())
	require.Equal(t, buffer.Size(), 0)
	require.Equal(t, len(items), 0)
}

func TestAppendingBufferTake(t *testing.T) {
	buffer := buffer.Appending[string]()
	buffer.Push("one")
	buffer.Push("two")

	taken := buffer.Take()
	require.Equal(t, taken, []string{"one", "two"})
	require.Equal(t, buffer.Size(), 0)

	// The taken slice must survive pushes made after the swap.
	buffer.Push("three")
	require.Equal(t, taken, []string{"one", "two"})
	require.Equal(t, slices.Collect(buffer.Iter()), []string{"three"})
}

func TestAppendingBufferDerive(t *testing.T) {
	original := buffer.Appending[int]()
	original.Push(1)

	derived := original.Derive()
	require.Equal(t, derived.Size(), 0)

	derived.Push(2)
	derived.Push(3)
	require.Equal(t, original.Size(), 1)
	require.Equal(t, derived.Size(), 2)
}
