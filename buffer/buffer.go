package buffer

import "iter"

// Buffer is an in-memory container for elements accumulated by a sequence
// adapter between emissions.
//
// Implementations are not considered thread-safe and each instance is owned by a
// single adapter.
type Buffer[Item any] interface {
	// Push adds an item to the buffer.
	Push(item Item)
	// Size returns the number of items currently held.
	Size() int
	// Pushes returns the number of pushes made to buffer, which can be different if the buffer
	// evicts or aggregates on pushes.
	Pushes() int
	// Iter returns a sequence of all held items in emission order.
	Iter() iter.Seq[Item]
	// Reset clears all items from the buffer.
	Reset()
	// Derive returns a new buffer instance with the same settings.
	//
	// The returned buffer maintains its own internal state independent of the original.
	Derive() Buffer[Item]
}
