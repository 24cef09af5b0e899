package buffer

import (
	"iter"
	"slices"
)

var _ Buffer[any] = (*AppendingBuffer[any])(nil)

// AppendingBuffer accumulates items in push order. Segmenting adapters use it
// to build up a segment between boundary elements.
type AppendingBuffer[Item any] struct {
	items  []Item
	pushes int
}

func Appending[Item any]() *AppendingBuffer[Item] {
	return &AppendingBuffer[Item]{
		items: make([]Item, 0),
	}
}

func (b *AppendingBuffer[Item]) Push(item Item) {
	b.items = append(b.items, item)
	b.pushes++
}

func (b *AppendingBuffer[Item]) Size() int {
	return len(b.items)
}

func (b *AppendingBuffer[Item]) Pushes() int {
	return b.pushes
}

func (b *AppendingBuffer[Item]) Iter() iter.Seq[Item] {
	return slices.Values(b.items)
}

// Take hands over the accumulated items and leaves the buffer empty. Unlike
// Reset, the backing storage is swapped out rather than reused, so later
// pushes can't corrupt an emitted segment.
func (b *AppendingBuffer[Item]) Take() []Item {
	items := b.items
	b.items = make([]Item, 0)
	return items
}

func (b *AppendingBuffer[Item]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}

func (b *AppendingBuffer[Item]) Derive() Buffer[Item] {
	return Appending[Item]()
}
