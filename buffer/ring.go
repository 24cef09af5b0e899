package buffer

import "iter"

var _ Buffer[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity circular buffer with monotonically increasing
// read and write cursors, indexed modulo the capacity. Windowing adapters size
// it one slot larger than the window width so that a full and an empty buffer
// stay distinguishable.
type RingBuffer[Item any] struct {
	items  []Item
	read   int
	write  int
	pushes int
}

func Ring[Item any](capacity int) *RingBuffer[Item] {
	if capacity < 1 {
		panic("capacity can't be < 1")
	}
	return &RingBuffer[Item]{
		items: make([]Item, capacity),
	}
}

func (b *RingBuffer[Item]) Push(item Item) {
	if b.write-b.read == len(b.items) {
		panic("ring is full")
	}
	b.items[b.write%len(b.items)] = item
	b.write++
	b.pushes++
}

func (b *RingBuffer[Item]) Size() int {
	return b.write - b.read
}

func (b *RingBuffer[Item]) Pushes() int {
	return b.pushes
}

func (b *RingBuffer[Item]) Iter() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i := b.read; i < b.write; i++ {
			if !yield(b.items[i%len(b.items)]) {
				return
			}
		}
	}
}

// Window copies the first n unread items without consuming them. It panics if
// fewer than n items are held.
func (b *RingBuffer[Item]) Window(n int) []Item {
	if n > b.Size() {
		panic("ring holds fewer items than requested")
	}
	window := make([]Item, n)
	for i := range n {
		window[i] = b.items[(b.read+i)%len(b.items)]
	}
	return window
}

// Skip consumes the first n unread items by advancing the read cursor. It
// panics if fewer than n items are held.
func (b *RingBuffer[Item]) Skip(n int) {
	if n > b.Size() {
		panic("ring holds fewer items than requested")
	}
	b.read += n
}

func (b *RingBuffer[Item]) Reset() {
	clear(b.items)
	b.read = 0
	b.write = 0
}

func (b *RingBuffer[Item]) Derive() Buffer[Item] {
	return Ring[Item](len(b.items))
}
