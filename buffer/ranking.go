package buffer

import (
	"iter"
	"slices"
)

var _ Buffer[int] = (*RankingBuffer[int])(nil)

// RankingBuffer keeps the items with the largest keys seen so far, bounded by
// a capacity of distinct keys. Keys are comparator-equivalence classes: two
// items with cmp == 0 share one key. Retained keys are held in strictly
// decreasing order; a pushed item whose key ranks below every retained key in
// a full buffer is discarded, and a strictly greater one evicts the smallest
// retained key.
//
// With ties enabled, every pushed item equal to a retained key is kept and
// emitted after its key's earlier arrivals, so a tied boundary key is never
// split. Without ties, only the first-seen item of each key is kept.
type RankingBuffer[Item any] struct {
	capacity int
	cmp      func(Item, Item) int
	ties     bool
	keys     []Item
	values   [][]Item
	pushes   int
}

func Ranking[Item any](capacity int, cmp func(Item, Item) int, ties bool) *RankingBuffer[Item] {
	if capacity < 1 {
		panic("capacity can't be < 1")
	}
	if cmp == nil {
		panic("comparator can't be nil")
	}
	return &RankingBuffer[Item]{
		capacity: capacity,
		cmp:      cmp,
		ties:     ties,
		keys:     make([]Item, 0, capacity),
		values:   make([][]Item, 0, capacity),
	}
}

func (b *RankingBuffer[Item]) Push(item Item) {
	b.pushes++

	for i, key := range b.keys {
		switch c := b.cmp(item, key); {
		case c == 0:
			if b.ties {
				b.values[i] = append(b.values[i], item)
			}
			return
		case c > 0:
			b.keys = slices.Insert(b.keys, i, item)
			b.values = slices.Insert(b.values, i, []Item{item})
			b.trim()
			return
		}
	}

	if len(b.keys) < b.capacity {
		b.keys = append(b.keys, item)
		b.values = append(b.values, []Item{item})
	}
}

func (b *RankingBuffer[Item]) trim() {
	if len(b.keys) > b.capacity {
		b.keys = b.keys[:b.capacity]
		b.values = b.values[:b.capacity]
	}
}

func (b *RankingBuffer[Item]) Size() int {
	size := 0
	for _, values := range b.values {
		size += len(values)
	}
	return size
}

func (b *RankingBuffer[Item]) Pushes() int {
	return b.pushes
}

// Iter yields the retained items in decreasing key order; items sharing a key
// keep their arrival order.
func (b *RankingBuffer[Item]) Iter() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, values := range b.values {
			for _, item := range values {
				if !yield(item) {
					return
				}
			}
		}
	}
}

func (b *RankingBuffer[Item]) Reset() {
	b.keys = b.keys[:0]
	b.values = b.values[:0]
}

func (b *RankingBuffer[Item]) Derive() Buffer[Item] {
	return Ranking(b.capacity, b.cmp, b.ties)
}
