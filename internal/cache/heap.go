// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package cache

import "time"

// heapEntry is an element of timeHeap.
type heapEntry[T any] struct {
	key      string
	value    T
	cachedAt time.Time
	seq      uint64 // insertion order, breaks cachedAt ties
	index    int
}

// timeHeap is a min-heap ordered by (cachedAt, seq) with a parallel key index.
// It is not synchronized; the owner holds the lock.
type timeHeap[T any] struct {
	heap  []*heapEntry[T]
	byKey map[string]*heapEntry[T]
	seq   uint64
}

func newTimeHeap[T any]() *timeHeap[T] {
	return &timeHeap[T]{
		heap:  make([]*heapEntry[T], 0),
		byKey: make(map[string]*heapEntry[T]),
	}
}

// put inserts key or refreshes an existing entry's value and timestamp.
func (h *timeHeap[T]) put(key string, value T, at time.Time) {
	h.seq++
	if existing, ok := h.byKey[key]; ok {
		existing.value = value
		existing.cachedAt = at
		existing.seq = h.seq
		h.fix(existing.index)
		return
	}

	entry := &heapEntry[T]{
		key:      key,
		value:    value,
		cachedAt: at,
		seq:      h.seq,
		index:    len(h.heap),
	}
	h.heap = append(h.heap, entry)
	h.byKey[key] = entry
	h.bubbleUp(entry.index)
}

func (h *timeHeap[T]) get(key string) (*heapEntry[T], bool) {
	e, ok := h.byKey[key]
	return e, ok
}

func (h *timeHeap[T]) remove(key string) bool {
	e, ok := h.byKey[key]
	if !ok {
		return false
	}
	h.removeAt(e.index)
	return true
}

// popOldest removes and returns the entry with the smallest (cachedAt, seq).
func (h *timeHeap[T]) popOldest() *heapEntry[T] {
	if len(h.heap) == 0 {
		return nil
	}
	return h.removeAt(0)
}

// popBefore removes every entry cached strictly before t.
func (h *timeHeap[T]) popBefore(t time.Time) int {
	n := 0
	for len(h.heap) > 0 && h.heap[0].cachedAt.Before(t) {
		h.removeAt(0)
		n++
	}
	return n
}

func (h *timeHeap[T]) len() int {
	return len(h.heap)
}

func (h *timeHeap[T]) clear() {
	h.heap = make([]*heapEntry[T], 0)
	h.byKey = make(map[string]*heapEntry[T])
}

func (h *timeHeap[T]) removeAt(i int) *heapEntry[T] {
	last := len(h.heap) - 1
	entry := h.heap[i]
	delete(h.byKey, entry.key)

	if i == last {
		h.heap = h.heap[:last]
		return entry
	}

	h.heap[i] = h.heap[last]
	h.heap[i].index = i
	h.heap = h.heap[:last]
	h.fix(i)
	return entry
}

func (h *timeHeap[T]) less(i, j int) bool {
	a, b := h.heap[i], h.heap[j]
	if a.cachedAt.Equal(b.cachedAt) {
		return a.seq < b.seq
	}
	return a.cachedAt.Before(b.cachedAt)
}

func (h *timeHeap[T]) fix(i int) {
	if h.bubbleUp(i) {
		return
	}
	h.bubbleDown(i)
}

func (h *timeHeap[T]) bubbleUp(i int) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
		moved = true
	}
	return moved
}

func (h *timeHeap[T]) bubbleDown(i int) {
	n := len(h.heap)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *timeHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.heap[i].index = i
	h.heap[j].index = j
}
