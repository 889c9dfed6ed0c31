package heap

import "errors"

// ErrEmptyHeap indicates Pop or Peek was called on an empty heap.
var ErrEmptyHeap = errors.New("heap: empty heap")

// LessFunc reports whether a orders strictly before b. It must define
// a total order over the element type.
type LessFunc[T any] func(a, b T) bool

// Heap is an array-backed binary heap. The zero value is not usable;
// construct with New or Heapify.
type Heap[T any] struct {
	items []T
	less  LessFunc[T]
}

// New returns an empty heap ordered by less.
// Complexity: O(1).
func New[T any](less LessFunc[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// Heapify builds a heap from items in O(n) using Floyd's method:
// sift down every non-leaf node from the last one up to the root.
// The input slice is copied, so the heap owns its backing array and
// later mutations of items do not disturb the heap order.
func Heapify[T any](items []T, less LessFunc[T]) *Heap[T] {
	h := &Heap[T]{
		items: append([]T(nil), items...),
		less:  less,
	}
	// Last non-leaf sits at n/2 - 1; everything after it is a leaf
	// and already a valid one-element heap.
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Len returns the number of elements. Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.items) }

// Push inserts v, restoring heap order by sifting it up.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root (the minimum under less): the last
// element replaces the root, the slice shrinks by one, and the new
// root sifts down. Returns ErrEmptyHeap on an empty heap.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyHeap
	}
	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero // drop the stale copy so it can be collected
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// Peek returns the root without removing it, or ErrEmptyHeap.
// Complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// siftUp swaps items[i] with its parent while it orders before it.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown swaps items[i] with its smaller child while out of order.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
