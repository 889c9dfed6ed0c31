// Package heap provides a generic, array-backed binary heap ordered by
// a caller-supplied comparison function.
//
// The heap is a complete binary tree flattened into a slice: the
// children of items[i] live at items[2i+1] and items[2i+2]. The heap
// owns its backing slice exclusively; values are copied in and out,
// never referenced externally. Every node compares less-or-equal to
// its children under the supplied less function, so Pop always yields
// the minimum. A max-heap is just a min-heap with the comparison
// inverted:
//
//	min := heap.New(func(a, b int) bool { return a < b })
//	max := heap.New(func(a, b int) bool { return a > b })
//
// Bulk construction uses Floyd's method: Heapify sifts down from the
// last non-leaf index to the root, never sifting up, which makes it
// O(n) rather than the O(n log n) of repeated Push.
//
// Ties: when two elements compare equal, either may be returned first.
// No stability guarantee is made.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len: O(1)
//   - Heapify:   O(n)
//
// The heap is a plain mutable structure with no internal locking;
// concurrent use without external synchronization is undefined.
//
// Errors:
//
//	ErrEmptyHeap – Pop or Peek on an empty heap.
package heap
