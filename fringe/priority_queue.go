package fringe

import "container/heap"

// entry is one PriorityQueue slot. seq breaks ties between equal priorities
// so that earlier pushes pop first; index is maintained by entryHeap.Swap
// for heap.Fix.
type entry[T comparable] struct {
	item     T
	priority float64
	seq      uint64
	index    int
}

// entryHeap is a min-heap of *entry ordered by (priority, seq).
type entryHeap[T comparable] []*entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries and keeps their index fields in sync.
func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x; called by heap.Push only.
func (h *entryHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes the last entry; called by heap.Pop only.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// PriorityQueue pops the item with the numerically lowest priority.
// Items with equal priority pop in insertion order. The zero value is ready to use.
type PriorityQueue[T comparable] struct {
	heap  entryHeap[T]
	count uint64
}

// NewPriorityQueue returns an empty PriorityQueue with room for capacity items.
func NewPriorityQueue[T comparable](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: make(entryHeap[T], 0, capacity)}
}

// Push inserts item with the given priority. O(log n).
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.heap, &entry[T]{item: item, priority: priority, seq: pq.count})
	pq.count++
}

// Pop removes and returns the item with the lowest (priority, seq) key.
// Panics with ErrEmptyFringe if the queue is empty.
func (pq *PriorityQueue[T]) Pop() T {
	item, _ := pq.PopWithPriority()

	return item
}

// PopWithPriority is Pop that also reports the popped item's priority.
func (pq *PriorityQueue[T]) PopWithPriority() (T, float64) {
	if len(pq.heap) == 0 {
		panic(ErrEmptyFringe)
	}
	e := heap.Pop(&pq.heap).(*entry[T])

	return e.item, e.priority
}

// Peek returns the head item and its priority without removing it.
func (pq *PriorityQueue[T]) Peek() (T, float64) {
	if len(pq.heap) == 0 {
		panic(ErrEmptyFringe)
	}

	return pq.heap[0].item, pq.heap[0].priority
}

// Update lowers the priority of an item already in the queue.
//
// The first entry equal to item (in heap order) is located by linear scan.
// If its priority is higher than priority, it is lowered in place and the
// heap is repaired; its insertion sequence is kept. If its priority is already
// lower or equal, nothing changes. If item is absent it is pushed.
// O(n) for the scan plus O(log n) for the repair.
func (pq *PriorityQueue[T]) Update(item T, priority float64) {
	for _, e := range pq.heap {
		if e.item != item {
			continue
		}
		if e.priority > priority {
			e.priority = priority
			heap.Fix(&pq.heap, e.index)
		}

		return
	}
	pq.Push(item, priority)
}

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.heap) == 0 }

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.heap) }
