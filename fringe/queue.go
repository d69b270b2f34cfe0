package fringe

// compactThreshold is the minimum number of consumed slots before Pop
// shifts live items back to the front of the backing slice.
const compactThreshold = 64

// Queue is a FIFO container. The zero value is ready to use.
//
// Items live in items[head:]. Popped slots are zeroed and reclaimed once they
// make up at least half of the backing slice.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push enqueues item at the back.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop dequeues the earliest pushed item.
// Panics with ErrEmptyFringe if the queue is empty.
func (q *Queue[T]) Pop() T {
	if q.head == len(q.items) {
		panic(ErrEmptyFringe)
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// drained: reuse the whole backing array
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() T {
	if q.head == len(q.items) {
		panic(ErrEmptyFringe)
	}

	return q.items[q.head]
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.head == len(q.items) }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }
