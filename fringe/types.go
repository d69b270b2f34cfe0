package fringe

import "errors"

// ErrEmptyFringe is the panic value raised by Pop and Peek on an empty container.
var ErrEmptyFringe = errors.New("fringe: pop from empty container")

// Container is the read side shared by Stack, Queue and PriorityQueue.
type Container[T any] interface {
	Pop() T
	IsEmpty() bool
	Len() int
}

var (
	_ Container[int] = (*Stack[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
	_ Container[int] = (*PriorityQueue[int])(nil)
)
