package search

import "github.com/katalvlaran/lvsearch/fringe"

// frontier adapts the three fringe containers to one push signature.
// Stack and Queue ignore the priority.
type frontier[S comparable] interface {
	push(n *Node[S], priority float64)
	pop() *Node[S]
	isEmpty() bool
	len() int
}

type lifo[S comparable] struct{ s fringe.Stack[*Node[S]] }

func (f *lifo[S]) push(n *Node[S], _ float64) { f.s.Push(n) }
func (f *lifo[S]) pop() *Node[S]              { return f.s.Pop() }
func (f *lifo[S]) isEmpty() bool              { return f.s.IsEmpty() }
func (f *lifo[S]) len() int                   { return f.s.Len() }

type fifo[S comparable] struct{ q fringe.Queue[*Node[S]] }

func (f *fifo[S]) push(n *Node[S], _ float64) { f.q.Push(n) }
func (f *fifo[S]) pop() *Node[S]              { return f.q.Pop() }
func (f *fifo[S]) isEmpty() bool              { return f.q.IsEmpty() }
func (f *fifo[S]) len() int                   { return f.q.Len() }

// lowest holds *Node pointers; pointer identity keeps entries comparable
// even though Node carries a slice.
type lowest[S comparable] struct{ pq fringe.PriorityQueue[*Node[S]] }

func (f *lowest[S]) push(n *Node[S], priority float64) { f.pq.Push(n, priority) }
func (f *lowest[S]) pop() *Node[S]                     { return f.pq.Pop() }
func (f *lowest[S]) isEmpty() bool                     { return f.pq.IsEmpty() }
func (f *lowest[S]) len() int                          { return f.pq.Len() }
