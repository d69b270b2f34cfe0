package fringe_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/fringe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain pops every item from c in order.
func drain[T any](c fringe.Container[T]) []T {
	var out []T
	for !c.IsEmpty() {
		out = append(out, c.Pop())
	}

	return out
}

func TestStack_LIFO(t *testing.T) {
	s := fringe.NewStack[string](0)
	require.True(t, s.IsEmpty())

	s.Push("a")
	s.Push("b")
	s.Push("c")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "c", s.Peek())
	assert.Equal(t, []string{"c", "b", "a"}, drain[string](s))
	assert.True(t, s.IsEmpty())
}

func TestStack_ZeroValueUsable(t *testing.T) {
	var s fringe.Stack[int]
	s.Push(7)
	assert.Equal(t, 7, s.Pop())
	assert.True(t, s.IsEmpty())
}

func TestQueue_FIFO(t *testing.T) {
	q := fringe.NewQueue[int](2)
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, 0, q.Peek())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, drain[int](q))
}

// TestQueue_InterleavedCompaction pushes and pops across the compaction
// threshold and checks order is preserved.
func TestQueue_InterleavedCompaction(t *testing.T) {
	var q fringe.Queue[int]
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 5; i++ {
			require.Equal(t, want, q.Pop())
			want++
		}
	}
	assert.Equal(t, next-want, q.Len())
	for !q.IsEmpty() {
		require.Equal(t, want, q.Pop())
		want++
	}
	assert.Equal(t, next, want)
}

func TestPriorityQueue_LowestFirst(t *testing.T) {
	pq := fringe.NewPriorityQueue[string](0)
	pq.Push("five", 5)
	pq.Push("one", 1)
	pq.Push("three", 3)
	pq.Push("zero", 0)

	head, p := pq.Peek()
	assert.Equal(t, "zero", head)
	assert.Equal(t, 0.0, p)
	assert.Equal(t, []string{"zero", "one", "three", "five"}, drain[string](pq))
}

// TestPriorityQueue_TiesInInsertionOrder checks the (priority, seq) key.
func TestPriorityQueue_TiesInInsertionOrder(t *testing.T) {
	var pq fringe.PriorityQueue[int]
	for i := 0; i < 20; i++ {
		pq.Push(i, float64(i%2)) // evens at 0, odds at 1
	}
	want := []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	assert.Equal(t, want, drain[int](&pq))
}

func TestPriorityQueue_PopWithPriority(t *testing.T) {
	var pq fringe.PriorityQueue[string]
	pq.Push("x", 2.5)
	item, p := pq.PopWithPriority()
	assert.Equal(t, "x", item)
	assert.Equal(t, 2.5, p)
}

func TestPriorityQueue_Update(t *testing.T) {
	t.Run("lowers existing priority", func(t *testing.T) {
		var pq fringe.PriorityQueue[string]
		pq.Push("a", 1)
		pq.Push("b", 5)
		pq.Update("b", 0)
		assert.Equal(t, 2, pq.Len())
		assert.Equal(t, []string{"b", "a"}, drain[string](&pq))
	})

	t.Run("ignores higher priority", func(t *testing.T) {
		var pq fringe.PriorityQueue[string]
		pq.Push("a", 1)
		pq.Push("b", 2)
		pq.Update("a", 10)
		assert.Equal(t, []string{"a", "b"}, drain[string](&pq))
	})

	t.Run("pushes absent item", func(t *testing.T) {
		var pq fringe.PriorityQueue[string]
		pq.Push("a", 1)
		pq.Update("b", 0.5)
		assert.Equal(t, 2, pq.Len())
		assert.Equal(t, []string{"b", "a"}, drain[string](&pq))
	})

	t.Run("keeps insertion sequence on tie", func(t *testing.T) {
		var pq fringe.PriorityQueue[string]
		pq.Push("a", 3)
		pq.Push("b", 1)
		pq.Update("a", 1) // a was pushed first, so it wins the tie
		assert.Equal(t, []string{"a", "b"}, drain[string](&pq))
	})
}

func TestPopEmptyPanics(t *testing.T) {
	assert.PanicsWithValue(t, fringe.ErrEmptyFringe, func() { new(fringe.Stack[int]).Pop() })
	assert.PanicsWithValue(t, fringe.ErrEmptyFringe, func() { new(fringe.Queue[int]).Pop() })
	assert.PanicsWithValue(t, fringe.ErrEmptyFringe, func() { new(fringe.PriorityQueue[int]).Pop() })
	assert.PanicsWithValue(t, fringe.ErrEmptyFringe, func() { new(fringe.PriorityQueue[int]).Peek() })
}
