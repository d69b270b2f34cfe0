package fringe_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/fringe"
)

// BenchmarkPriorityQueue_PushPop pushes N random priorities then drains them.
// Complexity: O(N log N) per iteration.
func BenchmarkPriorityQueue_PushPop(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))
	prio := make([]float64, N)
	for i := range prio {
		prio[i] = r.Float64() * 100
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq := fringe.NewPriorityQueue[int](N)
		for j, p := range prio {
			pq.Push(j, p)
		}
		for !pq.IsEmpty() {
			_ = pq.Pop()
		}
	}
}

// BenchmarkQueue_PushPop interleaves pushes and pops to exercise compaction.
func BenchmarkQueue_PushPop(b *testing.B) {
	const N = 10000
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var q fringe.Queue[int]
		for j := 0; j < N; j++ {
			q.Push(j)
			q.Push(j)
			_ = q.Pop()
		}
	}
}
