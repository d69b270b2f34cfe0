// Package fringe provides the frontier containers that give each search
// strategy its exploration order.
//
// What
//
//   - Stack: last-in-first-out. Drives depth-first exploration.
//   - Queue: first-in-first-out. Drives breadth-first exploration.
//   - PriorityQueue: lowest priority first, ties broken by insertion order.
//     Drives uniform-cost and A* exploration.
//
// All three share the same Push/Pop/IsEmpty shape; PriorityQueue.Push also
// takes the priority.
//
// Determinism
//
//	container/heap gives no stable ordering for equal keys. PriorityQueue
//	therefore orders entries by the composite key (priority, seq), where seq
//	is a counter incremented on every Push. Equal priorities pop in the order
//	they were pushed.
//
// Complexity
//
//   - Stack, Queue: Push and Pop amortized O(1).
//   - PriorityQueue: Push and Pop O(log n), Update O(n).
//
// Errors
//
//   - Pop or Peek on an empty container panics with ErrEmptyFringe.
//     Callers check IsEmpty first.
package fringe
