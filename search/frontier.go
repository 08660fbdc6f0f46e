package search

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"
)

// Frontier is an ordering discipline over discovered-but-unexpanded items.
// The key is only meaningful to priority frontiers; stack and queue ignore it.
type Frontier[T any] interface {
	// Push inserts item with the given priority key.
	Push(item T, key float64)
	// Pop removes and returns the next item; ok is false when empty.
	Pop() (item T, ok bool)
	// Len returns the number of items held.
	Len() int
}

// stackFrontier serves the most recently pushed item first (LIFO).
type stackFrontier[T any] struct {
	s *stack.Stack[T]
}

// NewStackFrontier returns an empty LIFO frontier.
func NewStackFrontier[T any]() Frontier[T] {
	return &stackFrontier[T]{s: stack.New[T]()}
}

func (f *stackFrontier[T]) Push(item T, _ float64) { f.s.Push(item) }

func (f *stackFrontier[T]) Pop() (T, bool) {
	if f.s.Size() == 0 {
		var zero T
		return zero, false
	}
	return f.s.Pop(), true
}

func (f *stackFrontier[T]) Len() int { return f.s.Size() }

// queueFrontier serves the least recently pushed item first (FIFO).
// queue.Queue has no size accessor, so the count is tracked here.
type queueFrontier[T any] struct {
	q *queue.Queue[T]
	n int
}

// NewQueueFrontier returns an empty FIFO frontier.
func NewQueueFrontier[T any]() Frontier[T] {
	return &queueFrontier[T]{q: queue.New[T]()}
}

func (f *queueFrontier[T]) Push(item T, _ float64) {
	f.q.Enqueue(item)
	f.n++
}

func (f *queueFrontier[T]) Pop() (T, bool) {
	if f.q.Empty() {
		var zero T
		return zero, false
	}
	f.n--
	return f.q.Dequeue(), true
}

func (f *queueFrontier[T]) Len() int { return f.n }

// prioEntry pairs an item with its key and insertion sequence number.
type prioEntry[T any] struct {
	item T
	key  float64
	seq  uint64
}

// priorityFrontier serves the smallest key first; equal keys are served in
// insertion order, which the underlying binary heap does not guarantee alone.
type priorityFrontier[T any] struct {
	h   *heap.Heap[prioEntry[T]]
	seq uint64
}

// NewPriorityFrontier returns an empty min-key frontier with FIFO tie-breaking.
func NewPriorityFrontier[T any]() Frontier[T] {
	return &priorityFrontier[T]{
		h: heap.New(func(a, b prioEntry[T]) bool {
			if a.key != b.key {
				return a.key < b.key
			}
			return a.seq < b.seq
		}),
	}
}

func (f *priorityFrontier[T]) Push(item T, key float64) {
	f.h.Push(prioEntry[T]{item: item, key: key, seq: f.seq})
	f.seq++
}

func (f *priorityFrontier[T]) Pop() (T, bool) {
	e, ok := f.h.Pop()
	return e.item, ok
}

func (f *priorityFrontier[T]) Len() int { return f.h.Size() }
