package frontier

import (
	"container/heap"
	"fmt"
)

// Kind selects the expansion order of a Frontier.
type Kind int

const (
	// LIFO pops the most recently pushed item.
	LIFO Kind = iota
	// FIFO pops the earliest pushed item.
	FIFO
	// MinCost pops the cheapest item, most recent first among equals.
	MinCost
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	case MinCost:
		return "min-cost"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Frontier is an open list of pending search items.
type Frontier[T any] struct {
	kind Kind

	// LIFO/FIFO storage; head is the FIFO read offset.
	items []T
	head  int

	// MinCost storage.
	pq  costPQ[T]
	seq uint64
}

// New returns an empty Frontier of the given kind.
// Panics on a kind other than LIFO, FIFO or MinCost.
func New[T any](kind Kind) *Frontier[T] {
	if kind != LIFO && kind != FIFO && kind != MinCost {
		panic(fmt.Sprintf("frontier: New(%s): unknown kind", kind))
	}

	return &Frontier[T]{kind: kind}
}

// Kind reports the expansion order chosen at construction.
func (f *Frontier[T]) Kind() Kind { return f.kind }

// Push adds item with the given cumulative cost.
func (f *Frontier[T]) Push(item T, cost int64) {
	if f.kind == MinCost {
		f.seq++
		heap.Push(&f.pq, &costItem[T]{item: item, cost: cost, seq: f.seq})
		return
	}
	f.items = append(f.items, item)
}

// Pop removes and returns the next item according to Kind.
// ok is false when the frontier is empty.
func (f *Frontier[T]) Pop() (item T, ok bool) {
	switch f.kind {
	case MinCost:
		if f.pq.Len() == 0 {
			return item, false
		}
		return heap.Pop(&f.pq).(*costItem[T]).item, true

	case LIFO:
		n := len(f.items)
		if n == 0 {
			return item, false
		}
		item = f.items[n-1]
		f.items[n-1] = *new(T) // release reference
		f.items = f.items[:n-1]
		return item, true

	default: // FIFO
		if f.head == len(f.items) {
			return item, false
		}
		item = f.items[f.head]
		f.items[f.head] = *new(T)
		f.head++
		// reclaim the consumed prefix once it dominates the slice
		if f.head > 32 && f.head*2 >= len(f.items) {
			f.items = append(f.items[:0], f.items[f.head:]...)
			f.head = 0
		}
		return item, true
	}
}

// Len returns the number of pending items.
func (f *Frontier[T]) Len() int {
	if f.kind == MinCost {
		return f.pq.Len()
	}

	return len(f.items) - f.head
}

// Empty reports whether no items are pending.
func (f *Frontier[T]) Empty() bool { return f.Len() == 0 }

// costItem is one heap entry: the payload, its cumulative cost and push stamp.
type costItem[T any] struct {
	item T
	cost int64
	seq  uint64
}

// costPQ is a min-heap of *costItem ordered by cost asc, then seq desc.
// Stale entries are never removed eagerly; consumers skip them on pop.
type costPQ[T any] []*costItem[T]

// Len returns the number of items in the heap.
func (pq costPQ[T]) Len() int { return len(pq) }

// Less orders by cost, newest push first among equal costs.
func (pq costPQ[T]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq > pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq costPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *costPQ[T]) Push(x interface{}) { *pq = append(*pq, x.(*costItem[T])) }

// Pop removes the last element; called by heap.Pop.
func (pq *costPQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
