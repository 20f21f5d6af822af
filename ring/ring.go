// ring.go
//
// Fixed-capacity circular buffer with overwrite-oldest semantics.  Once the
// buffer is full, Push silently evicts the oldest element to admit the new
// one; callers that must not lose data check IsFull first.
//
// Fill state is tracked solely by count.  head == tail is ambiguous (it holds
// for both the empty and the full buffer) and is never consulted.
//
// A Ring is owned by a single goroutine.  There are no locks; concurrent use
// needs external synchronisation.

package ring

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// slot is one storage cell.  ok marks logical occupancy; val is reset to
// the zero value whenever the slot is vacated so no stale reference lingers.
type slot[T any] struct {
	val T
	ok  bool
}

// Ring is a bounded FIFO of up to Cap() elements.  Construct with New; the
// zero value is only valid as an UnmarshalJSON target.
type Ring[T comparable] struct {
	buf   []slot[T]
	head  int    // next write position
	tail  int    // oldest element, valid while count > 0
	count int    // logically occupied slots
	gen   uint64 // bumped on every mutation, checked by iterators
}

// New allocates an empty ring with room for capacity elements.  A capacity
// below one is a programming error and panics.
func New[T comparable](capacity int) *Ring[T] {
	if capacity < 1 {
		panic(errors.Wrapf(ErrInvalidCapacity, "ring: new with capacity %d", capacity))
	}
	return &Ring[T]{buf: make([]slot[T], capacity)}
}

// next returns i advanced by one position, wrapping at capacity.
func (r *Ring[T]) next(i int) int {
	if i++; i == len(r.buf) {
		return 0
	}
	return i
}

// Push appends item as the newest element.  On a full ring the oldest
// element is overwritten and lost.
func (r *Ring[T]) Push(item T) {
	if r.count == len(r.buf) {
		r.tail = r.next(r.tail) // evict
	} else {
		r.count++
	}
	r.buf[r.head] = slot[T]{val: item, ok: true}
	r.head = r.next(r.head)
	r.gen++
}

// Pop removes and returns the oldest element.  The boolean is false, and
// the ring untouched, when it is empty.
func (r *Ring[T]) Pop() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	s := r.buf[r.tail]
	r.buf[r.tail] = slot[T]{}
	r.tail = r.next(r.tail)
	r.count--
	r.gen++
	return s.val, true
}

// Peek returns the oldest element without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.tail].val, true
}

// PeekNewest returns the most recently pushed element without removing it.
func (r *Ring[T]) PeekNewest() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	i := r.head - 1
	if i < 0 {
		i = len(r.buf) - 1
	}
	return r.buf[i].val, true
}

func (r *Ring[T]) IsFull() bool  { return r.count == len(r.buf) }
func (r *Ring[T]) IsEmpty() bool { return r.count == 0 }
func (r *Ring[T]) Len() int      { return r.count }
func (r *Ring[T]) Cap() int      { return len(r.buf) }

// Clear drops every element.  Capacity is unchanged.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head, r.tail, r.count = 0, 0, 0
	r.gen++
}

// Contains reports whether an element equal to item is logically present.
// Vacated slots are never consulted.
func (r *Ring[T]) Contains(item T) bool {
	for i, j := 0, r.tail; i < r.count; i, j = i+1, r.next(j) {
		if r.buf[j].val == item {
			return true
		}
	}
	return false
}

// Resize reallocates the ring to n slots, moving the retained elements to
// the front of the new store in oldest-to-newest order.
//
// When n is smaller than Len the oldest excess elements are dropped, the
// same policy Push applies on overflow.  n < 1 yields ErrInvalidCapacity
// and leaves the ring as it was.
func (r *Ring[T]) Resize(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidCapacity, "ring: resize to %d", n)
	}
	keep, start := r.count, r.tail
	if keep > n {
		drop := keep - n
		start = (start + drop) % len(r.buf)
		keep = n
	}
	buf := make([]slot[T], n)
	for i, j := 0, start; i < keep; i, j = i+1, r.next(j) {
		buf[i] = r.buf[j]
	}
	r.buf = buf
	r.tail = 0
	r.count = keep
	r.head = keep % n
	r.gen++
	return nil
}

// ShrinkToFit trims capacity down to Len.  An empty ring shrinks to a
// single slot since capacity never drops below one.
func (r *Ring[T]) ShrinkToFit() {
	if r.count == len(r.buf) {
		return
	}
	_ = r.Resize(max(r.count, 1)) // n >= 1, cannot fail
}

// Slice returns a fresh copy of the logical elements, oldest first.
func (r *Ring[T]) Slice() []T {
	out := make([]T, 0, r.count)
	for i, j := 0, r.tail; i < r.count; i, j = i+1, r.next(j) {
		out = append(out, r.buf[j].val)
	}
	return out
}

// String renders the logical elements as "[a b c]", oldest first.
func (r *Ring[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, j := 0, r.tail; i < r.count; i, j = i+1, r.next(j) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, r.buf[j].val)
	}
	sb.WriteByte(']')
	return sb.String()
}
