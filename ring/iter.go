// iter.go
//
// Range-over-func iterators.  Both walk the live store rather than a copy
// and end as soon as the ring is mutated, so an element popped or cleared
// after iteration began is never yielded.  Use Slice for a stable copy.

package ring

import "iter"

// All yields the logical elements oldest to newest.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := r.gen
		for i, j := 0, r.tail; i < r.count; i, j = i+1, r.next(j) {
			if r.gen != gen || !yield(r.buf[j].val) {
				return
			}
		}
	}
}

// Backward yields the logical elements newest to oldest.
func (r *Ring[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := r.gen
		j := r.head
		for i := 0; i < r.count; i++ {
			if j--; j < 0 {
				j = len(r.buf) - 1
			}
			if r.gen != gen || !yield(r.buf[j].val) {
				return
			}
		}
	}
}
