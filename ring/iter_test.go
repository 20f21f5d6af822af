package ring

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestAllOldestFirst iterates a wrapped ring and expects logical order, not
// storage order.
func TestAllOldestFirst(t *testing.T) {
	r := fill(New[int](5), 10, 20, 30, 40, 50, 60, 70)
	if r.tail == 0 {
		t.Fatal("setup: ring should be wrapped")
	}
	if diff := cmp.Diff([]int{30, 40, 50, 60, 70}, slices.Collect(r.All())); diff != "" {
		t.Fatalf("All (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{70, 60, 50, 40, 30}, slices.Collect(r.Backward())); diff != "" {
		t.Fatalf("Backward (-want +got):\n%s", diff)
	}
}

func TestAllEmpty(t *testing.T) {
	r := New[int](3)
	for v := range r.All() {
		t.Fatalf("empty ring yielded %d", v)
	}
	for v := range r.Backward() {
		t.Fatalf("empty ring yielded %d", v)
	}
}

// TestAllEarlyBreak abandons iteration after two elements; the ring must be
// unaffected.
func TestAllEarlyBreak(t *testing.T) {
	r := fill(New[int](4), 1, 2, 3, 4)
	var seen []int
	for v := range r.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if r.Len() != 4 {
		t.Fatalf("len = %d after abandoned iteration", r.Len())
	}
}

// TestAllStopsOnMutation pops mid-iteration; the popped element must never
// be yielded and the iterator must end.
func TestAllStopsOnMutation(t *testing.T) {
	r := fill(New[int](4), 1, 2, 3, 4)
	var seen []int
	for v := range r.All() {
		seen = append(seen, v)
		r.Clear()
	}
	if diff := cmp.Diff([]int{1}, seen); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	r = fill(New[int](4), 1, 2, 3)
	seen = seen[:0]
	for v := range r.Backward() {
		seen = append(seen, v)
		r.Push(9)
	}
	if diff := cmp.Diff([]int{3}, seen); diff != "" {
		t.Fatalf("Backward (-want +got):\n%s", diff)
	}
}

func TestIteratorReusable(t *testing.T) {
	r := fill(New[int](3), 1, 2)
	seq := r.All()
	r.Push(3)
	// A sequence created before a mutation walks the state at range time.
	if diff := cmp.Diff([]int{1, 2, 3}, slices.Collect(seq)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
