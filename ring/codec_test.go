package ring

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sugawarayuuta/sonnet"
)

func TestMarshalJSON(t *testing.T) {
	r := fill(New[int](5), 10, 20, 30, 40, 50, 60)
	r.Pop()
	b, err := sonnet.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"capacity":5,"items":[30,40,50,60]}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// TestUnmarshalJSON decodes into a ring of a different shape and checks
// contents, cursors and that further pushes behave.
func TestUnmarshalJSON(t *testing.T) {
	r := fill(New[int](2), 1, 2)
	if err := sonnet.Unmarshal([]byte(`{"capacity":4,"items":[7,8,9]}`), r); err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, r)
	if r.Cap() != 4 || r.head != 3 || r.tail != 0 {
		t.Fatalf("cap=%d head=%d tail=%d", r.Cap(), r.head, r.tail)
	}
	r.Push(10)
	r.Push(11)
	if diff := cmp.Diff([]int{8, 9, 10, 11}, r.Slice()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestUnmarshalIntoZeroValue(t *testing.T) {
	var r Ring[string]
	if err := r.UnmarshalJSON([]byte(`{"capacity":2,"items":["a","b"]}`)); err != nil {
		t.Fatal(err)
	}
	if !r.IsFull() || r.head != 0 {
		t.Fatalf("full=%v head=%d", r.IsFull(), r.head)
	}
	r.Push("c")
	if got := r.String(); got != "[b c]" {
		t.Fatalf("String = %q", got)
	}
}

func TestUnmarshalJSONRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"zero capacity", `{"capacity":0,"items":[]}`, ErrInvalidCapacity},
		{"missing capacity", `{"items":[1]}`, ErrInvalidCapacity},
		{"overflow", `{"capacity":1,"items":[1,2]}`, ErrSnapshotOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := fill(New[int](3), 5, 6)
			if err := r.UnmarshalJSON([]byte(tc.in)); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if diff := cmp.Diff([]int{5, 6}, r.Slice()); diff != "" || r.Cap() != 3 {
				t.Fatalf("receiver changed on error (-want +got):\n%s", diff)
			}
		})
	}

	r := New[int](1)
	if err := r.UnmarshalJSON([]byte(`{"capacity":`)); err == nil {
		t.Fatal("truncated input decoded without error")
	}
}

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	src := fill(New[int](3), 1, 2, 3, 4, 5)
	b, err := src.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	dst := New[int](1)
	if err := dst.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(src.Slice(), dst.Slice()); diff != "" || dst.Cap() != src.Cap() {
		t.Fatalf("(-src +dst):\n%s", diff)
	}
}
