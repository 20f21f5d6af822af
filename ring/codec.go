// codec.go
//
// JSON snapshot of the logical contents:
//
//	{"capacity":5,"items":[30,40,50,60]}
//
// Items are oldest first.  Physical slot positions are not preserved; a
// decoded ring starts at tail 0.

package ring

import (
	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
)

type snapshot[T any] struct {
	Capacity int `json:"capacity"`
	Items    []T `json:"items"`
}

// MarshalJSON encodes the capacity and the logical elements.
func (r *Ring[T]) MarshalJSON() ([]byte, error) {
	return sonnet.Marshal(snapshot[T]{Capacity: len(r.buf), Items: r.Slice()})
}

// UnmarshalJSON replaces the ring's contents with a decoded snapshot.  On
// error the receiver is left unchanged.
func (r *Ring[T]) UnmarshalJSON(data []byte) error {
	var s snapshot[T]
	if err := sonnet.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "ring: decode snapshot")
	}
	if s.Capacity < 1 {
		return errors.Wrapf(ErrInvalidCapacity, "ring: snapshot capacity %d", s.Capacity)
	}
	if len(s.Items) > s.Capacity {
		return errors.Wrapf(ErrSnapshotOverflow, "ring: %d items, capacity %d", len(s.Items), s.Capacity)
	}
	buf := make([]slot[T], s.Capacity)
	for i, v := range s.Items {
		buf[i] = slot[T]{val: v, ok: true}
	}
	r.buf = buf
	r.tail = 0
	r.count = len(s.Items)
	r.head = r.count % s.Capacity
	r.gen++
	return nil
}
