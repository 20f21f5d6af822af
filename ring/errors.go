package ring

import "github.com/pkg/errors"

var (
	// ErrInvalidCapacity is returned (or, from New, panicked) for a
	// capacity below one.
	ErrInvalidCapacity = errors.New("ring: capacity must be at least 1")

	// ErrSnapshotOverflow rejects a JSON snapshot holding more items than
	// its declared capacity.
	ErrSnapshotOverflow = errors.New("ring: snapshot items exceed capacity")
)
