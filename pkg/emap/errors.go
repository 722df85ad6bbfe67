package emap

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by emap panics.
//
// Both are programming errors. They surface as panic values, so callers
// that recover can still match them:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, emap.ErrOutOfRange) {
//	        // ...
//	    }
//	}()
var (
	// ErrOutOfRange indicates an index outside [0, Cap).
	ErrOutOfRange = errors.New("emap: index out of range")

	// ErrInvalidCapacity indicates a negative capacity or one above
	// [MaxCapacity] was passed to [New].
	ErrInvalidCapacity = errors.New("emap: invalid capacity")
)

// IndexError is the panic value for an out-of-range index.
type IndexError struct {
	Index    int
	Capacity int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("emap: index %d out of range [0, %d)", e.Index, e.Capacity)
}

// Unwrap returns [ErrOutOfRange].
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
