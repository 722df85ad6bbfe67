package emap

// Slot is a single storage cell of a [Map].
//
// The zero Slot is vacant. value is only meaningful while occupied is true;
// a vacant slot always holds the zero value of V.
type Slot[V any] struct {
	value    V
	occupied bool
}

// Put stores v and marks the slot occupied, replacing any previous value.
func (s *Slot[V]) Put(v V) {
	s.value = v
	s.occupied = true
}

// Get returns the stored value and true, or the zero value and false if the
// slot is vacant.
func (s *Slot[V]) Get() (V, bool) {
	if !s.occupied {
		var zero V

		return zero, false
	}

	return s.value, true
}

// Ptr returns a pointer to the stored value, or nil if the slot is vacant.
//
// The pointer is valid until the slot is cleared.
func (s *Slot[V]) Ptr() *V {
	if !s.occupied {
		return nil
	}

	return &s.value
}

// Occupied reports whether the slot holds a value.
func (s *Slot[V]) Occupied() bool {
	return s.occupied
}

// Clear marks the slot vacant and drops the stored value.
func (s *Slot[V]) Clear() {
	var zero V

	s.value = zero
	s.occupied = false
}
