package emap

import "iter"

// All returns an iterator over the occupied (key, value) pairs in ascending
// key order.
//
// Each range over the returned sequence scans the Map as it is at that
// moment, so the sequence can be reused after the Map changes.
//
// The loop body may insert or remove keys. Slots ahead of the current key
// are yielded as they are when the scan reaches them, and a key that stays
// occupied is never skipped.
//
// While the body leaves occupancy alone, the scan ends as soon as every
// occupied slot has been yielded. Once the body occupies or vacates a slot
// the count no longer bounds the tail, and the scan runs to the last slot.
func (m *Map[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		remaining := m.filled
		exact := true

		for i := 0; i < len(m.items) && (!exact || remaining > 0); i++ {
			slot := &m.items[i]
			if !slot.occupied {
				continue
			}

			remaining--

			gen := m.gen
			if !yield(i, slot.value) {
				return
			}

			if m.gen != gen {
				exact = false
			}
		}
	}
}

// Keys returns an iterator over the occupied keys in ascending order.
func (m *Map[V]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for key := range m.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values in ascending key order.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// Find returns the first occupied pair, in ascending key order, for which
// match returns true.
func (m *Map[V]) Find(match func(key int, value V) bool) (int, V, bool) {
	for key, value := range m.All() {
		if match(key, value) {
			return key, value, true
		}
	}

	var zero V

	return 0, zero, false
}
