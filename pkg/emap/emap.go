package emap

import "fmt"

// Map is a fixed-capacity map from keys in [0, Cap) to values of type V.
//
// Every key has its own [Slot]; the key is the slot position. All single-key
// operations are O(1). A Map must not be copied after first use, because
// copies share slot storage; use [Map.Clone] instead.
//
// [New] is the only way to get a Map with a capacity above zero. The zero
// Map is valid but has capacity 0, so every index is out of range.
type Map[V any] struct {
	items  []Slot[V]
	filled int

	// gen changes whenever a slot becomes occupied or vacant.
	gen uint64
}

// New returns an empty Map with room for keys in [0, n).
//
// The slots are allocated once and never reallocated. New panics if n is
// negative or larger than [MaxCapacity].
func New[V any](n int) *Map[V] {
	if n < 0 || n > MaxCapacity {
		panic(fmt.Errorf("%w: %d (must be in [0, %d])", ErrInvalidCapacity, n, MaxCapacity))
	}

	return &Map[V]{items: make([]Slot[V], n)}
}

// Insert stores value at index.
//
// If the slot was already occupied, the previous value is returned along
// with true and Len is unchanged. Otherwise Insert returns the zero value and
// false, and Len grows by one.
func (m *Map[V]) Insert(index int, value V) (V, bool) {
	slot := m.slot(index)

	prev, replaced := slot.Get()
	if !replaced {
		m.filled++
		m.gen++
	}

	slot.Put(value)

	return prev, replaced
}

// Get returns the value at index and whether the slot is occupied.
func (m *Map[V]) Get(index int) (V, bool) {
	return m.slot(index).Get()
}

// GetPtr returns a pointer to the value at index, or nil if the slot is
// vacant. Writes through the pointer update the stored value in place.
//
// The pointer must not be used after the key is removed or the Map is
// cleared.
func (m *Map[V]) GetPtr(index int) *V {
	return m.slot(index).Ptr()
}

// Contains reports whether index is occupied.
func (m *Map[V]) Contains(index int) bool {
	return m.slot(index).Occupied()
}

// Remove vacates index and returns the value it held.
// Removing a vacant index returns the zero value and false and changes
// nothing.
func (m *Map[V]) Remove(index int) (V, bool) {
	slot := m.slot(index)

	value, ok := slot.Get()
	if !ok {
		return value, false
	}

	slot.Clear()
	m.filled--
	m.gen++

	return value, true
}

// Len returns the number of occupied slots.
func (m *Map[V]) Len() int {
	return m.filled
}

// IsEmpty reports whether no slot is occupied.
func (m *Map[V]) IsEmpty() bool {
	return m.filled == 0
}

// Cap returns the number of slots, which is one past the largest valid key.
func (m *Map[V]) Cap() int {
	return len(m.items)
}

// Clear vacates every slot.
//
// The scan stops as soon as every slot that was occupied has been cleared,
// so clearing a sparsely filled Map only touches its low indices.
func (m *Map[V]) Clear() {
	if m.filled > 0 {
		m.gen++
	}

	for i := 0; m.filled > 0 && i < len(m.items); i++ {
		if m.items[i].occupied {
			m.items[i].Clear()
			m.filled--
		}
	}
}

// NextKey returns the lowest vacant index.
// It returns false if every slot is occupied.
func (m *Map[V]) NextKey() (int, bool) {
	if m.filled == len(m.items) {
		return 0, false
	}

	for i := range m.items {
		if !m.items[i].occupied {
			return i, true
		}
	}

	return 0, false
}

// Push stores value at the lowest vacant index and returns that index.
// It returns false and stores nothing if the Map is full.
func (m *Map[V]) Push(value V) (int, bool) {
	index, ok := m.NextKey()
	if !ok {
		return 0, false
	}

	m.items[index].Put(value)
	m.filled++
	m.gen++

	return index, true
}

// Clone returns an independent copy of m with the same capacity and
// contents. Values are copied by assignment.
func (m *Map[V]) Clone() *Map[V] {
	items := make([]Slot[V], len(m.items))
	copy(items, m.items)

	return &Map[V]{items: items, filled: m.filled}
}

// slot returns the slot for index, panicking with an *IndexError if the
// index is out of range.
func (m *Map[V]) slot(index int) *Slot[V] {
	if index < 0 || index >= len(m.items) {
		panic(&IndexError{Index: index, Capacity: len(m.items)})
	}

	return &m.items[index]
}
