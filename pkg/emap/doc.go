// Package emap provides a fixed-capacity, direct-indexed map.
//
// A [Map] maps integer keys in [0, Cap) to values. The key is the position of
// a slot in a single backing array, so there is no hashing, no probing and no
// growth. It is meant for hot loops over a small, known key space where most
// slots stay empty.
//
// # Basic Usage
//
//	m := emap.New[int64](8)
//
//	m.Insert(3, 10)
//	prev, replaced := m.Insert(3, 20) // 10, true
//
//	v, ok := m.Get(3) // 20, true
//	m.Remove(3)
//
//	for key, value := range m.All() {
//	    fmt.Println(key, value)
//	}
//
// # Capacity
//
// The capacity is fixed by [New] and never changes. New(n) is also the
// default constructor: it returns an empty map of capacity n with every slot
// vacant. The zero Map is a valid, empty map with capacity 0.
//
// # Indices
//
// Passing an index outside [0, Cap) is a programming error. The Map panics
// with an [*IndexError] (which matches [ErrOutOfRange] via [errors.Is])
// before touching any state.
//
// # Values
//
// Values are stored by copy. Overwriting, removing and clearing never run
// any per-value cleanup; for pointer-bearing value types the copy is shallow
// and the Map does not own what the pointer references.
//
// # Concurrency
//
// A Map is not safe for concurrent use. Callers sharing a Map between
// goroutines must guard it with their own lock.
package emap
