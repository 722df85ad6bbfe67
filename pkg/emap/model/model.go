// Package model provides a deliberately simple, in-memory state model of
// emap's publicly observable behavior.
//
// The model is intentionally easy to audit: it keeps a builtin map keyed by
// index and sorts on every iteration. It favors clarity over performance and
// reports out-of-range indices as errors instead of panicking, so a harness
// can compare them against the real Map's recovered panics.
package model

import (
	"fmt"
	"maps"
	"slices"

	"github.com/calvinalkan/emap/pkg/emap"
)

// Entry is a single occupied (key, value) pair.
type Entry[V any] struct {
	Key   int
	Value V
}

// MapModel mirrors emap.Map with a builtin map.
type MapModel[V any] struct {
	Capacity int
	Values   map[int]V
}

// New returns an empty model with the given capacity.
func New[V any](capacity int) (*MapModel[V], error) {
	if capacity < 0 || capacity > emap.MaxCapacity {
		return nil, fmt.Errorf("%w: %d", emap.ErrInvalidCapacity, capacity)
	}

	return &MapModel[V]{Capacity: capacity, Values: map[int]V{}}, nil
}

// Clone makes a deep copy so metamorphic tests can fork the exact same state.
func (model *MapModel[V]) Clone() *MapModel[V] {
	if model == nil {
		return nil
	}

	return &MapModel[V]{Capacity: model.Capacity, Values: maps.Clone(model.Values)}
}

// Insert stores value at index and returns the previous value, if any.
func (model *MapModel[V]) Insert(index int, value V) (V, bool, error) {
	var zero V

	err := model.validateIndex(index)
	if err != nil {
		return zero, false, err
	}

	prev, replaced := model.Values[index]
	model.Values[index] = value

	return prev, replaced, nil
}

// Get returns the value stored at index.
func (model *MapModel[V]) Get(index int) (V, bool, error) {
	var zero V

	err := model.validateIndex(index)
	if err != nil {
		return zero, false, err
	}

	value, ok := model.Values[index]

	return value, ok, nil
}

// Contains reports whether index is occupied.
func (model *MapModel[V]) Contains(index int) (bool, error) {
	err := model.validateIndex(index)
	if err != nil {
		return false, err
	}

	_, ok := model.Values[index]

	return ok, nil
}

// Remove deletes index and returns the value it held.
func (model *MapModel[V]) Remove(index int) (V, bool, error) {
	var zero V

	err := model.validateIndex(index)
	if err != nil {
		return zero, false, err
	}

	value, ok := model.Values[index]
	if !ok {
		return zero, false, nil
	}

	delete(model.Values, index)

	return value, true, nil
}

// Len returns the number of occupied indices.
func (model *MapModel[V]) Len() int {
	return len(model.Values)
}

// Clear removes every entry.
func (model *MapModel[V]) Clear() {
	clear(model.Values)
}

// Entries returns all occupied pairs sorted by key.
func (model *MapModel[V]) Entries() []Entry[V] {
	keys := slices.Sorted(maps.Keys(model.Values))

	entries := make([]Entry[V], 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry[V]{Key: key, Value: model.Values[key]})
	}

	return entries
}

// NextKey returns the lowest index not present in the model.
func (model *MapModel[V]) NextKey() (int, bool) {
	for index := range model.Capacity {
		if _, ok := model.Values[index]; !ok {
			return index, true
		}
	}

	return 0, false
}

// Push stores value at NextKey.
func (model *MapModel[V]) Push(value V) (int, bool) {
	index, ok := model.NextKey()
	if !ok {
		return 0, false
	}

	model.Values[index] = value

	return index, true
}

func (model *MapModel[V]) validateIndex(index int) error {
	if index < 0 || index >= model.Capacity {
		return &emap.IndexError{Index: index, Capacity: model.Capacity}
	}

	return nil
}
