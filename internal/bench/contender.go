// Package bench times emap.Map against other map implementations on the
// same workload.
//
// Every implementation is wrapped in a [Contender] so the workload only sees
// the operations it needs: clear, insert, point read, remove and a linear
// search for a value.
package bench

import (
	"fmt"
	"slices"
	"strings"
)

// BaselineName is the contender every other contender is compared against.
const BaselineName = "emap"

// Contender is a map from int keys to int64 values under test.
type Contender interface {
	Clear()
	Insert(key int, value int64)
	Get(key int) (int64, bool)
	Remove(key int)

	// Find returns the first value (in the implementation's own iteration
	// order) for which match returns true.
	Find(match func(value int64) bool) (int64, bool)
}

// Factory builds a fresh contender sized for keys in [0, capacity).
type Factory struct {
	Name        string
	Description string
	New         func(capacity int) Contender
}

// Factories returns all registered contenders, baseline first, then by name.
func Factories() []Factory {
	factories := []Factory{
		{Name: BaselineName, Description: "emap.Map, direct-indexed slots", New: newEmapContender},
		{Name: "builtin-map", Description: "Go map presized to capacity", New: newBuiltinContender},
		{Name: "builtin-map-unsized", Description: "Go map without size hint", New: newBuiltinUnsizedContender},
		{Name: "btree", Description: "google/btree BTreeG, degree 32", New: newBTreeContender},
		{Name: "orderedmap", Description: "elliotchance/orderedmap/v2", New: newOrderedMapContender},
		{Name: "concurrent-map", Description: "orcaman/concurrent-map/v2, sharded by key", New: newConcurrentMapContender},
		{Name: "linear", Description: "unsorted slice with linear search", New: newLinearContender},
		{Name: "sorted-slice", Description: "sorted slice with binary search", New: newSortedSliceContender},
	}

	slices.SortStableFunc(factories[1:], func(a, b Factory) int {
		return strings.Compare(a.Name, b.Name)
	})

	return factories
}

// SelectFactories returns the factories named in names, in registry order.
// An empty names selects every contender. The baseline is always included.
func SelectFactories(names []string) ([]Factory, error) {
	all := Factories()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names)+1)
	wanted[BaselineName] = true

	for _, name := range names {
		if !slices.ContainsFunc(all, func(f Factory) bool { return f.Name == name }) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownContender, name)
		}

		wanted[name] = true
	}

	selected := make([]Factory, 0, len(wanted))
	for _, factory := range all {
		if wanted[factory.Name] {
			selected = append(selected, factory)
		}
	}

	return selected, nil
}
