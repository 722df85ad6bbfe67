package bench

import (
	"slices"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/btree"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/calvinalkan/emap/pkg/emap"
)

// -----------------------------------------------------------------------------
// emap (baseline)
// -----------------------------------------------------------------------------

type emapContender struct {
	m *emap.Map[int64]
}

func newEmapContender(capacity int) Contender {
	return &emapContender{m: emap.New[int64](capacity)}
}

func (c *emapContender) Clear()                      { c.m.Clear() }
func (c *emapContender) Insert(key int, value int64) { c.m.Insert(key, value) }
func (c *emapContender) Get(key int) (int64, bool)   { return c.m.Get(key) }
func (c *emapContender) Remove(key int)              { c.m.Remove(key) }

func (c *emapContender) Find(match func(int64) bool) (int64, bool) {
	_, value, ok := c.m.Find(func(_ int, v int64) bool { return match(v) })

	return value, ok
}

// -----------------------------------------------------------------------------
// Go builtin map
// -----------------------------------------------------------------------------

type builtinContender struct {
	m map[int]int64
}

func newBuiltinContender(capacity int) Contender {
	return &builtinContender{m: make(map[int]int64, capacity)}
}

func newBuiltinUnsizedContender(int) Contender {
	return &builtinContender{m: map[int]int64{}}
}

func (c *builtinContender) Clear()                      { clear(c.m) }
func (c *builtinContender) Insert(key int, value int64) { c.m[key] = value }
func (c *builtinContender) Remove(key int)              { delete(c.m, key) }

func (c *builtinContender) Get(key int) (int64, bool) {
	value, ok := c.m[key]

	return value, ok
}

func (c *builtinContender) Find(match func(int64) bool) (int64, bool) {
	for _, value := range c.m {
		if match(value) {
			return value, true
		}
	}

	return 0, false
}

// -----------------------------------------------------------------------------
// google/btree
// -----------------------------------------------------------------------------

const btreeDegree = 32

type btreeEntry struct {
	key   int
	value int64
}

type btreeContender struct {
	tree *btree.BTreeG[btreeEntry]
}

func newBTreeContender(int) Contender {
	return &btreeContender{
		tree: btree.NewG[btreeEntry](btreeDegree, func(a, b btreeEntry) bool { return a.key < b.key }),
	}
}

func (c *btreeContender) Clear() { c.tree.Clear(true) }
func (c *btreeContender) Insert(key int, value int64) {
	c.tree.ReplaceOrInsert(btreeEntry{key: key, value: value})
}
func (c *btreeContender) Remove(key int) { c.tree.Delete(btreeEntry{key: key}) }

func (c *btreeContender) Get(key int) (int64, bool) {
	entry, ok := c.tree.Get(btreeEntry{key: key})

	return entry.value, ok
}

func (c *btreeContender) Find(match func(int64) bool) (int64, bool) {
	var (
		found int64
		ok    bool
	)

	c.tree.Ascend(func(entry btreeEntry) bool {
		if match(entry.value) {
			found, ok = entry.value, true

			return false
		}

		return true
	})

	return found, ok
}

// -----------------------------------------------------------------------------
// elliotchance/orderedmap
// -----------------------------------------------------------------------------

type orderedMapContender struct {
	m *orderedmap.OrderedMap[int, int64]
}

func newOrderedMapContender(int) Contender {
	return &orderedMapContender{m: orderedmap.NewOrderedMap[int, int64]()}
}

// Clear swaps in a fresh map; the linked list has no bulk reset.
func (c *orderedMapContender) Clear()                      { c.m = orderedmap.NewOrderedMap[int, int64]() }
func (c *orderedMapContender) Insert(key int, value int64) { c.m.Set(key, value) }
func (c *orderedMapContender) Remove(key int)              { c.m.Delete(key) }
func (c *orderedMapContender) Get(key int) (int64, bool)   { return c.m.Get(key) }

func (c *orderedMapContender) Find(match func(int64) bool) (int64, bool) {
	for el := c.m.Front(); el != nil; el = el.Next() {
		if match(el.Value) {
			return el.Value, true
		}
	}

	return 0, false
}

// -----------------------------------------------------------------------------
// orcaman/concurrent-map
// -----------------------------------------------------------------------------

type concurrentMapContender struct {
	m cmap.ConcurrentMap[int, int64]
}

func newConcurrentMapContender(int) Contender {
	return &concurrentMapContender{
		m: cmap.NewWithCustomShardingFunction[int, int64](func(key int) uint32 {
			return uint32(key) //nolint:gosec // keys are small and non-negative
		}),
	}
}

func (c *concurrentMapContender) Clear()                      { c.m.Clear() }
func (c *concurrentMapContender) Insert(key int, value int64) { c.m.Set(key, value) }
func (c *concurrentMapContender) Remove(key int)              { c.m.Remove(key) }
func (c *concurrentMapContender) Get(key int) (int64, bool)   { return c.m.Get(key) }

// Find visits every entry; the callback iterator cannot stop early.
func (c *concurrentMapContender) Find(match func(int64) bool) (int64, bool) {
	var (
		found int64
		ok    bool
	)

	c.m.IterCb(func(_ int, value int64) {
		if !ok && match(value) {
			found, ok = value, true
		}
	})

	return found, ok
}

// -----------------------------------------------------------------------------
// Slice-backed maps
// -----------------------------------------------------------------------------

type sliceEntry struct {
	key   int
	value int64
}

// linearContender keeps entries unsorted and searches linearly.
type linearContender struct {
	entries []sliceEntry
}

func newLinearContender(capacity int) Contender {
	return &linearContender{entries: make([]sliceEntry, 0, capacity)}
}

func (c *linearContender) Clear() { c.entries = c.entries[:0] }

func (c *linearContender) Insert(key int, value int64) {
	for i := range c.entries {
		if c.entries[i].key == key {
			c.entries[i].value = value

			return
		}
	}

	c.entries = append(c.entries, sliceEntry{key: key, value: value})
}

func (c *linearContender) Get(key int) (int64, bool) {
	for i := range c.entries {
		if c.entries[i].key == key {
			return c.entries[i].value, true
		}
	}

	return 0, false
}

func (c *linearContender) Remove(key int) {
	for i := range c.entries {
		if c.entries[i].key == key {
			last := len(c.entries) - 1
			c.entries[i] = c.entries[last]
			c.entries = c.entries[:last]

			return
		}
	}
}

func (c *linearContender) Find(match func(int64) bool) (int64, bool) {
	for i := range c.entries {
		if match(c.entries[i].value) {
			return c.entries[i].value, true
		}
	}

	return 0, false
}

// sortedSliceContender keeps entries sorted by key and binary searches.
type sortedSliceContender struct {
	entries []sliceEntry
}

func newSortedSliceContender(capacity int) Contender {
	return &sortedSliceContender{entries: make([]sliceEntry, 0, capacity)}
}

func (c *sortedSliceContender) search(key int) (int, bool) {
	return slices.BinarySearchFunc(c.entries, key, func(e sliceEntry, k int) int { return e.key - k })
}

func (c *sortedSliceContender) Clear() { c.entries = c.entries[:0] }

func (c *sortedSliceContender) Insert(key int, value int64) {
	i, found := c.search(key)
	if found {
		c.entries[i].value = value

		return
	}

	c.entries = slices.Insert(c.entries, i, sliceEntry{key: key, value: value})
}

func (c *sortedSliceContender) Get(key int) (int64, bool) {
	i, found := c.search(key)
	if !found {
		return 0, false
	}

	return c.entries[i].value, true
}

func (c *sortedSliceContender) Remove(key int) {
	i, found := c.search(key)
	if found {
		c.entries = slices.Delete(c.entries, i, i+1)
	}
}

func (c *sortedSliceContender) Find(match func(int64) bool) (int64, bool) {
	for i := range c.entries {
		if match(c.entries[i].value) {
			return c.entries[i].value, true
		}
	}

	return 0, false
}
