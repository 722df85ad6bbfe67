package emap_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/emap/pkg/emap"
)

type pair struct {
	Key   int
	Value int
}

func collectPairs(m *emap.Map[int]) []pair {
	var pairs []pair
	for key, value := range m.All() {
		pairs = append(pairs, pair{key, value})
	}

	return pairs
}

func Test_Map_All_Yields_Ascending_Pairs_When_Capacity_Four(t *testing.T) {
	t.Parallel()

	m := emap.New[int](4)
	m.Insert(0, 100)
	m.Insert(1, 200)
	m.Insert(2, 300)

	want := []pair{{0, 100}, {1, 200}, {2, 300}}
	diff := cmp.Diff(want, collectPairs(m))
	assert.Empty(t, diff, "iteration mismatch")

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, collectPairs(m), "cleared map should yield nothing")
}

func Test_Map_All_Skips_Vacant_Slots_When_Inserted_Out_Of_Order(t *testing.T) {
	t.Parallel()

	m := emap.New[int](10)
	for _, key := range []int{9, 4, 0, 7} {
		m.Insert(key, key*key)
	}

	m.Remove(4)

	want := []pair{{0, 0}, {7, 49}, {9, 81}}
	diff := cmp.Diff(want, collectPairs(m))
	assert.Empty(t, diff)
	assert.Len(t, collectPairs(m), m.Len(), "yielded pairs must equal Len")
}

func Test_Map_All_Observes_Current_State_When_Sequence_Reused(t *testing.T) {
	t.Parallel()

	m := emap.New[int](4)
	m.Insert(1, 1)

	seq := m.All()

	first := 0
	for range seq {
		first++
	}

	m.Insert(3, 3)
	m.Insert(0, 0)

	var keys []int
	for key := range seq {
		keys = append(keys, key)
	}

	assert.Equal(t, 1, first)
	assert.Equal(t, []int{0, 1, 3}, keys, "a second range should rescan the map")
}

func Test_Map_All_Stops_When_Yield_Returns_False(t *testing.T) {
	t.Parallel()

	m := emap.New[int](8)
	for key := range 8 {
		m.Insert(key, key)
	}

	var seen []int
	for key := range m.All() {
		seen = append(seen, key)
		if key == 2 {
			break
		}
	}

	assert.Equal(t, []int{0, 1, 2}, seen)
}

func Test_Map_All_Yields_Every_Live_Key_When_Body_Mutates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		keys    []int
		atKey   int
		mutate  func(m *emap.Map[int])
		want    []int
		wantLen int
	}{
		{
			name:    "InsertAhead",
			keys:    []int{0, 5},
			atKey:   0,
			mutate:  func(m *emap.Map[int]) { m.Insert(3, 3) },
			want:    []int{0, 3, 5},
			wantLen: 3,
		},
		{
			name:  "InsertAheadRemoveCurrent",
			keys:  []int{0, 5},
			atKey: 0,
			mutate: func(m *emap.Map[int]) {
				m.Insert(3, 3)
				m.Remove(0)
			},
			want:    []int{0, 3, 5},
			wantLen: 2,
		},
		{
			name:    "RemoveBehind",
			keys:    []int{0, 2, 4},
			atKey:   2,
			mutate:  func(m *emap.Map[int]) { m.Remove(0) },
			want:    []int{0, 2, 4},
			wantLen: 2,
		},
		{
			name:    "RemoveAhead",
			keys:    []int{0, 2, 4},
			atKey:   0,
			mutate:  func(m *emap.Map[int]) { m.Remove(4) },
			want:    []int{0, 2},
			wantLen: 2,
		},
		{
			name:    "PushAhead",
			keys:    []int{0, 1, 7},
			atKey:   1,
			mutate:  func(m *emap.Map[int]) { m.Push(2) },
			want:    []int{0, 1, 2, 7},
			wantLen: 4,
		},
		{
			name:    "Clear",
			keys:    []int{0, 2, 4},
			atKey:   0,
			mutate:  func(m *emap.Map[int]) { m.Clear() },
			want:    []int{0},
			wantLen: 0,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			m := emap.New[int](8)
			for _, key := range testCase.keys {
				m.Insert(key, key)
			}

			var keys []int
			for key := range m.All() {
				keys = append(keys, key)
				if key == testCase.atKey {
					testCase.mutate(m)
				}
			}

			assert.Equal(t, testCase.want, keys)
			assert.Equal(t, testCase.wantLen, m.Len())
			requireInvariants(t, m)
		})
	}
}

// Random inserts and removes inside the loop body must never hide a key
// that was occupied throughout the range.
func Test_Map_All_Never_Skips_Untouched_Keys_When_Body_Mutates_Randomly(t *testing.T) {
	t.Parallel()

	const capacity = 32

	for seed := range uint64(50) {
		rng := rand.New(rand.NewPCG(seed, 99))

		m := emap.New[int](capacity)
		for key := range capacity {
			if rng.IntN(3) == 0 {
				m.Insert(key, key)
			}
		}

		touched := map[int]bool{}
		startKeys := slices.Collect(m.Keys())

		var yielded []int

		for key := range m.All() {
			yielded = append(yielded, key)

			for range rng.IntN(3) {
				other := rng.IntN(capacity)
				touched[other] = true

				if rng.IntN(2) == 0 {
					m.Insert(other, other)
				} else {
					m.Remove(other)
				}
			}
		}

		require.True(t, slices.IsSorted(yielded), "seed %d: keys out of order: %v", seed, yielded)

		for _, key := range startKeys {
			if !touched[key] {
				assert.Contains(t, yielded, key, "seed %d: untouched key skipped", seed)
			}
		}

		requireInvariants(t, m)
	}
}

func Test_Map_Keys_And_Values_Follow_Key_Order(t *testing.T) {
	t.Parallel()

	m := emap.New[string](6)
	m.Insert(5, "f")
	m.Insert(1, "b")
	m.Insert(3, "d")

	assert.Equal(t, []int{1, 3, 5}, slices.Collect(m.Keys()))
	assert.Equal(t, []string{"b", "d", "f"}, slices.Collect(m.Values()))

	for key := range m.Keys() {
		if key == 3 {
			break
		}
	}

	for value := range m.Values() {
		if value == "b" {
			break
		}
	}
}

func Test_Map_Find_Returns_First_Match_When_Values_Repeat(t *testing.T) {
	t.Parallel()

	m := emap.New[int](8)
	m.Insert(6, 42)
	m.Insert(2, 42)
	m.Insert(4, 7)

	key, value, ok := m.Find(func(_ int, v int) bool { return v == 42 })
	require.True(t, ok)
	assert.Equal(t, 2, key, "Find should return the lowest matching key")
	assert.Equal(t, 42, value)

	_, _, ok = m.Find(func(_ int, v int) bool { return v == 0 })
	assert.False(t, ok)
}

func Test_Map_String_Formats_Like_Builtin_Map(t *testing.T) {
	t.Parallel()

	m := emap.New[string](4)
	m.Insert(2, "two")
	m.Insert(0, "zero")

	assert.Equal(t, "emap[0:zero 2:two]", m.String())
}
