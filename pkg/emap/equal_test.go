package emap_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvinalkan/emap/pkg/emap"
)

func Test_Equal_Returns_True_When_Same_Pairs(t *testing.T) {
	t.Parallel()

	a := emap.New[int](4)
	b := emap.New[int](4)

	a.Insert(1, 10)
	a.Insert(3, 30)

	b.Insert(3, 30)
	b.Insert(1, 10)

	assert.True(t, emap.Equal(a, b), "insertion order must not matter")
	assert.True(t, emap.Equal(a, a), "Equal should be reflexive")

	var zeroA, zeroB emap.Map[int]
	assert.True(t, emap.Equal(&zeroA, &zeroB))
}

func Test_Equal_Returns_False_When_Maps_Differ(t *testing.T) {
	t.Parallel()

	base := func() *emap.Map[int] {
		m := emap.New[int](4)
		m.Insert(1, 10)

		return m
	}

	otherCapacity := emap.New[int](5)
	otherCapacity.Insert(1, 10)

	otherValue := base()
	otherValue.Insert(1, 11)

	otherKey := emap.New[int](4)
	otherKey.Insert(2, 10)

	extra := base()
	extra.Insert(0, 0)

	for name, other := range map[string]*emap.Map[int]{
		"capacity": otherCapacity,
		"value":    otherValue,
		"key":      otherKey,
		"len":      extra,
	} {
		assert.False(t, emap.Equal(base(), other), "differing %s", name)
	}
}

func Test_EqualFunc_Compares_Across_Value_Types(t *testing.T) {
	t.Parallel()

	ints := emap.New[int](3)
	strs := emap.New[string](3)

	ints.Insert(0, 7)
	strs.Insert(0, "7")

	eq := func(i int, s string) bool { return strconv.Itoa(i) == s }

	assert.True(t, emap.EqualFunc(ints, strs, eq))

	strs.Insert(0, "8")
	assert.False(t, emap.EqualFunc(ints, strs, eq))
}
