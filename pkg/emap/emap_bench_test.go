package emap_test

import (
	"testing"

	"github.com/calvinalkan/emap/pkg/emap"
)

const benchCapacity = 100

var benchSink int64

func BenchmarkMap_Insert_Get_Remove(b *testing.B) {
	m := emap.New[int64](benchCapacity)

	b.ReportAllocs()

	for b.Loop() {
		for i := range benchCapacity {
			m.Insert(i, int64(i))
		}

		for i := range benchCapacity {
			v, _ := m.Get(i)
			benchSink += v
		}

		for i := range benchCapacity {
			m.Remove(i)
		}
	}
}

// A single live key at index 0 lets Clear and All stop after one slot.
func BenchmarkMap_Clear_When_Sparse(b *testing.B) {
	m := emap.New[int64](benchCapacity)

	b.ReportAllocs()

	for b.Loop() {
		m.Insert(0, 42)
		m.Clear()
	}
}

func BenchmarkMap_All_When_Sparse(b *testing.B) {
	m := emap.New[int64](benchCapacity)
	m.Insert(0, 42)

	b.ReportAllocs()

	for b.Loop() {
		for _, v := range m.All() {
			benchSink += v
		}
	}
}

func BenchmarkBuiltinMap_Insert_Get_Remove(b *testing.B) {
	m := make(map[int]int64, benchCapacity)

	b.ReportAllocs()

	for b.Loop() {
		for i := range benchCapacity {
			m[i] = int64(i)
		}

		for i := range benchCapacity {
			benchSink += m[i]
		}

		for i := range benchCapacity {
			delete(m, i)
		}
	}
}
