package emap

import (
	"fmt"
	"strings"
)

// Equal reports whether a and b have the same capacity and the same
// occupied (key, value) pairs.
func Equal[V comparable](a, b *Map[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like [Equal] but compares values with eq.
func EqualFunc[V1, V2 any](a *Map[V1], b *Map[V2], eq func(V1, V2) bool) bool {
	if len(a.items) != len(b.items) || a.filled != b.filled {
		return false
	}

	for i := range a.items {
		x, y := &a.items[i], &b.items[i]
		if x.occupied != y.occupied {
			return false
		}

		if x.occupied && !eq(x.value, y.value) {
			return false
		}
	}

	return true
}

// String formats the occupied pairs in ascending key order, in the same
// shape fmt uses for builtin maps: emap[0:100 1:200].
func (m *Map[V]) String() string {
	var sb strings.Builder

	sb.WriteString("emap[")

	first := true

	for key, value := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}

		first = false

		fmt.Fprintf(&sb, "%d:%v", key, value)
	}

	sb.WriteByte(']')

	return sb.String()
}
