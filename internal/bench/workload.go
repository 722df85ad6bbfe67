package bench

import "fmt"

// Sentinel is the value stored at key 0 that survives every round.
const Sentinel int64 = 42

// MinCapacity is the smallest capacity the workload accepts.
const MinCapacity = 2

// RunRound runs one round of the workload and returns the sentinel it found.
//
// A round clears c, stores [Sentinel] at key 0, then for every key in
// [1, capacity-1) inserts the key as its own value and reads it back. It then
// removes those keys again, clears c if any zero value is left, and finally
// searches for the sentinel.
func RunRound(c Contender, capacity int) (int64, error) {
	c.Clear()
	c.Insert(0, Sentinel)

	for key := 1; key < capacity-1; key++ {
		c.Insert(key, int64(key))

		value, ok := c.Get(key)
		if !ok || value != int64(key) {
			return 0, fmt.Errorf("%w: Get(%d) = (%d, %v), want (%d, true)", ErrWorkloadMismatch, key, value, ok, key)
		}
	}

	for key := 1; key < capacity-1; key++ {
		c.Remove(key)
	}

	if _, ok := c.Find(func(v int64) bool { return v == 0 }); ok {
		c.Clear()
	}

	found, ok := c.Find(func(v int64) bool { return v == Sentinel })
	if !ok {
		return 0, fmt.Errorf("%w: sentinel %d not found", ErrWorkloadMismatch, Sentinel)
	}

	return found, nil
}
