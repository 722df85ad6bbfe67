package emap

import "fmt"

// Export internal checks for testing.
// This file is only compiled during tests.

// CheckInvariantsForTesting verifies that the filled counter matches the
// number of occupied slots and that vacant slots hold the zero value.
func CheckInvariantsForTesting[V comparable](m *Map[V]) error {
	var zero V

	occupied := 0

	for i := range m.items {
		if m.items[i].occupied {
			occupied++

			continue
		}

		if m.items[i].value != zero {
			return fmt.Errorf("vacant slot %d holds %v", i, m.items[i].value)
		}
	}

	if occupied != m.filled {
		return fmt.Errorf("filled=%d but %d slots are occupied", m.filled, occupied)
	}

	if m.filled < 0 || m.filled > len(m.items) {
		return fmt.Errorf("filled=%d outside [0, %d]", m.filled, len(m.items))
	}

	return nil
}
