package model

// HasConflict checks whether some slot in a and some slot in b share a day and
// overlap in time. Quadratic in the slot counts, which stay small per group.
func HasConflict(a, b []TimeSlot) bool {
	for _, slotA := range a {
		for _, slotB := range b {
			if slotA.Overlaps(slotB) {
				return true
			}
		}
	}
	return false
}
