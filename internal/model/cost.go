package model

import "slices"

// GapCost is the optimization objective: total idle minutes between
// consecutive classes on the same day, summed over days. Days with zero or one
// class contribute nothing. Deterministic and total over conflict-free slot
// sets; gaps cannot be negative once overlap has been ruled out.
func GapCost(slots []TimeSlot) int {
	perDay := make(map[Day][]TimeSlot)
	for _, slot := range slots {
		perDay[slot.Day] = append(perDay[slot.Day], slot)
	}

	cost := 0
	for _, daySlots := range perDay {
		slices.SortFunc(daySlots, func(a, b TimeSlot) int {
			if a.Start != b.Start {
				return a.Start - b.Start
			}
			return a.End - b.End
		})

		for i := 0; i+1 < len(daySlots); i++ {
			if gap := daySlots[i+1].Start - daySlots[i].End; gap > 0 {
				cost += gap
			}
		}
	}
	return cost
}
