package model

import "fmt"

type Shift uint8

const (
	ShiftMixed Shift = iota
	ShiftMorning
	ShiftAfternoon
)

var shiftNames = map[Shift]string{
	ShiftMixed:     "Mixed",
	ShiftMorning:   "Morning",
	ShiftAfternoon: "Afternoon",
}

func (s Shift) String() string {
	if name, ok := shiftNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shift(%d)", uint8(s))
}

// Matches checks whether a group on shift s is admissible under the requested
// filter. A Mixed filter admits every group.
func (s Shift) Matches(requested Shift) bool {
	return requested == ShiftMixed || s == requested
}

// Group is one offered section of a subject with fixed weekly time slots.
type Group struct {
	Id    string
	Shift Shift
	Room  string
	Slots []TimeSlot
}
