package model

import "fmt"

type Day uint8

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

func (d Day) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Day(%d)", uint8(d))
}

// TimeSlot is a single class interval within a group's weekly schedule. Start
// and End are minutes since midnight; the interval is half-open [Start, End).
type TimeSlot struct {
	Day   Day
	Start int
	End   int
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%v %02d:%02d-%02d:%02d", s.Day, s.Start/60, s.Start%60, s.End/60, s.End%60)
}

// Overlaps checks whether both slots share a day and their intervals intersect
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Day == other.Day && s.Start < other.End && other.Start < s.End
}
