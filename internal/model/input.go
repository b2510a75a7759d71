package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ModelInput is the normalized catalog shape fed to the engine: time values
// are already minutes since midnight and days are integer codes. Raw-format
// parsing is a collaborator concern (see internal/csvio for the CSV path).
type ModelInput struct {
	Subjects []SubjectInput
}

type SubjectInput struct {
	Id        string
	Name      string
	Semester  int
	Mandatory bool
	Groups    []GroupInput
}

type GroupInput struct {
	Id    string
	Shift string
	Room  string
	Slots []SlotInput
}

type SlotInput struct {
	Day   int
	Start int
	End   int
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ModelInput{}, err
	}

	return input, nil
}

// GetSubjects transforms the decoded catalog into domain subjects, resolving
// shift codes and day numbers.
func (input ModelInput) GetSubjects() ([]Subject, error) {
	subjects := make([]Subject, 0, len(input.Subjects))
	for _, subjectInput := range input.Subjects {
		groups := make([]Group, 0, len(subjectInput.Groups))
		for _, groupInput := range subjectInput.Groups {
			shift, err := ParseShift(groupInput.Shift)
			if err != nil {
				return nil, fmt.Errorf("subject %q group %q: %w", subjectInput.Id, groupInput.Id, err)
			}

			slots := make([]TimeSlot, 0, len(groupInput.Slots))
			for _, slotInput := range groupInput.Slots {
				if slotInput.Day < int(Monday) || slotInput.Day > int(Saturday) {
					return nil, fmt.Errorf("subject %q group %q: day %d out of range", subjectInput.Id, groupInput.Id, slotInput.Day)
				}
				slots = append(slots, TimeSlot{
					Day:   Day(slotInput.Day),
					Start: slotInput.Start,
					End:   slotInput.End,
				})
			}

			groups = append(groups, Group{
				Id:    groupInput.Id,
				Shift: shift,
				Room:  groupInput.Room,
				Slots: slots,
			})
		}

		subjects = append(subjects, Subject{
			Id:        subjectInput.Id,
			Name:      subjectInput.Name,
			Semester:  subjectInput.Semester,
			Mandatory: subjectInput.Mandatory,
			Groups:    groups,
		})
	}
	return subjects, nil
}

// ParseShift resolves a catalog shift code. The single letters are the codes
// the source timetables carry; the full names come from user-facing flags.
func ParseShift(code string) (Shift, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "m", "morning":
		return ShiftMorning, nil
	case "t", "afternoon":
		return ShiftAfternoon, nil
	case "x", "mixed":
		return ShiftMixed, nil
	default:
		return ShiftMixed, fmt.Errorf("unknown shift code %q", code)
	}
}
