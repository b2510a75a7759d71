package csvio

import (
	"fmt"
	"os"
	"slices"

	"github.com/gocarina/gocsv"

	"courseplanner/internal/model"
)

// PlanRow is one scheduled class of an exported plan.
type PlanRow struct {
	Subject string `csv:"subject"`
	Group   string `csv:"group"`
	Room    string `csv:"room"`
	Day     string `csv:"day"`
	Start   string `csv:"start"`
	End     string `csv:"end"`
}

// ExportPlan writes the chosen plan to a CSV file, one row per scheduled slot,
// ordered by day and start time.
func ExportPlan(plan *model.Plan, path string) error {
	rows := planRows(plan)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create plan file: %w", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("cannot write plan file %v: %w", path, err)
	}
	return nil
}

func planRows(plan *model.Plan) []PlanRow {
	type scheduled struct {
		subject string
		group   model.Group
		slot    model.TimeSlot
	}

	classes := make([]scheduled, 0)
	for _, assignment := range plan.Assignments {
		for _, slot := range assignment.Group.Slots {
			classes = append(classes, scheduled{subject: assignment.Subject, group: assignment.Group, slot: slot})
		}
	}

	slices.SortFunc(classes, func(a, b scheduled) int {
		if a.slot.Day != b.slot.Day {
			return int(a.slot.Day) - int(b.slot.Day)
		}
		return a.slot.Start - b.slot.Start
	})

	rows := make([]PlanRow, 0, len(classes))
	for _, class := range classes {
		rows = append(rows, PlanRow{
			Subject: class.subject,
			Group:   class.group.Id,
			Room:    class.group.Room,
			Day:     class.slot.Day.String(),
			Start:   formatMinutes(class.slot.Start),
			End:     formatMinutes(class.slot.End),
		})
	}
	return rows
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
