package csvio

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"courseplanner/internal/model"
)

// CatalogRow mirrors one line of the wide timetable export: one group of one
// subject, with a column per weekday holding a "H,MM a H,MM" range or blank.
type CatalogRow struct {
	Semester  int    `csv:"Semestre"`
	SubjectId string `csv:"clv_Mat"`
	Subject   string `csv:"Materia"`
	Shift     string `csv:"Turno"`
	Group     string `csv:"Grupo"`
	Room      string `csv:"Salón"`
	Monday    string `csv:"Lunes"`
	Tuesday   string `csv:"Martes"`
	Wednesday string `csv:"Miercoles"`
	Thursday  string `csv:"Jueves"`
	Friday    string `csv:"Viernes"`
	Saturday  string `csv:"Sabado"`
}

func (row CatalogRow) dayCells() map[model.Day]string {
	return map[model.Day]string{
		model.Monday:    row.Monday,
		model.Tuesday:   row.Tuesday,
		model.Wednesday: row.Wednesday,
		model.Thursday:  row.Thursday,
		model.Friday:    row.Friday,
		model.Saturday:  row.Saturday,
	}
}

// Source timetables write times with a comma decimal separator: "7,00 a 8,30"
var timeRangePattern = regexp.MustCompile(`^(\d{1,2}),(\d{2})a(\d{1,2}),(\d{2})$`)

// LoadCatalog reads and parses the given csv file for subject, group and
// time-slot data. Cells that do not hold a parseable time range are skipped,
// matching the source application; groups left without any slot are dropped.
func LoadCatalog(path string) ([]model.Subject, error) {
	gocsv.SetHeaderNormalizer(strings.TrimSpace)

	catalogFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog file: %w", err)
	}
	defer catalogFile.Close()

	rows := []*CatalogRow{}
	if err := gocsv.UnmarshalFile(catalogFile, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse catalog file %v: %w", path, err)
	}

	// Preserve first-appearance order: it is the deterministic tie-break for
	// equally flexible electives
	subjects := make([]model.Subject, 0)
	subjectIndex := make(map[string]int)

	for _, row := range rows {
		shift, err := model.ParseShift(row.Shift)
		if err != nil {
			return nil, fmt.Errorf("row for subject %q group %q: %w", row.Subject, row.Group, err)
		}

		cells := row.dayCells()
		slots := make([]model.TimeSlot, 0, 6)
		for day := model.Monday; day <= model.Saturday; day++ {
			start, end, ok := parseTimeRange(cells[day])
			if !ok {
				continue
			}
			slots = append(slots, model.TimeSlot{Day: day, Start: start, End: end})
		}
		if len(slots) == 0 {
			continue
		}

		id := row.SubjectId
		if id == "" {
			id = row.Subject
		}
		index, ok := subjectIndex[id]
		if !ok {
			index = len(subjects)
			subjectIndex[id] = index
			subjects = append(subjects, model.Subject{
				Id:        id,
				Name:      row.Subject,
				Semester:  row.Semester,
				Mandatory: row.Semester != model.ElectiveSemester,
			})
		}

		subjects[index].Groups = append(subjects[index].Groups, model.Group{
			Id:    row.Group,
			Shift: shift,
			Room:  row.Room,
			Slots: slots,
		})
	}

	return subjects, nil
}

func parseTimeRange(cell string) (start, end int, ok bool) {
	cleaned := strings.ReplaceAll(cell, " ", "")
	match := timeRangePattern.FindStringSubmatch(cleaned)
	if match == nil {
		return 0, 0, false
	}

	h1, _ := strconv.Atoi(match[1])
	m1, _ := strconv.Atoi(match[2])
	h2, _ := strconv.Atoi(match[3])
	m2, _ := strconv.Atoi(match[4])
	start = h1*60 + m1
	end = h2*60 + m2
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}
