package csvio

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"courseplanner/internal/model"
)

const catalogCsv = `Semestre,clv_Mat,Materia,Turno,Grupo,Salón,Lunes,Martes,Miercoles,Jueves,Viernes,Sabado
1,MAT101,Algebra Lineal,M,1,A-101,"7,00 a 8,30",,"7,00 a 8,30",,,
1,MAT101,Algebra Lineal,T,2,A-102,,"16,00 a 17,30",,"16,00 a 17,30",,
1,FIS101,Mecanica Clasica,M,1,B-201,,"9,00 a 11,00",,,"9,00 a 11,00",
0,OPT01,Fotografia,M,1,C-301,,,,,,"10,00 a 12,00"
0,OPT02,Ajedrez,T,1,C-302,not a time,,,,,
`

func writeCatalogCsv(t *testing.T, content string) string {
	t.Helper()
	file := path.Join(t.TempDir(), "catalog.csv")
	assert.Nil(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestLoadCatalog(t *testing.T) {
	// Arrange
	file := writeCatalogCsv(t, catalogCsv)

	// Act
	subjects, err := LoadCatalog(file)

	// Assert
	assert.Nil(t, err)
	// OPT02's only cell is unparseable, so the whole subject drops out
	assert.Len(t, subjects, 3)

	algebra := subjects[0]
	assert.Equal(t, "MAT101", algebra.Id)
	assert.Equal(t, "Algebra Lineal", algebra.Name)
	assert.Equal(t, 1, algebra.Semester)
	assert.True(t, algebra.Mandatory)
	assert.Len(t, algebra.Groups, 2)

	morning := algebra.Groups[0]
	assert.Equal(t, model.ShiftMorning, morning.Shift)
	assert.Equal(t, "A-101", morning.Room)
	assert.Equal(t, []model.TimeSlot{
		{Day: model.Monday, Start: 7 * 60, End: 8*60 + 30},
		{Day: model.Wednesday, Start: 7 * 60, End: 8*60 + 30},
	}, morning.Slots)

	afternoon := algebra.Groups[1]
	assert.Equal(t, model.ShiftAfternoon, afternoon.Shift)
	assert.Equal(t, []model.TimeSlot{
		{Day: model.Tuesday, Start: 16 * 60, End: 17*60 + 30},
		{Day: model.Thursday, Start: 16 * 60, End: 17*60 + 30},
	}, afternoon.Slots)

	photography := subjects[2]
	assert.Equal(t, "OPT01", photography.Id)
	assert.True(t, photography.Elective())
	assert.False(t, photography.Mandatory)
	assert.Equal(t, model.Saturday, photography.Groups[0].Slots[0].Day)
}

func TestLoadCatalogPreservesCatalogOrder(t *testing.T) {
	file := writeCatalogCsv(t, catalogCsv)

	subjects, err := LoadCatalog(file)
	assert.Nil(t, err)

	ids := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		ids = append(ids, subject.Id)
	}
	assert.Equal(t, []string{"MAT101", "FIS101", "OPT01"}, ids)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog("does-not-exist.csv")
	assert.ErrorContains(t, err, "cannot open catalog file")
}

func TestLoadCatalogUnknownShift(t *testing.T) {
	file := writeCatalogCsv(t, `Semestre,clv_Mat,Materia,Turno,Grupo,Salón,Lunes,Martes,Miercoles,Jueves,Viernes,Sabado
1,MAT101,Algebra Lineal,Q,1,A-101,"7,00 a 8,30",,,,,
`)

	_, err := LoadCatalog(file)
	assert.ErrorContains(t, err, "unknown shift code")
}

func TestParseTimeRange(t *testing.T) {
	scenarios := []struct {
		cell       string
		start, end int
		ok         bool
	}{
		{cell: "7,00 a 8,30", start: 420, end: 510, ok: true},
		{cell: "16,00a17,30", start: 960, end: 1050, ok: true},
		{cell: " 9,00  a  11,00 ", start: 540, end: 660, ok: true},
		{cell: "", ok: false},
		{cell: "libre", ok: false},
		{cell: "8,30 a 8,30", ok: false},
		{cell: "10,00 a 8,00", ok: false},
	}

	for _, scenario := range scenarios {
		start, end, ok := parseTimeRange(scenario.cell)
		assert.Equal(t, scenario.ok, ok, scenario.cell)
		if scenario.ok {
			assert.Equal(t, scenario.start, start, scenario.cell)
			assert.Equal(t, scenario.end, end, scenario.cell)
		}
	}
}
