package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Title:   "Timetable 10B",
		Headers: []string{"weekday", "start", "end", "name", "room", "teacher"},
		Rows: [][]string{
			{"Wednesday", "09:00", "09:40", "Math", "12", "Ivanova"},
			{"Wednesday", "10:30", "11:10", "PE"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleTable())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "weekday,start,end,name,room,teacher", lines[0])
	assert.Equal(t, "Wednesday,10:30,11:10,PE,,", lines[2])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	table := sampleTable()
	for i := 0; i < 60; i++ {
		table.Rows = append(table.Rows, []string{"Friday", "08:00", "08:40", "History", "21", "Sidorov"})
	}
	out, err := NewPDFExporter("").Render(table)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFExporterRenderWithUTF8Font(t *testing.T) {
	table := Table{
		Title:   "Расписание 10Б",
		Headers: []string{"день", "начало", "предмет", "учитель"},
		Rows:    [][]string{{"Среда", "09:00", "Математика", "Иванова"}},
	}
	out, err := NewPDFExporter("testdata/DejaVuSansCondensed.ttf").Render(table)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "/BaseFont /utf8timetable")
}

func TestPDFExporterMissingFont(t *testing.T) {
	_, err := NewPDFExporter("testdata/missing.ttf").Render(sampleTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.ttf")
}

func TestColumnWeights(t *testing.T) {
	weights := sampleTable().columnWeights()
	assert.Equal(t, []float64{9, 5, 5, 4, 4, 7}, weights)
}
