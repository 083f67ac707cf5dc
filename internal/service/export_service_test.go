package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type stubLessonLister struct {
	lessons []models.LessonDetail
	err     error
}

func (s *stubLessonLister) List(ctx context.Context, q LessonQuery) ([]models.LessonDetail, error) {
	return s.lessons, s.err
}

func TestExportServiceCSV(t *testing.T) {
	friday := lessonAt(2, "PE", models.NewTimeOfDay(10, 30), models.NewTimeOfDay(11, 10), 2, "gym")
	friday.Weekday = 4
	friday.IsOddWeek = boolPtr(true)
	monday := lessonAt(1, "Math", models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 40), 1, "12")
	monday.Weekday = 0

	svc := NewExportService(&stubLessonLister{lessons: []models.LessonDetail{friday, monday}}, nil, nil, nil)

	file, err := svc.Timetable(context.Background(), Scope{SubgroupID: int64Ptr(5)}, ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "subgroup-5.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(strings.NewReader(string(file.Body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"weekday", "start", "end", "name", "room", "teacher", "week"}, records[0])
	assert.Equal(t, "Monday", records[1][0])
	assert.Equal(t, "every", records[1][6])
	assert.Equal(t, "Friday", records[2][0])
	assert.Equal(t, "odd", records[2][6])
}

func TestExportServicePDF(t *testing.T) {
	svc := NewExportService(&stubLessonLister{lessons: threeLessons()}, nil, nil, nil)

	file, err := svc.Timetable(context.Background(), Scope{ClassID: int64Ptr(3)}, ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "class-3.pdf", file.Filename)
	assert.True(t, strings.HasPrefix(string(file.Body), "%PDF"))
}

func TestExportServiceErrors(t *testing.T) {
	svc := NewExportService(&stubLessonLister{err: appErrors.Clone(appErrors.ErrNotFound, "lessons not found")}, nil, nil, nil)

	_, err := svc.Timetable(context.Background(), Scope{ClassID: int64Ptr(3)}, "xlsx")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Timetable(context.Background(), Scope{ClassID: int64Ptr(3)}, ExportCSV)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
