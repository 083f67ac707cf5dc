package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/pkg/clock"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/spreadsheet"
)

type fakeImportClasses struct {
	classes   map[string]models.Class
	subgroups map[string]models.Subgroup
}

func (f *fakeImportClasses) Create(ctx context.Context, req CreateClassRequest) (*models.Class, bool, error) {
	key := fmt.Sprintf("%d%s", req.Number, req.Letter)
	if class, ok := f.classes[key]; ok {
		return &class, false, nil
	}
	class := models.Class{ID: int64(len(f.classes) + 1), SchoolID: req.SchoolID, Number: req.Number, Letter: req.Letter}
	f.classes[key] = class
	return &class, true, nil
}

func (f *fakeImportClasses) FindByKey(ctx context.Context, schoolID int64, number int, letter string) (*models.Class, error) {
	for _, class := range f.classes {
		if class.Number == number && class.Letter == letter {
			return &class, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
}

func (f *fakeImportClasses) CreateSubgroup(ctx context.Context, req CreateSubgroupRequest) (*models.Subgroup, bool, error) {
	key := fmt.Sprintf("%d/%s", req.ClassID, req.Name)
	if subgroup, ok := f.subgroups[key]; ok {
		return &subgroup, false, nil
	}
	subgroup := models.Subgroup{ID: int64(len(f.subgroups) + 10), ClassID: req.ClassID, Name: req.Name}
	f.subgroups[key] = subgroup
	return &subgroup, true, nil
}

func (f *fakeImportClasses) FindSubgroup(ctx context.Context, classID int64, name string) (*models.Subgroup, error) {
	if subgroup, ok := f.subgroups[fmt.Sprintf("%d/%s", classID, name)]; ok {
		return &subgroup, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "subgroup not found")
}

type fakeImportTeachers struct {
	names []string
}

func (f *fakeImportTeachers) Ensure(ctx context.Context, name string) (*models.Teacher, bool, error) {
	for i, existing := range f.names {
		if existing == name {
			return &models.Teacher{ID: int64(i + 1), Name: name}, false, nil
		}
	}
	f.names = append(f.names, name)
	return &models.Teacher{ID: int64(len(f.names)), Name: name}, true, nil
}

type fakeImportLessons struct {
	created  []CreateLessonRequest
	links    []LinkSubgroupRequest
	existing []models.LessonDetail
	fail     error
}

func (f *fakeImportLessons) List(ctx context.Context, q LessonQuery) ([]models.LessonDetail, error) {
	var out []models.LessonDetail
	for _, lesson := range f.existing {
		if q.Weekday != nil && lesson.Weekday != *q.Weekday {
			continue
		}
		out = append(out, lesson)
	}
	if len(out) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "lessons not found")
	}
	return out, nil
}

func (f *fakeImportLessons) Create(ctx context.Context, req CreateLessonRequest) (*models.Lesson, bool, error) {
	if f.fail != nil {
		return nil, false, f.fail
	}
	for i, prev := range f.created {
		if prev == req {
			return &models.Lesson{ID: int64(i + 1)}, false, nil
		}
	}
	f.created = append(f.created, req)
	return &models.Lesson{ID: int64(len(f.created))}, true, nil
}

func (f *fakeImportLessons) AddSubgroup(ctx context.Context, req LinkSubgroupRequest) (*models.LessonSubgroup, bool, error) {
	f.links = append(f.links, req)
	return &models.LessonSubgroup{LessonID: req.LessonID, SubgroupID: req.SubgroupID}, true, nil
}

type fakeImportHotfixes struct {
	created []CreateHotfixRequest
}

func (f *fakeImportHotfixes) Create(ctx context.Context, req CreateHotfixRequest) (*models.LessonHotfix, error) {
	f.created = append(f.created, req)
	return &models.LessonHotfix{ID: int64(len(f.created)), LessonID: req.LessonID, ForDate: req.ForDate}, nil
}

type fakeImportMetrics struct {
	rows map[string]int
}

func (f *fakeImportMetrics) AddImportedRows(mode, result string, n int) {
	f.rows[mode+"/"+result] += n
}

type timetableFixture struct {
	classes  *fakeImportClasses
	teachers *fakeImportTeachers
	lessons  *fakeImportLessons
	hotfixes *fakeImportHotfixes
	metrics  *fakeImportMetrics
	svc      *TimetableService
}

func newTimetableFixture(now time.Time) *timetableFixture {
	f := &timetableFixture{
		classes:  &fakeImportClasses{classes: map[string]models.Class{}, subgroups: map[string]models.Subgroup{}},
		teachers: &fakeImportTeachers{},
		lessons:  &fakeImportLessons{},
		hotfixes: &fakeImportHotfixes{},
		metrics:  &fakeImportMetrics{rows: map[string]int{}},
	}
	f.svc = NewTimetableService(f.classes, f.teachers, f.lessons, f.hotfixes, f.metrics, clock.Fixed(now), TimetableConfig{}, nil)
	return f
}

func TestTimetableImport(t *testing.T) {
	f := newTimetableFixture(wednesdayAfternoon)
	rows := []spreadsheet.Row{
		{Line: 2, Class: "10Б", Weekday: "понедельник", Start: "9:00", End: "9:40", Name: "Алгебра", Room: "12", Teacher: "Петров"},
		{Line: 3, Class: "10б", Subgroup: "english", Weekday: "Tue", Start: "10.00", End: "10.40", Name: "English", Room: "7", Teacher: "Smith", Week: "odd"},
		{Line: 4, Class: "10Б", Weekday: "понедельник", Start: "9:00", End: "9:40", Name: "Алгебра", Room: "12", Teacher: "Петров"},
		{Line: 5, Class: "Б", Weekday: "1", Start: "9:00", End: "9:40", Name: "Physics", Room: "3", Teacher: "Ivanov"},
		{Line: 6, Class: "11А", Weekday: "funday", Start: "9:00", End: "9:40", Name: "Physics", Room: "3", Teacher: "Ivanov"},
	}

	report, err := f.svc.Import(context.Background(), 1, rows)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Rows)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Existing)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 5, report.Errors[0].Line)
	assert.Equal(t, 6, report.Errors[1].Line)
	assert.Contains(t, report.Errors[1].Message, "weekday")

	require.Len(t, f.lessons.created, 2)
	assert.Equal(t, 0, f.lessons.created[0].Weekday)
	assert.Nil(t, f.lessons.created[0].IsOddWeek)
	assert.Equal(t, models.NewTimeOfDay(10, 0), f.lessons.created[1].StartTime)
	require.NotNil(t, f.lessons.created[1].IsOddWeek)
	assert.True(t, *f.lessons.created[1].IsOddWeek)

	assert.Len(t, f.classes.classes, 1)
	assert.Len(t, f.classes.subgroups, 2)
	assert.Len(t, f.lessons.links, 3)
	assert.Equal(t, []string{"Петров", "Smith"}, f.teachers.names)

	assert.Equal(t, 2, f.metrics.rows["lessons/created"])
	assert.Equal(t, 1, f.metrics.rows["lessons/existing"])
	assert.Equal(t, 2, f.metrics.rows["lessons/failed"])
}

func TestTimetableImportAbortsOnInternalError(t *testing.T) {
	f := newTimetableFixture(wednesdayAfternoon)
	f.lessons.fail = appErrors.Internal(errors.New("db down"), "failed to create lesson")

	_, err := f.svc.Import(context.Background(), 1, []spreadsheet.Row{
		{Line: 2, Class: "10Б", Weekday: "0", Start: "9:00", End: "9:40", Name: "Algebra", Room: "12", Teacher: "Petrov"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestTimetableImportHotfixes(t *testing.T) {
	f := newTimetableFixture(wednesdayAfternoon)
	f.classes.classes["10Б"] = models.Class{ID: 1, SchoolID: 1, Number: 10, Letter: "Б"}
	f.classes.subgroups["1/1"] = models.Subgroup{ID: 10, ClassID: 1, Name: "1"}
	f.lessons.existing = []models.LessonDetail{
		onWeekday(41, 0, models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 40), nil),
		onWeekday(42, 2, models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 40), nil),
	}

	report, err := f.svc.ImportHotfixes(context.Background(), 1, []spreadsheet.Row{
		{Line: 2, Class: "10Б", Weekday: "пн", Start: "9:00", End: "9:40", Name: "Геометрия", Room: "14", Teacher: "Сидорова"},
		{Line: 3, Class: "10Б", Weekday: "ср", Start: "9:00", End: "9:40", Name: "Chess", Room: "1", Teacher: "Sidorova"},
		{Line: 4, Class: "10Б", Weekday: "ср", Start: "11:00", End: "11:40", Name: "Chess", Room: "1", Teacher: "Sidorova"},
		{Line: 5, Class: "9А", Weekday: "ср", Start: "9:00", End: "9:40", Name: "Chess", Room: "1", Teacher: "Sidorova"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, "no lesson starts at 11:00", report.Errors[0].Message)
	assert.Equal(t, "class not found", report.Errors[1].Message)

	require.Len(t, f.hotfixes.created, 2)
	monday := f.hotfixes.created[0]
	assert.Equal(t, int64(41), *monday.LessonID)
	assert.Equal(t, "2024-01-15", monday.ForDate.String())
	assert.Equal(t, "Геометрия", *monday.Name)
	assert.Equal(t, "14", *monday.Room)
	assert.True(t, *monday.IsExisting)
	assert.Equal(t, "2024-01-10", f.hotfixes.created[1].ForDate.String())
	assert.Equal(t, 2, f.metrics.rows["hotfixes/created"])
}

func TestParseClassName(t *testing.T) {
	number, letter, err := ParseClassName(" 10 б ")
	require.NoError(t, err)
	assert.Equal(t, 10, number)
	assert.Equal(t, "Б", letter)

	_, _, err = ParseClassName("10")
	assert.Error(t, err)
	_, _, err = ParseClassName("Б")
	assert.Error(t, err)
}

func TestParseWeekdayAndWeek(t *testing.T) {
	for raw, want := range map[string]int{"0": 0, "Суббота": 5, "sun": 6, " Thursday ": 3, "пт": 4} {
		got, err := ParseWeekday(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseWeekday("7")
	assert.Error(t, err)

	week, err := ParseWeek("")
	require.NoError(t, err)
	assert.Nil(t, week)
	week, err = ParseWeek("Чет")
	require.NoError(t, err)
	assert.False(t, *week)
	week, err = ParseWeek("нечет")
	require.NoError(t, err)
	assert.True(t, *week)
	_, err = ParseWeek("sometimes")
	assert.Error(t, err)
}

func TestTimetableReadRows(t *testing.T) {
	f := newTimetableFixture(wednesdayAfternoon)

	_, err := f.svc.ReadRows("timetable.pdf", strings.NewReader(""))
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	rows, err := f.svc.ReadRows("timetable.csv", strings.NewReader("class,weekday,start,end,name,room,teacher\n10Б,0,9:00,9:40,Algebra,12,Petrov\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Algebra", rows[0].Name)

	_, err = f.svc.ReadRows("timetable.csv", strings.NewReader("class,weekday\n10Б,0\n"))
	assert.Equal(t, appErrors.ErrUnprocessable.Code, appErrors.FromError(err).Code)
}
