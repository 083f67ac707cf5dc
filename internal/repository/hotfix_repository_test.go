package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
)

var hotfixRowColumns = []string{"hotfix_id", "lesson_id", "school_id", "for_date", "is_existing", "name", "start_time", "end_time", "room", "teacher_id"}

func TestHotfixRepositoryListForLessons(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHotfixRepository(db)

	day := models.NewDate(2024, 1, 10)
	schoolID := int64(1)
	rows := sqlmock.NewRows(hotfixRowColumns).
		AddRow(int64(1), int64(11), nil, "2024-01-10", true, nil, nil, nil, "14", nil).
		AddRow(int64(2), nil, int64(1), "2024-01-10", true, nil, nil, nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE for_date = $1 AND (lesson_id = ANY($2) OR (lesson_id IS NULL AND school_id = $3)) ORDER BY hotfix_id")).
		WithArgs("2024-01-10", "{11,12}", int64(1)).
		WillReturnRows(rows)

	hotfixes, err := repo.ListForLessons(context.Background(), day, &schoolID, []int64{11, 12})
	require.NoError(t, err)
	require.Len(t, hotfixes, 2)
	require.NotNil(t, hotfixes[0].Room)
	assert.Equal(t, "14", *hotfixes[0].Room)
	assert.True(t, hotfixes[0].Targets(11))
	assert.Nil(t, hotfixes[1].LessonID)
	assert.False(t, hotfixes[1].CancelsDay())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotfixRepositoryListForLessonsWithoutScope(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHotfixRepository(db)

	hotfixes, err := repo.ListForLessons(context.Background(), models.NewDate(2024, 1, 10), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, hotfixes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotfixRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHotfixRepository(db)

	schoolID := int64(1)
	mock.ExpectQuery("INSERT INTO lesson_hotfixes").
		WithArgs(nil, int64(1), "2024-01-10", false, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"hotfix_id"}).AddRow(int64(9)))

	hotfix := &models.LessonHotfix{SchoolID: &schoolID, ForDate: models.NewDate(2024, 1, 10)}
	require.NoError(t, repo.Create(context.Background(), hotfix))
	assert.Equal(t, int64(9), hotfix.ID)
	assert.True(t, hotfix.CancelsDay())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSemesterRepositoryFindCurrent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSemesterRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE school_id = $1 AND start_date <= $2 AND end_date >= $2 ORDER BY start_date DESC LIMIT 1")).
		WithArgs(int64(1), "2024-01-10").
		WillReturnRows(sqlmock.NewRows([]string{"semester_id", "school_id", "start_date", "end_date", "week_reverse"}).
			AddRow(int64(2), int64(1), "2024-01-08", "2024-05-31", false))

	semester, err := repo.FindCurrent(context.Background(), 1, models.NewDate(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", semester.StartDate.String())
	require.NotNil(t, semester.WeekReverse)
	assert.False(t, *semester.WeekReverse)
	assert.True(t, semester.Contains(models.NewDate(2024, 5, 31)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
