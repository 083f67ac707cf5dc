package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
)

func TestTeacherRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"teacher_id", "name"}).
		AddRow(int64(2), "Ivanova A.P.").
		AddRow(int64(1), "Petrov S.S.")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT teacher_id, name FROM teachers ORDER BY name, teacher_id")).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ivanova A.P.", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryFindByName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teachers WHERE name = $1 ORDER BY teacher_id LIMIT 1")).
		WithArgs("Petrov S.S.").
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id", "name"}).AddRow(int64(1), "Petrov S.S."))
	mock.ExpectQuery(regexp.QuoteMeta("FROM teachers WHERE name = $1")).
		WithArgs("Nobody").
		WillReturnError(sql.ErrNoRows)

	teacher, err := repo.FindByName(context.Background(), "Petrov S.S.")
	require.NoError(t, err)
	assert.Equal(t, int64(1), teacher.ID)

	_, err = repo.FindByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreateAndDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO teachers (name) VALUES ($1) RETURNING teacher_id")).
		WithArgs("Sidorova E.V.").
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id"}).AddRow(int64(4)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM teachers WHERE teacher_id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	teacher := &models.Teacher{Name: "Sidorova E.V."}
	require.NoError(t, repo.Create(context.Background(), teacher))
	assert.Equal(t, int64(4), teacher.ID)

	found, err := repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
