package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

const semesterColumns = "semester_id, school_id, start_date, end_date, week_reverse"

// SemesterRepository manages persistence for semesters.
type SemesterRepository struct {
	db *sqlx.DB
}

// NewSemesterRepository constructs a semester repository.
func NewSemesterRepository(db *sqlx.DB) *SemesterRepository {
	return &SemesterRepository{db: db}
}

// List returns semesters, optionally restricted to one school.
func (r *SemesterRepository) List(ctx context.Context, schoolID *int64) ([]models.Semester, error) {
	query := "SELECT " + semesterColumns + " FROM semesters"
	var args []interface{}
	if schoolID != nil {
		query += " WHERE school_id = $1"
		args = append(args, *schoolID)
	}
	query += " ORDER BY start_date"

	var semesters []models.Semester
	if err := r.db.SelectContext(ctx, &semesters, query, args...); err != nil {
		return nil, fmt.Errorf("list semesters: %w", err)
	}
	return semesters, nil
}

// FindByID returns a semester by id.
func (r *SemesterRepository) FindByID(ctx context.Context, id int64) (*models.Semester, error) {
	var semester models.Semester
	if err := r.db.GetContext(ctx, &semester, "SELECT "+semesterColumns+" FROM semesters WHERE semester_id = $1", id); err != nil {
		return nil, err
	}
	return &semester, nil
}

// FindByKey looks a semester up by (school_id, start_date, end_date).
func (r *SemesterRepository) FindByKey(ctx context.Context, schoolID int64, start, end models.Date) (*models.Semester, error) {
	var semester models.Semester
	query := "SELECT " + semesterColumns + " FROM semesters WHERE school_id = $1 AND start_date = $2 AND end_date = $3"
	if err := r.db.GetContext(ctx, &semester, query, schoolID, start, end); err != nil {
		return nil, err
	}
	return &semester, nil
}

// FindCurrent returns the school's semester containing the given day.
func (r *SemesterRepository) FindCurrent(ctx context.Context, schoolID int64, day models.Date) (*models.Semester, error) {
	var semester models.Semester
	query := "SELECT " + semesterColumns + " FROM semesters WHERE school_id = $1 AND start_date <= $2 AND end_date >= $2 ORDER BY start_date DESC LIMIT 1"
	if err := r.db.GetContext(ctx, &semester, query, schoolID, day); err != nil {
		return nil, err
	}
	return &semester, nil
}

// Create inserts a semester.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	const query = `INSERT INTO semesters (school_id, start_date, end_date, week_reverse) VALUES ($1, $2, $3, $4) RETURNING semester_id`
	if err := r.db.QueryRowxContext(ctx, query, semester.SchoolID, semester.StartDate, semester.EndDate, semester.WeekReverse).Scan(&semester.ID); err != nil {
		return insertError("create semester", err)
	}
	return nil
}

// Delete removes a semester.
func (r *SemesterRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM semesters WHERE semester_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete semester: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete semester rows affected: %w", err)
	}
	return affected > 0, nil
}
