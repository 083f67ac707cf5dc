package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

// TeacherRepository handles persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a teacher repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns all teachers ordered by name.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, `SELECT teacher_id, name FROM teachers ORDER BY name, teacher_id`); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by id.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, `SELECT teacher_id, name FROM teachers WHERE teacher_id = $1`, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindByName returns the oldest teacher with an exact name match.
func (r *TeacherRepository) FindByName(ctx context.Context, name string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, `SELECT teacher_id, name FROM teachers WHERE name = $1 ORDER BY teacher_id LIMIT 1`, name); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a teacher.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if err := r.db.QueryRowxContext(ctx, `INSERT INTO teachers (name) VALUES ($1) RETURNING teacher_id`, teacher.Name).Scan(&teacher.ID); err != nil {
		return insertError("create teacher", err)
	}
	return nil
}

// Delete removes a teacher; their lessons cascade.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE teacher_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete teacher: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete teacher rows affected: %w", err)
	}
	return affected > 0, nil
}
