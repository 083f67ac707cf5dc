package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ListBySchool returns the classes of a school ordered by number and letter.
func (r *ClassRepository) ListBySchool(ctx context.Context, schoolID int64) ([]models.Class, error) {
	const query = `SELECT class_id, school_id, number, letter FROM classes WHERE school_id = $1 ORDER BY number, letter`
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, query, schoolID); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByID returns a class record by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	const query = `SELECT class_id, school_id, number, letter FROM classes WHERE class_id = $1`
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, err
	}
	return &class, nil
}

// FindByKey looks a class up by (school_id, number, letter).
func (r *ClassRepository) FindByKey(ctx context.Context, schoolID int64, number int, letter string) (*models.Class, error) {
	const query = `SELECT class_id, school_id, number, letter FROM classes WHERE school_id = $1 AND number = $2 AND letter = $3`
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, schoolID, number, letter); err != nil {
		return nil, err
	}
	return &class, nil
}

// Create persists a class record.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	const query = `INSERT INTO classes (school_id, number, letter) VALUES ($1, $2, $3) RETURNING class_id`
	if err := r.db.QueryRowxContext(ctx, query, class.SchoolID, class.Number, class.Letter).Scan(&class.ID); err != nil {
		return insertError("create class", err)
	}
	return nil
}

// Delete removes a class record.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE class_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete class: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete class rows affected: %w", err)
	}
	return affected > 0, nil
}
