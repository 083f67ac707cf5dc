package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

const schoolColumns = "school_id, name, address, is_using_double_week"

// SchoolRepository manages persistence for schools.
type SchoolRepository struct {
	db *sqlx.DB
}

// NewSchoolRepository constructs a school repository.
func NewSchoolRepository(db *sqlx.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// List returns every school ordered by id.
func (r *SchoolRepository) List(ctx context.Context) ([]models.School, error) {
	var schools []models.School
	if err := r.db.SelectContext(ctx, &schools, "SELECT "+schoolColumns+" FROM schools ORDER BY school_id"); err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return schools, nil
}

// FindByID returns a school by id.
func (r *SchoolRepository) FindByID(ctx context.Context, id int64) (*models.School, error) {
	var school models.School
	if err := r.db.GetContext(ctx, &school, "SELECT "+schoolColumns+" FROM schools WHERE school_id = $1", id); err != nil {
		return nil, err
	}
	return &school, nil
}

// FindByNameAndAddress looks a school up by its unique key.
func (r *SchoolRepository) FindByNameAndAddress(ctx context.Context, name, address string) (*models.School, error) {
	var school models.School
	if err := r.db.GetContext(ctx, &school, "SELECT "+schoolColumns+" FROM schools WHERE name = $1 AND address = $2", name, address); err != nil {
		return nil, err
	}
	return &school, nil
}

// Create inserts a school and fills its id.
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	const query = `INSERT INTO schools (name, address, is_using_double_week) VALUES ($1, $2, $3) RETURNING school_id`
	if err := r.db.QueryRowxContext(ctx, query, school.Name, school.Address, school.IsUsingDoubleWeek).Scan(&school.ID); err != nil {
		return insertError("create school", err)
	}
	return nil
}

// Delete removes a school; dependent rows cascade.
func (r *SchoolRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schools WHERE school_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete school: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete school rows affected: %w", err)
	}
	return affected > 0, nil
}
