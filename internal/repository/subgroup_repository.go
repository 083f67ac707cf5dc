package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

// SubgroupRepository manages persistence for class subgroups.
type SubgroupRepository struct {
	db *sqlx.DB
}

// NewSubgroupRepository constructs a subgroup repository.
func NewSubgroupRepository(db *sqlx.DB) *SubgroupRepository {
	return &SubgroupRepository{db: db}
}

// ListByClass returns subgroups of a class.
func (r *SubgroupRepository) ListByClass(ctx context.Context, classID int64) ([]models.Subgroup, error) {
	const query = `SELECT subgroup_id, class_id, name FROM subgroups WHERE class_id = $1 ORDER BY subgroup_id`
	var subgroups []models.Subgroup
	if err := r.db.SelectContext(ctx, &subgroups, query, classID); err != nil {
		return nil, fmt.Errorf("list subgroups: %w", err)
	}
	return subgroups, nil
}

// FindByID returns a subgroup by id.
func (r *SubgroupRepository) FindByID(ctx context.Context, id int64) (*models.Subgroup, error) {
	const query = `SELECT subgroup_id, class_id, name FROM subgroups WHERE subgroup_id = $1`
	var subgroup models.Subgroup
	if err := r.db.GetContext(ctx, &subgroup, query, id); err != nil {
		return nil, err
	}
	return &subgroup, nil
}

// FindByKey looks a subgroup up by (class_id, name).
func (r *SubgroupRepository) FindByKey(ctx context.Context, classID int64, name string) (*models.Subgroup, error) {
	const query = `SELECT subgroup_id, class_id, name FROM subgroups WHERE class_id = $1 AND name = $2`
	var subgroup models.Subgroup
	if err := r.db.GetContext(ctx, &subgroup, query, classID, name); err != nil {
		return nil, err
	}
	return &subgroup, nil
}

// Create inserts a subgroup.
func (r *SubgroupRepository) Create(ctx context.Context, subgroup *models.Subgroup) error {
	const query = `INSERT INTO subgroups (class_id, name) VALUES ($1, $2) RETURNING subgroup_id`
	if err := r.db.QueryRowxContext(ctx, query, subgroup.ClassID, subgroup.Name).Scan(&subgroup.ID); err != nil {
		return insertError("create subgroup", err)
	}
	return nil
}

// Delete removes a subgroup.
func (r *SubgroupRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subgroups WHERE subgroup_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete subgroup: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete subgroup rows affected: %w", err)
	}
	return affected > 0, nil
}
