package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/timetable-api/internal/models"
)

const hotfixColumns = "hotfix_id, lesson_id, school_id, for_date, is_existing, name, start_time, end_time, room, teacher_id"

// HotfixRepository persists date-scoped lesson overrides.
type HotfixRepository struct {
	db *sqlx.DB
}

// NewHotfixRepository constructs a hotfix repository.
func NewHotfixRepository(db *sqlx.DB) *HotfixRepository {
	return &HotfixRepository{db: db}
}

// ListForLessons returns the hotfixes of day that reference one of lessonIDs, plus
// the whole-day rows of schoolID, in creation order.
func (r *HotfixRepository) ListForLessons(ctx context.Context, day models.Date, schoolID *int64, lessonIDs []int64) ([]models.LessonHotfix, error) {
	args := []interface{}{day}
	var scopes []string
	if len(lessonIDs) > 0 {
		args = append(args, pq.Array(lessonIDs))
		scopes = append(scopes, fmt.Sprintf("lesson_id = ANY($%d)", len(args)))
	}
	if schoolID != nil {
		args = append(args, *schoolID)
		scopes = append(scopes, fmt.Sprintf("(lesson_id IS NULL AND school_id = $%d)", len(args)))
	}
	if len(scopes) == 0 {
		return nil, nil
	}

	query := "SELECT " + hotfixColumns + " FROM lesson_hotfixes WHERE for_date = $1 AND (" + strings.Join(scopes, " OR ") + ") ORDER BY hotfix_id"
	var hotfixes []models.LessonHotfix
	if err := r.db.SelectContext(ctx, &hotfixes, query, args...); err != nil {
		return nil, fmt.Errorf("list lesson hotfixes: %w", err)
	}
	return hotfixes, nil
}

// ListBySchool returns every hotfix of day touching schoolID, either directly or through one of its lessons.
func (r *HotfixRepository) ListBySchool(ctx context.Context, day models.Date, schoolID int64) ([]models.LessonHotfix, error) {
	query := "SELECT " + hotfixColumns + ` FROM lesson_hotfixes
		WHERE for_date = $1 AND (school_id = $2 OR lesson_id IN (SELECT lesson_id FROM lessons WHERE school_id = $2))
		ORDER BY hotfix_id`
	var hotfixes []models.LessonHotfix
	if err := r.db.SelectContext(ctx, &hotfixes, query, day, schoolID); err != nil {
		return nil, fmt.Errorf("list school hotfixes: %w", err)
	}
	return hotfixes, nil
}

// FindByID returns a hotfix by id.
func (r *HotfixRepository) FindByID(ctx context.Context, id int64) (*models.LessonHotfix, error) {
	var hotfix models.LessonHotfix
	if err := r.db.GetContext(ctx, &hotfix, "SELECT "+hotfixColumns+" FROM lesson_hotfixes WHERE hotfix_id = $1", id); err != nil {
		return nil, err
	}
	return &hotfix, nil
}

// Create inserts a hotfix.
func (r *HotfixRepository) Create(ctx context.Context, hotfix *models.LessonHotfix) error {
	const query = `INSERT INTO lesson_hotfixes (lesson_id, school_id, for_date, is_existing, name, start_time, end_time, room, teacher_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING hotfix_id`
	if err := r.db.QueryRowxContext(ctx, query,
		hotfix.LessonID, hotfix.SchoolID, hotfix.ForDate, hotfix.IsExisting,
		hotfix.Name, hotfix.StartTime, hotfix.EndTime, hotfix.Room, hotfix.TeacherID,
	).Scan(&hotfix.ID); err != nil {
		return insertError("create lesson hotfix", err)
	}
	return nil
}

// Delete removes a hotfix.
func (r *HotfixRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lesson_hotfixes WHERE hotfix_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete lesson hotfix: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete lesson hotfix rows affected: %w", err)
	}
	return affected > 0, nil
}
