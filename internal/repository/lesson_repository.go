package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

const lessonDetailSelect = `SELECT l.lesson_id, l.school_id, l.name, l.start_time, l.end_time, l.weekday, l.is_odd_week, l.room, l.teacher_id,
	t.teacher_id AS "teacher.teacher_id", t.name AS "teacher.name"
	FROM lessons l
	JOIN teachers t ON t.teacher_id = l.teacher_id`

const lessonColumns = "lesson_id, school_id, name, start_time, end_time, weekday, is_odd_week, room, teacher_id"

// LessonRepository manages lessons and their subgroup links.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs a lesson repository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// List returns lessons joined with their teacher, ordered by start time then id.
// A lesson shared by several subgroups of a class is returned once.
func (r *LessonRepository) List(ctx context.Context, filter models.LessonFilter) ([]models.LessonDetail, error) {
	var (
		conditions []string
		args       []interface{}
	)
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ClassID != nil {
		conditions = append(conditions, "l.lesson_id IN (SELECT ls.lesson_id FROM lesson_subgroups ls JOIN subgroups s ON s.subgroup_id = ls.subgroup_id WHERE s.class_id = "+next(*filter.ClassID)+")")
	}
	if filter.SubgroupID != nil {
		conditions = append(conditions, "l.lesson_id IN (SELECT ls.lesson_id FROM lesson_subgroups ls WHERE ls.subgroup_id = "+next(*filter.SubgroupID)+")")
	}
	if filter.TeacherID != nil {
		conditions = append(conditions, "l.teacher_id = "+next(*filter.TeacherID))
	}
	if filter.Weekday != nil {
		conditions = append(conditions, "l.weekday = "+next(*filter.Weekday))
	}
	if filter.IsOddWeek != nil {
		conditions = append(conditions, "(l.is_odd_week IS NULL OR l.is_odd_week = "+next(*filter.IsOddWeek)+")")
	}

	query := lessonDetailSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.start_time, l.lesson_id"

	var lessons []models.LessonDetail
	if err := r.db.SelectContext(ctx, &lessons, query, args...); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

// FindByID returns a lesson with its teacher.
func (r *LessonRepository) FindByID(ctx context.Context, id int64) (*models.LessonDetail, error) {
	var lesson models.LessonDetail
	if err := r.db.GetContext(ctx, &lesson, lessonDetailSelect+" WHERE l.lesson_id = $1", id); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// FindByKey looks a lesson up by its unique (name, start_time, end_time, weekday, room, school_id, teacher_id) tuple.
// is_odd_week is not part of the key.
func (r *LessonRepository) FindByKey(ctx context.Context, lesson models.Lesson) (*models.Lesson, error) {
	const query = "SELECT " + lessonColumns + ` FROM lessons
		WHERE name = $1 AND start_time = $2 AND end_time = $3 AND weekday = $4 AND room = $5 AND school_id = $6 AND teacher_id = $7`
	var found models.Lesson
	if err := r.db.GetContext(ctx, &found, query,
		lesson.Name, lesson.StartTime, lesson.EndTime, lesson.Weekday, lesson.Room, lesson.SchoolID, lesson.TeacherID,
	); err != nil {
		return nil, err
	}
	return &found, nil
}

// Create inserts a lesson.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	const query = `INSERT INTO lessons (school_id, name, start_time, end_time, weekday, is_odd_week, room, teacher_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING lesson_id`
	if err := r.db.QueryRowxContext(ctx, query,
		lesson.SchoolID, lesson.Name, lesson.StartTime, lesson.EndTime, lesson.Weekday, lesson.IsOddWeek, lesson.Room, lesson.TeacherID,
	).Scan(&lesson.ID); err != nil {
		return insertError("create lesson", err)
	}
	return nil
}

// AddSubgroup links a lesson to a subgroup.
func (r *LessonRepository) AddSubgroup(ctx context.Context, link models.LessonSubgroup) error {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO lesson_subgroups (lesson_id, subgroup_id) VALUES ($1, $2)`, link.LessonID, link.SubgroupID); err != nil {
		return insertError("link lesson subgroup", err)
	}
	return nil
}

// Delete removes a lesson together with its subgroup links and hotfixes.
func (r *LessonRepository) Delete(ctx context.Context, id int64) (found bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete lesson: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM lesson_subgroups WHERE lesson_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete lesson subgroups: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM lesson_hotfixes WHERE lesson_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete lesson hotfixes: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM lessons WHERE lesson_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete lesson: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete lesson rows affected: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete lesson: %w", err)
	}
	return affected > 0, nil
}
