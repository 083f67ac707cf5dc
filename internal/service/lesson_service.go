package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/pkg/clock"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

// searchWindow bounds the nearest-day search to one week of candidate days.
const searchWindow = 7

type lessonRepository interface {
	List(ctx context.Context, filter models.LessonFilter) ([]models.LessonDetail, error)
	FindByID(ctx context.Context, id int64) (*models.LessonDetail, error)
	FindByKey(ctx context.Context, lesson models.Lesson) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	AddSubgroup(ctx context.Context, link models.LessonSubgroup) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type schoolLookup interface {
	FindByID(ctx context.Context, id int64) (*models.School, error)
}

type classLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Class, error)
}

type subgroupLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Subgroup, error)
}

type semesterLookup interface {
	FindCurrent(ctx context.Context, schoolID int64, day models.Date) (*models.Semester, error)
}

type hotfixOverlay interface {
	Apply(ctx context.Context, schoolID int64, lessons []models.LessonDetail, day models.Date) ([]models.LessonDetail, error)
}

type searchMetrics interface {
	ObserveNearestSearch(days int, found bool)
}

// Scope selects the lessons attended by a class, a subgroup, or both.
type Scope struct {
	ClassID    *int64 `form:"class_id" json:"class_id"`
	SubgroupID *int64 `form:"subgroup_id" json:"subgroup_id"`
}

func (s Scope) validate() error {
	if s.ClassID == nil && s.SubgroupID == nil {
		return appErrors.Clone(appErrors.ErrValidation, "class_id or subgroup_id is required")
	}
	return nil
}

// LessonQuery filters the lesson list.
type LessonQuery struct {
	Scope
	TeacherID *int64 `form:"teacher_id"`
	IsOddWeek *bool  `form:"is_odd_week"`
	Weekday   *int   `form:"weekday" binding:"omitempty,min=0,max=6"`
}

// DayQuery resolves the lessons of a single day.
type DayQuery struct {
	Scope
	TeacherID *int64 `form:"teacher_id"`
	Double    bool   `form:"double"`
}

// CreateLessonRequest captures lesson creation payload.
type CreateLessonRequest struct {
	SchoolID  int64            `json:"school_id" validate:"required,gt=0"`
	Name      string           `json:"name" validate:"required"`
	StartTime models.TimeOfDay `json:"start_time"`
	EndTime   models.TimeOfDay `json:"end_time"`
	Weekday   int              `json:"weekday" validate:"min=0,max=6"`
	IsOddWeek *bool            `json:"is_odd_week"`
	Room      string           `json:"room" validate:"required"`
	TeacherID int64            `json:"teacher_id" validate:"required,gt=0"`
}

// LinkSubgroupRequest attaches a lesson to a subgroup.
type LinkSubgroupRequest struct {
	LessonID   int64 `json:"lesson_id" validate:"required,gt=0"`
	SubgroupID int64 `json:"subgroup_id" validate:"required,gt=0"`
}

// LessonService answers lesson queries and resolves lesson days.
type LessonService struct {
	repo      lessonRepository
	schools   schoolLookup
	classes   classLookup
	subgroups subgroupLookup
	teachers  teacherLookup
	semesters semesterLookup
	hotfixes  hotfixOverlay
	metrics   searchMetrics
	clock     clock.Clock
	validator *validator.Validate
	logger    *zap.Logger
}

// LessonServiceDeps groups the collaborators of LessonService.
type LessonServiceDeps struct {
	Lessons   lessonRepository
	Schools   schoolLookup
	Classes   classLookup
	Subgroups subgroupLookup
	Teachers  teacherLookup
	Semesters semesterLookup
	Hotfixes  hotfixOverlay
	Metrics   searchMetrics
	Clock     clock.Clock
}

// NewLessonService constructs LessonService.
func NewLessonService(deps LessonServiceDeps, validate *validator.Validate, logger *zap.Logger) *LessonService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = clock.NewSystem(nil)
	}
	return &LessonService{
		repo:      deps.Lessons,
		schools:   deps.Schools,
		classes:   deps.Classes,
		subgroups: deps.Subgroups,
		teachers:  deps.Teachers,
		semesters: deps.Semesters,
		hotfixes:  deps.Hotfixes,
		metrics:   deps.Metrics,
		clock:     deps.Clock,
		validator: validate,
		logger:    logger,
	}
}

// List returns the scope's lessons ordered by start time. An empty result,
// including when the school has no active semester, is reported as not found.
func (s *LessonService) List(ctx context.Context, q LessonQuery) ([]models.LessonDetail, error) {
	if err := q.Scope.validate(); err != nil {
		return nil, err
	}
	if q.Weekday != nil && (*q.Weekday < 0 || *q.Weekday > 6) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "weekday must be between 0 and 6")
	}
	schoolID, err := s.resolveSchool(ctx, q.Scope)
	if err != nil {
		return nil, err
	}
	if _, err := s.currentSemester(ctx, schoolID, models.DateOf(s.clock.Now())); err != nil {
		if appErrors.FromError(err).Code == appErrors.ErrNotFound.Code {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "lessons not found")
		}
		return nil, err
	}

	lessons, err := s.repo.List(ctx, models.LessonFilter{
		ClassID:    q.ClassID,
		SubgroupID: q.SubgroupID,
		TeacherID:  q.TeacherID,
		Weekday:    q.Weekday,
		IsOddWeek:  q.IsOddWeek,
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list lessons")
	}
	if len(lessons) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "lessons not found")
	}
	return lessons, nil
}

// Nearest returns the first day, from today forward, on which the scope still has
// lessons after hotfixes. Today counts only while its last lesson has not ended.
// At most one week of candidate days is examined.
func (s *LessonService) Nearest(ctx context.Context, q DayQuery) (*models.DayLessons, error) {
	if err := q.Scope.validate(); err != nil {
		return nil, err
	}
	schoolID, err := s.resolveSchool(ctx, q.Scope)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	today := models.DateOf(now)
	semester, err := s.currentSemester(ctx, schoolID, today)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx, models.LessonFilter{ClassID: q.ClassID, SubgroupID: q.SubgroupID, TeacherID: q.TeacherID})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list lessons")
	}

	examined := 0
	for offset := 0; offset < searchWindow; offset++ {
		day := today.AddDays(offset)
		examined++
		if !semester.Contains(day) {
			continue
		}
		parity := WeekParity(*semester, day)
		candidates := lessonsOn(all, day.Weekday(), parity)
		if len(candidates) == 0 {
			continue
		}
		if offset == 0 && concluded(candidates, now) {
			continue
		}
		resolved, err := s.hotfixes.Apply(ctx, schoolID, candidates, day)
		if err != nil {
			return nil, err
		}
		if len(resolved) == 0 {
			continue
		}
		s.observeSearch(examined, true)
		return presentDay(day, parity, resolved, q.Double), nil
	}

	s.observeSearch(examined, false)
	s.logger.Info("nearest lesson day not found",
		zap.Int64("school_id", schoolID),
		zap.String("from", today.String()),
		zap.Int("candidate_days", examined),
	)
	return nil, appErrors.Clone(appErrors.ErrNotFound, "no lessons in the coming week")
}

// Today returns today's lessons after hotfixes.
func (s *LessonService) Today(ctx context.Context, q DayQuery) (*models.DayLessons, error) {
	return s.onDate(ctx, q, func(today models.Date) models.Date { return today })
}

// OnWeekday returns the lessons of the next occurrence of weekday, today included.
func (s *LessonService) OnWeekday(ctx context.Context, q DayQuery, weekday int) (*models.DayLessons, error) {
	if weekday < 0 || weekday > 6 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "weekday must be between 0 and 6")
	}
	return s.onDate(ctx, q, func(today models.Date) models.Date {
		return today.AddDays(positiveMod(weekday-today.Weekday(), 7))
	})
}

func (s *LessonService) onDate(ctx context.Context, q DayQuery, pick func(today models.Date) models.Date) (*models.DayLessons, error) {
	if err := q.Scope.validate(); err != nil {
		return nil, err
	}
	schoolID, err := s.resolveSchool(ctx, q.Scope)
	if err != nil {
		return nil, err
	}
	today := models.DateOf(s.clock.Now())
	semester, err := s.currentSemester(ctx, schoolID, today)
	if err != nil {
		return nil, err
	}

	day := pick(today)
	if !semester.Contains(day) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no lessons on "+day.String())
	}
	parity := WeekParity(*semester, day)
	weekday := day.Weekday()
	lessons, err := s.repo.List(ctx, models.LessonFilter{
		ClassID:    q.ClassID,
		SubgroupID: q.SubgroupID,
		TeacherID:  q.TeacherID,
		Weekday:    &weekday,
		IsOddWeek:  parity,
	})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list lessons")
	}
	if len(lessons) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no lessons on "+day.String())
	}

	resolved, err := s.hotfixes.Apply(ctx, schoolID, lessons, day)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no lessons on "+day.String())
	}
	return presentDay(day, parity, resolved, q.Double), nil
}

// lessonsOn keeps the lessons of weekday active in a week of the given parity.
func lessonsOn(lessons []models.LessonDetail, weekday int, parity *bool) []models.LessonDetail {
	var out []models.LessonDetail
	for _, lesson := range lessons {
		if lesson.Weekday != weekday {
			continue
		}
		if parity != nil && !lesson.RunsInWeek(*parity) {
			continue
		}
		out = append(out, lesson)
	}
	return out
}

// concluded reports whether the last lesson of the day has already ended at now.
func concluded(lessons []models.LessonDetail, now time.Time) bool {
	last := lessons[len(lessons)-1]
	return !models.NewTimeOfDay(now.Hour(), now.Minute()).Before(last.EndTime)
}

func presentDay(day models.Date, parity *bool, lessons []models.LessonDetail, double bool) *models.DayLessons {
	out := &models.DayLessons{Date: day, Weekday: day.Weekday(), IsOddWeek: parity}
	if double {
		out.DoubleLessons = MergeDoubles(lessons)
	} else {
		out.Lessons = lessons
	}
	return out
}

func (s *LessonService) observeSearch(days int, found bool) {
	if s.metrics != nil {
		s.metrics.ObserveNearestSearch(days, found)
	}
}

func (s *LessonService) currentSemester(ctx context.Context, schoolID int64, today models.Date) (*models.Semester, error) {
	semester, err := s.semesters.FindCurrent(ctx, schoolID, today)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no active semester")
		}
		return nil, appErrors.Internal(err, "failed to load current semester")
	}
	return semester, nil
}

// resolveSchool finds the school owning the scope, preferring the subgroup.
func (s *LessonService) resolveSchool(ctx context.Context, scope Scope) (int64, error) {
	classID := scope.ClassID
	if scope.SubgroupID != nil {
		subgroup, err := s.subgroups.FindByID(ctx, *scope.SubgroupID)
		if err != nil {
			if err == sql.ErrNoRows {
				return 0, appErrors.Clone(appErrors.ErrNotFound, "subgroup not found")
			}
			return 0, appErrors.Internal(err, "failed to load subgroup")
		}
		classID = &subgroup.ClassID
	}
	class, err := s.classes.FindByID(ctx, *classID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return 0, appErrors.Internal(err, "failed to load class")
	}
	return class.SchoolID, nil
}

// Get returns a lesson with its teacher.
func (s *LessonService) Get(ctx context.Context, id int64) (*models.LessonDetail, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
		}
		return nil, appErrors.Internal(err, "failed to load lesson")
	}
	return lesson, nil
}

// Create inserts a lesson or returns the identical one already stored.
func (s *LessonService) Create(ctx context.Context, req CreateLessonRequest) (*models.Lesson, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "start_time must be before end_time")
	}
	if _, err := s.schools.FindByID(ctx, req.SchoolID); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "school not found")
		}
		return nil, false, appErrors.Internal(err, "failed to load school")
	}
	if _, err := s.teachers.FindByID(ctx, req.TeacherID); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, false, appErrors.Internal(err, "failed to load teacher")
	}

	lesson := &models.Lesson{
		SchoolID:  req.SchoolID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Weekday:   req.Weekday,
		IsOddWeek: req.IsOddWeek,
		Room:      req.Room,
		TeacherID: req.TeacherID,
	}
	stored, created, err := insertOrFetch(lesson,
		func() error { return s.repo.Create(ctx, lesson) },
		func() (*models.Lesson, error) { return s.repo.FindByKey(ctx, *lesson) },
	)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to create lesson")
	}
	if !created {
		s.logger.Debug("lesson already exists", zap.Int64("lesson_id", stored.ID))
	}
	return stored, created, nil
}

// AddSubgroup links a lesson to a subgroup; linking twice is not an error.
func (s *LessonService) AddSubgroup(ctx context.Context, req LinkSubgroupRequest) (*models.LessonSubgroup, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson subgroup payload")
	}
	if _, err := s.Get(ctx, req.LessonID); err != nil {
		return nil, false, err
	}
	if _, err := s.subgroups.FindByID(ctx, req.SubgroupID); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "subgroup not found")
		}
		return nil, false, appErrors.Internal(err, "failed to load subgroup")
	}

	link := &models.LessonSubgroup{LessonID: req.LessonID, SubgroupID: req.SubgroupID}
	stored, created, err := insertOrFetch(link,
		func() error { return s.repo.AddSubgroup(ctx, *link) },
		func() (*models.LessonSubgroup, error) { return link, nil },
	)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to link lesson to subgroup")
	}
	return stored, created, nil
}

// Delete removes a lesson.
func (s *LessonService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete lesson")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	return nil
}
