package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type hotfixRepository interface {
	ListForLessons(ctx context.Context, day models.Date, schoolID *int64, lessonIDs []int64) ([]models.LessonHotfix, error)
	ListBySchool(ctx context.Context, day models.Date, schoolID int64) ([]models.LessonHotfix, error)
	FindByID(ctx context.Context, id int64) (*models.LessonHotfix, error)
	Create(ctx context.Context, hotfix *models.LessonHotfix) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type teacherLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
}

type lessonLookup interface {
	FindByID(ctx context.Context, id int64) (*models.LessonDetail, error)
}

type hotfixMetrics interface {
	ObserveHotfixOverlay(outcome string)
}

// CreateHotfixRequest describes a one-day override. Leaving LessonID empty with
// IsExisting false cancels the whole day of SchoolID.
type CreateHotfixRequest struct {
	LessonID   *int64            `json:"lesson_id" validate:"omitempty,gt=0"`
	SchoolID   *int64            `json:"school_id" validate:"omitempty,gt=0"`
	ForDate    models.Date       `json:"for_date"`
	IsExisting *bool             `json:"is_existing"`
	Name       *string           `json:"name" validate:"omitempty,min=1"`
	StartTime  *models.TimeOfDay `json:"start_time"`
	EndTime    *models.TimeOfDay `json:"end_time"`
	Room       *string           `json:"room"`
	TeacherID  *int64            `json:"teacher_id" validate:"omitempty,gt=0"`
}

// CancelsDay reports whether the request describes a whole-day cancellation.
func (r CreateHotfixRequest) CancelsDay() bool {
	return r.LessonID == nil && r.IsExisting != nil && !*r.IsExisting
}

// HotfixService stores hotfixes and overlays them on resolved lesson days.
type HotfixService struct {
	repo      hotfixRepository
	lessons   lessonLookup
	teachers  teacherLookup
	metrics   hotfixMetrics
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHotfixService constructs a HotfixService.
func NewHotfixService(repo hotfixRepository, lessons lessonLookup, teachers teacherLookup, metrics hotfixMetrics, validate *validator.Validate, logger *zap.Logger) *HotfixService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HotfixService{repo: repo, lessons: lessons, teachers: teachers, metrics: metrics, validator: validate, logger: logger}
}

// OverlayHotfixes applies the hotfixes of one date to that date's lessons.
// A whole-day cancellation empties the day. Otherwise every hotfix targeting a
// lesson patches it in order, and the last is_existing seen decides whether the
// lesson survives. Output keeps input order.
func OverlayHotfixes(lessons []models.LessonDetail, hotfixes []models.LessonHotfix) []models.LessonDetail {
	if cancelsDay(hotfixes) {
		return []models.LessonDetail{}
	}

	result := make([]models.LessonDetail, 0, len(lessons))
	for _, lesson := range lessons {
		patched := lesson
		existing := true
		for _, hotfix := range hotfixes {
			if !hotfix.Targets(lesson.ID) {
				continue
			}
			hotfix.Patch(&patched.Lesson)
			existing = hotfix.IsExisting
		}
		if existing {
			result = append(result, patched)
		}
	}
	return result
}

func cancelsDay(hotfixes []models.LessonHotfix) bool {
	for _, hotfix := range hotfixes {
		if hotfix.CancelsDay() {
			return true
		}
	}
	return false
}

// Apply loads the hotfixes of day for the lessons of schoolID and overlays them.
// Lessons whose teacher was replaced get the new teacher record.
func (s *HotfixService) Apply(ctx context.Context, schoolID int64, lessons []models.LessonDetail, day models.Date) ([]models.LessonDetail, error) {
	ids := make([]int64, 0, len(lessons))
	for _, lesson := range lessons {
		ids = append(ids, lesson.ID)
	}

	hotfixes, err := s.repo.ListForLessons(ctx, day, &schoolID, ids)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load hotfixes")
	}
	if len(hotfixes) == 0 {
		s.observe("untouched")
		return lessons, nil
	}
	if cancelsDay(hotfixes) {
		s.logger.Info("school day cancelled", zap.Int64("school_id", schoolID), zap.String("date", day.String()))
		s.observe("cancelled_day")
		return []models.LessonDetail{}, nil
	}

	result := OverlayHotfixes(lessons, hotfixes)
	teachers := make(map[int64]models.Teacher)
	for i := range result {
		if result[i].TeacherID == result[i].Teacher.ID {
			continue
		}
		teacher, ok := teachers[result[i].TeacherID]
		if !ok {
			found, err := s.teachers.FindByID(ctx, result[i].TeacherID)
			if err != nil {
				if err != sql.ErrNoRows {
					return nil, appErrors.Internal(err, "failed to load replacement teacher")
				}
				s.logger.Warn("hotfix references unknown teacher", zap.Int64("teacher_id", result[i].TeacherID))
				found = &models.Teacher{ID: result[i].TeacherID}
			}
			teacher = *found
			teachers[teacher.ID] = teacher
		}
		result[i].Teacher = teacher
	}
	s.observe("patched")
	return result, nil
}

func (s *HotfixService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveHotfixOverlay(outcome)
	}
}

// List returns the hotfixes of day for one school.
func (s *HotfixService) List(ctx context.Context, day models.Date, schoolID int64) ([]models.LessonHotfix, error) {
	hotfixes, err := s.repo.ListBySchool(ctx, day, schoolID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list hotfixes")
	}
	return hotfixes, nil
}

// Create validates and stores a hotfix.
func (s *HotfixService) Create(ctx context.Context, req CreateHotfixRequest) (*models.LessonHotfix, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid hotfix payload")
	}
	if req.ForDate.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "for_date is required")
	}

	hotfix := &models.LessonHotfix{
		LessonID:   req.LessonID,
		SchoolID:   req.SchoolID,
		ForDate:    req.ForDate,
		IsExisting: req.IsExisting == nil || *req.IsExisting,
		Name:       req.Name,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Room:       req.Room,
		TeacherID:  req.TeacherID,
	}

	if req.LessonID == nil {
		if hotfix.IsExisting {
			return nil, appErrors.Clone(appErrors.ErrValidation, "lesson_id is required unless the whole day is cancelled")
		}
		if req.SchoolID == nil {
			return nil, appErrors.Clone(appErrors.ErrUnprocessable, "school_id is required to cancel a whole day")
		}
	} else {
		lesson, err := s.lessons.FindByID(ctx, *req.LessonID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
			}
			return nil, appErrors.Internal(err, "failed to load lesson")
		}
		schoolID := lesson.SchoolID
		hotfix.SchoolID = &schoolID
	}

	if req.TeacherID != nil {
		if _, err := s.teachers.FindByID(ctx, *req.TeacherID); err != nil {
			if err == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
			}
			return nil, appErrors.Internal(err, "failed to load teacher")
		}
	}

	if err := s.repo.Create(ctx, hotfix); err != nil {
		return nil, appErrors.Internal(err, "failed to create hotfix")
	}
	return hotfix, nil
}

// Get returns a hotfix by id.
func (s *HotfixService) Get(ctx context.Context, id int64) (*models.LessonHotfix, error) {
	hotfix, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "hotfix not found")
		}
		return nil, appErrors.Internal(err, "failed to load hotfix")
	}
	return hotfix, nil
}

// Delete removes a hotfix.
func (s *HotfixService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete hotfix")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "hotfix not found")
	}
	return nil
}
