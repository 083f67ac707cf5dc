package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/pkg/clock"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type semesterRepository interface {
	List(ctx context.Context, schoolID *int64) ([]models.Semester, error)
	FindByID(ctx context.Context, id int64) (*models.Semester, error)
	FindByKey(ctx context.Context, schoolID int64, start, end models.Date) (*models.Semester, error)
	FindCurrent(ctx context.Context, schoolID int64, day models.Date) (*models.Semester, error)
	Create(ctx context.Context, semester *models.Semester) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateSemesterRequest captures semester creation payload. WeekReverse is left
// empty for schools without alternating weeks.
type CreateSemesterRequest struct {
	SchoolID    int64       `json:"school_id" validate:"required,gt=0"`
	StartDate   models.Date `json:"start_date"`
	EndDate     models.Date `json:"end_date"`
	WeekReverse *bool       `json:"week_reverse"`
}

// SemesterService manages semesters and reports the current one.
type SemesterService struct {
	repo      semesterRepository
	schools   schoolLookup
	clock     clock.Clock
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSemesterService constructs SemesterService.
func NewSemesterService(repo semesterRepository, schools schoolLookup, clk clock.Clock, validate *validator.Validate, logger *zap.Logger) *SemesterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.NewSystem(nil)
	}
	return &SemesterService{repo: repo, schools: schools, clock: clk, validator: validate, logger: logger}
}

// List returns semesters, optionally of one school.
func (s *SemesterService) List(ctx context.Context, schoolID *int64) ([]models.Semester, error) {
	semesters, err := s.repo.List(ctx, schoolID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list semesters")
	}
	return semesters, nil
}

// Get returns a semester by id.
func (s *SemesterService) Get(ctx context.Context, id int64) (*models.Semester, error) {
	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Internal(err, "failed to load semester")
	}
	return semester, nil
}

// Current returns the school's semester containing today with today's week parity.
func (s *SemesterService) Current(ctx context.Context, schoolID int64) (*models.CurrentSemester, error) {
	today := models.DateOf(s.clock.Now())
	semester, err := s.repo.FindCurrent(ctx, schoolID, today)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no active semester")
		}
		return nil, appErrors.Internal(err, "failed to load current semester")
	}
	return &models.CurrentSemester{Semester: *semester, IsOddWeek: WeekParity(*semester, today)}, nil
}

// Create inserts a semester or returns the one with the same school and dates.
func (s *SemesterService) Create(ctx context.Context, req CreateSemesterRequest) (*models.Semester, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester payload")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "start_date and end_date are required")
	}
	if req.EndDate.DaysSince(req.StartDate) < 0 {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "end_date must not precede start_date")
	}
	if _, err := s.schools.FindByID(ctx, req.SchoolID); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "school not found")
		}
		return nil, false, appErrors.Internal(err, "failed to load school")
	}

	semester := &models.Semester{SchoolID: req.SchoolID, StartDate: req.StartDate, EndDate: req.EndDate, WeekReverse: req.WeekReverse}
	stored, created, err := insertOrFetch(semester,
		func() error { return s.repo.Create(ctx, semester) },
		func() (*models.Semester, error) { return s.repo.FindByKey(ctx, req.SchoolID, req.StartDate, req.EndDate) },
	)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to create semester")
	}
	return stored, created, nil
}

// Delete removes a semester.
func (s *SemesterService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete semester")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}
	return nil
}
