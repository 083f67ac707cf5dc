package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type schoolRepository interface {
	List(ctx context.Context) ([]models.School, error)
	FindByID(ctx context.Context, id int64) (*models.School, error)
	FindByNameAndAddress(ctx context.Context, name, address string) (*models.School, error)
	Create(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateSchoolRequest captures school creation payload.
type CreateSchoolRequest struct {
	Name              string `json:"name" validate:"required"`
	Address           string `json:"address" validate:"required"`
	IsUsingDoubleWeek bool   `json:"is_using_double_week"`
}

// SchoolService coordinates school operations.
type SchoolService struct {
	repo      schoolRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSchoolService constructs SchoolService.
func NewSchoolService(repo schoolRepository, validate *validator.Validate, logger *zap.Logger) *SchoolService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchoolService{repo: repo, validator: validate, logger: logger}
}

// List returns every school.
func (s *SchoolService) List(ctx context.Context) ([]models.School, error) {
	schools, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list schools")
	}
	return schools, nil
}

// Get returns a school by id.
func (s *SchoolService) Get(ctx context.Context, id int64) (*models.School, error) {
	school, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "school not found")
		}
		return nil, appErrors.Internal(err, "failed to load school")
	}
	return school, nil
}

// Create inserts a school or returns the one already registered under the same name and address.
func (s *SchoolService) Create(ctx context.Context, req CreateSchoolRequest) (*models.School, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid school payload")
	}
	school := &models.School{Name: req.Name, Address: req.Address, IsUsingDoubleWeek: req.IsUsingDoubleWeek}
	stored, created, err := insertOrFetch(school,
		func() error { return s.repo.Create(ctx, school) },
		func() (*models.School, error) { return s.repo.FindByNameAndAddress(ctx, req.Name, req.Address) },
	)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to create school")
	}
	return stored, created, nil
}

// Delete removes a school and everything it owns.
func (s *SchoolService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete school")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "school not found")
	}
	s.logger.Info("school deleted", zap.Int64("school_id", id))
	return nil
}
