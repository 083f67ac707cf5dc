package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	FindByName(ctx context.Context, name string) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateTeacherRequest captures teacher creation payload.
type CreateTeacherRequest struct {
	Name string `json:"name" validate:"required"`
}

// TeacherService manages teachers.
type TeacherService struct {
	repo      teacherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, logger: logger}
}

// List returns all teachers.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list teachers")
	}
	return teachers, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Internal(err, "failed to load teacher")
	}
	return teacher, nil
}

// Create registers a teacher.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher := &models.Teacher{Name: req.Name}
	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, appErrors.Internal(err, "failed to create teacher")
	}
	return teacher, nil
}

// Ensure returns the teacher with the given name, creating it when missing.
func (s *TeacherService) Ensure(ctx context.Context, name string) (*models.Teacher, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "teacher name is required")
	}
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, appErrors.Internal(err, "failed to load teacher")
	}
	teacher, err := s.Create(ctx, CreateTeacherRequest{Name: name})
	if err != nil {
		return nil, false, err
	}
	return teacher, true, nil
}

// Delete removes a teacher and their lessons.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete teacher")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return nil
}
