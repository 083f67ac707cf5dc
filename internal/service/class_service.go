package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type classRepository interface {
	ListBySchool(ctx context.Context, schoolID int64) ([]models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	FindByKey(ctx context.Context, schoolID int64, number int, letter string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type subgroupRepository interface {
	ListByClass(ctx context.Context, classID int64) ([]models.Subgroup, error)
	FindByID(ctx context.Context, id int64) (*models.Subgroup, error)
	FindByKey(ctx context.Context, classID int64, name string) (*models.Subgroup, error)
	Create(ctx context.Context, subgroup *models.Subgroup) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateClassRequest captures creation payload.
type CreateClassRequest struct {
	SchoolID int64  `json:"school_id" validate:"required,gt=0"`
	Number   int    `json:"number" validate:"required,min=1,max=11"`
	Letter   string `json:"letter" validate:"required,max=2"`
}

// CreateSubgroupRequest captures subgroup creation payload.
type CreateSubgroupRequest struct {
	ClassID int64  `json:"class_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required"`
}

// ClassService coordinates classes and their subgroups.
type ClassService struct {
	repo      classRepository
	subgroups subgroupRepository
	schools   schoolLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, subgroups subgroupRepository, schools schoolLookup, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, subgroups: subgroups, schools: schools, validator: validate, logger: logger}
}

// List returns the classes of a school.
func (s *ClassService) List(ctx context.Context, schoolID int64) ([]models.Class, error) {
	classes, err := s.repo.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list classes")
	}
	return classes, nil
}

// Get returns a class by id.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Internal(err, "failed to load class")
	}
	return class, nil
}

// FindByKey returns the class with the given school, number and letter.
func (s *ClassService) FindByKey(ctx context.Context, schoolID int64, number int, letter string) (*models.Class, error) {
	class, err := s.repo.FindByKey(ctx, schoolID, number, letter)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Internal(err, "failed to load class")
	}
	return class, nil
}

// Create inserts a class; a class with the same school, number and letter is returned as is.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	if _, err := s.schools.FindByID(ctx, req.SchoolID); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "school not found")
		}
		return nil, false, appErrors.Internal(err, "failed to load school")
	}

	class := &models.Class{SchoolID: req.SchoolID, Number: req.Number, Letter: req.Letter}
	stored, created, err := insertOrFetch(class,
		func() error { return s.repo.Create(ctx, class) },
		func() (*models.Class, error) { return s.repo.FindByKey(ctx, req.SchoolID, req.Number, req.Letter) },
	)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to create class")
	}
	if !created {
		s.logger.Debug("class already exists", zap.Int64("class_id", stored.ID))
	}
	return stored, created, nil
}

// Delete removes a class with its subgroups.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete class")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return nil
}

// ListSubgroups returns the subgroups of a class.
func (s *ClassService) ListSubgroups(ctx context.Context, classID int64) ([]models.Subgroup, error) {
	subgroups, err := s.subgroups.ListByClass(ctx, classID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list subgroups")
	}
	return subgroups, nil
}

// GetSubgroup returns a subgroup by id.
func (s *ClassService) GetSubgroup(ctx context.Context, id int64) (*models.Subgroup, error) {
	subgroup, err := s.subgroups.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subgroup not found")
		}
		return nil, appErrors.Internal(err, "failed to load subgroup")
	}
	return subgroup, nil
}

// FindSubgroup returns the subgroup of classID with the given name.
func (s *ClassService) FindSubgroup(ctx context.Context, classID int64, name string) (*models.Subgroup, error) {
	subgroup, err := s.subgroups.FindByKey(ctx, classID, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subgroup not found")
		}
		return nil, appErrors.Internal(err, "failed to load subgroup")
	}
	return subgroup, nil
}

// CreateSubgroup inserts a subgroup or returns the existing one with the same name.
func (s *ClassService) CreateSubgroup(ctx context.Context, req CreateSubgroupRequest) (*models.Subgroup, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subgroup payload")
	}
	if _, err := s.Get(ctx, req.ClassID); err != nil {
		return nil, false, err
	}

	subgroup := &models.Subgroup{ClassID: req.ClassID, Name: req.Name}
	stored, created, err := insertOrFetch(subgroup,
		func() error { return s.subgroups.Create(ctx, subgroup) },
		func() (*models.Subgroup, error) { return s.subgroups.FindByKey(ctx, req.ClassID, req.Name) },
	)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to create subgroup")
	}
	return stored, created, nil
}

// DeleteSubgroup removes a subgroup.
func (s *ClassService) DeleteSubgroup(ctx context.Context, id int64) error {
	found, err := s.subgroups.Delete(ctx, id)
	if err != nil {
		return appErrors.Internal(err, "failed to delete subgroup")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "subgroup not found")
	}
	return nil
}
