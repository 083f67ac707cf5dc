package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/repository"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type mockClassRepo struct {
	classes   []models.Class
	createErr error
	inserts   int
}

func (m *mockClassRepo) ListBySchool(ctx context.Context, schoolID int64) ([]models.Class, error) {
	var out []models.Class
	for _, class := range m.classes {
		if class.SchoolID == schoolID {
			out = append(out, class)
		}
	}
	return out, nil
}

func (m *mockClassRepo) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	for _, class := range m.classes {
		if class.ID == id {
			cp := class
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassRepo) FindByKey(ctx context.Context, schoolID int64, number int, letter string) (*models.Class, error) {
	for _, class := range m.classes {
		if class.SchoolID == schoolID && class.Number == number && class.Letter == letter {
			cp := class
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassRepo) Create(ctx context.Context, class *models.Class) error {
	m.inserts++
	if m.createErr != nil {
		return m.createErr
	}
	if _, err := m.FindByKey(ctx, class.SchoolID, class.Number, class.Letter); err == nil {
		return repository.ErrDuplicate
	}
	class.ID = int64(len(m.classes) + 1)
	m.classes = append(m.classes, *class)
	return nil
}

func (m *mockClassRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := m.FindByID(ctx, id)
	return err == nil, nil
}

type mockSubgroupRepo struct {
	subgroups []models.Subgroup
}

func (m *mockSubgroupRepo) ListByClass(ctx context.Context, classID int64) ([]models.Subgroup, error) {
	var out []models.Subgroup
	for _, subgroup := range m.subgroups {
		if subgroup.ClassID == classID {
			out = append(out, subgroup)
		}
	}
	return out, nil
}

func (m *mockSubgroupRepo) FindByID(ctx context.Context, id int64) (*models.Subgroup, error) {
	for _, subgroup := range m.subgroups {
		if subgroup.ID == id {
			cp := subgroup
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockSubgroupRepo) FindByKey(ctx context.Context, classID int64, name string) (*models.Subgroup, error) {
	for _, subgroup := range m.subgroups {
		if subgroup.ClassID == classID && subgroup.Name == name {
			cp := subgroup
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockSubgroupRepo) Create(ctx context.Context, subgroup *models.Subgroup) error {
	if _, err := m.FindByKey(ctx, subgroup.ClassID, subgroup.Name); err == nil {
		return repository.ErrDuplicate
	}
	subgroup.ID = int64(len(m.subgroups) + 1)
	m.subgroups = append(m.subgroups, *subgroup)
	return nil
}

func (m *mockSubgroupRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := m.FindByID(ctx, id)
	return err == nil, nil
}

func newClassService(repo *mockClassRepo, subgroups *mockSubgroupRepo) *ClassService {
	schools := &mockSchoolLookup{schools: map[int64]models.School{1: {ID: 1, Name: "Lyceum"}}}
	return NewClassService(repo, subgroups, schools, nil, nil)
}

func TestClassServiceCreateTwiceReturnsSameClass(t *testing.T) {
	repo := &mockClassRepo{}
	svc := newClassService(repo, &mockSubgroupRepo{})
	req := CreateClassRequest{SchoolID: 1, Number: 10, Letter: "B"}

	first, created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.classes, 1)
	assert.Equal(t, 2, repo.inserts)
}

func TestClassServiceCreateValidation(t *testing.T) {
	svc := newClassService(&mockClassRepo{}, &mockSubgroupRepo{})

	_, _, err := svc.Create(context.Background(), CreateClassRequest{SchoolID: 1, Number: 12, Letter: "B"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, _, err = svc.Create(context.Background(), CreateClassRequest{SchoolID: 2, Number: 10, Letter: "B"})
	require.Error(t, err)
	assert.Equal(t, "school not found", appErrors.FromError(err).Message)
}

func TestClassServiceCreateRepositoryFailure(t *testing.T) {
	svc := newClassService(&mockClassRepo{createErr: errors.New("connection reset")}, &mockSubgroupRepo{})

	_, _, err := svc.Create(context.Background(), CreateClassRequest{SchoolID: 1, Number: 10, Letter: "B"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestClassServiceSubgroups(t *testing.T) {
	repo := &mockClassRepo{classes: []models.Class{{ID: 3, SchoolID: 1, Number: 10, Letter: "B"}}}
	subgroups := &mockSubgroupRepo{}
	svc := newClassService(repo, subgroups)
	ctx := context.Background()

	first, created, err := svc.CreateSubgroup(ctx, CreateSubgroupRequest{ClassID: 3, Name: "english"})
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.CreateSubgroup(ctx, CreateSubgroupRequest{ClassID: 3, Name: "english"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = svc.CreateSubgroup(ctx, CreateSubgroupRequest{ClassID: 4, Name: "english"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	found, err := svc.FindSubgroup(ctx, 3, "english")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	list, err := svc.ListSubgroups(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteSubgroup(ctx, first.ID))
	assert.True(t, errors.Is(svc.DeleteSubgroup(ctx, 99), appErrors.ErrNotFound))
}

func TestClassServiceFindByKey(t *testing.T) {
	svc := newClassService(&mockClassRepo{classes: []models.Class{{ID: 3, SchoolID: 1, Number: 10, Letter: "B"}}}, &mockSubgroupRepo{})

	class, err := svc.FindByKey(context.Background(), 1, 10, "B")
	require.NoError(t, err)
	assert.Equal(t, int64(3), class.ID)

	_, err = svc.FindByKey(context.Background(), 1, 11, "B")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
