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

type mockSchoolRepo struct {
	schools []models.School
}

func (m *mockSchoolRepo) List(ctx context.Context) ([]models.School, error) {
	return m.schools, nil
}

func (m *mockSchoolRepo) FindByID(ctx context.Context, id int64) (*models.School, error) {
	for _, school := range m.schools {
		if school.ID == id {
			cp := school
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockSchoolRepo) FindByNameAndAddress(ctx context.Context, name, address string) (*models.School, error) {
	for _, school := range m.schools {
		if school.Name == name && school.Address == address {
			cp := school
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockSchoolRepo) Create(ctx context.Context, school *models.School) error {
	if _, err := m.FindByNameAndAddress(ctx, school.Name, school.Address); err == nil {
		return repository.ErrDuplicate
	}
	school.ID = int64(len(m.schools) + 1)
	m.schools = append(m.schools, *school)
	return nil
}

func (m *mockSchoolRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := m.FindByID(ctx, id)
	return err == nil, nil
}

func TestSchoolServiceCreateInsertOrFetch(t *testing.T) {
	repo := &mockSchoolRepo{}
	svc := NewSchoolService(repo, nil, nil)
	req := CreateSchoolRequest{Name: "Lyceum 1", Address: "Lenina 5", IsUsingDoubleWeek: true}

	first, created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestSchoolServiceValidationAndLookup(t *testing.T) {
	svc := NewSchoolService(&mockSchoolRepo{schools: []models.School{{ID: 1, Name: "Lyceum 1", Address: "Lenina 5"}}}, nil, nil)

	_, _, err := svc.Create(context.Background(), CreateSchoolRequest{Name: "No address"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	school, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lyceum 1", school.Name)

	_, err = svc.Get(context.Background(), 2)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(context.Background(), 2), appErrors.ErrNotFound))
	assert.NoError(t, svc.Delete(context.Background(), 1))
}
