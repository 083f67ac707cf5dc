package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type mockHotfixRepo struct {
	hotfixes  []models.LessonHotfix
	listErr   error
	created   []models.LessonHotfix
	deleted   map[int64]bool
	listCalls int
}

func (m *mockHotfixRepo) ListForLessons(ctx context.Context, day models.Date, schoolID *int64, lessonIDs []int64) ([]models.LessonHotfix, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.LessonHotfix
	for _, h := range m.hotfixes {
		if h.ForDate.Equal(day) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *mockHotfixRepo) ListBySchool(ctx context.Context, day models.Date, schoolID int64) ([]models.LessonHotfix, error) {
	return m.ListForLessons(ctx, day, &schoolID, nil)
}

func (m *mockHotfixRepo) FindByID(ctx context.Context, id int64) (*models.LessonHotfix, error) {
	for _, h := range m.hotfixes {
		if h.ID == id {
			cp := h
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockHotfixRepo) Create(ctx context.Context, hotfix *models.LessonHotfix) error {
	hotfix.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *hotfix)
	return nil
}

func (m *mockHotfixRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleted[id], nil
}

type mockTeacherLookup struct {
	teachers map[int64]models.Teacher
	calls    int
}

func (m *mockTeacherLookup) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	m.calls++
	if teacher, ok := m.teachers[id]; ok {
		return &teacher, nil
	}
	return nil, sql.ErrNoRows
}

type mockLessonLookup struct {
	lessons map[int64]models.LessonDetail
}

func (m *mockLessonLookup) FindByID(ctx context.Context, id int64) (*models.LessonDetail, error) {
	if lesson, ok := m.lessons[id]; ok {
		return &lesson, nil
	}
	return nil, sql.ErrNoRows
}

type mockOverlayMetrics struct {
	outcomes []string
}

func (m *mockOverlayMetrics) ObserveHotfixOverlay(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

func int64Ptr(v int64) *int64    { return &v }
func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

var hotfixDay = models.NewDate(2024, time.January, 11)

func threeLessons() []models.LessonDetail {
	return []models.LessonDetail{
		lessonAt(1, "Math", models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 40), 1, "12"),
		lessonAt(2, "Physics", models.NewTimeOfDay(9, 45), models.NewTimeOfDay(10, 25), 1, "14"),
		lessonAt(3, "PE", models.NewTimeOfDay(10, 30), models.NewTimeOfDay(11, 10), 2, "gym"),
	}
}

func TestOverlayHotfixesWholeDayCancel(t *testing.T) {
	hotfixes := []models.LessonHotfix{
		{ID: 1, LessonID: int64Ptr(2), ForDate: hotfixDay, IsExisting: true, Room: stringPtr("20")},
		{ID: 2, SchoolID: int64Ptr(1), ForDate: hotfixDay, IsExisting: false},
	}

	result := OverlayHotfixes(threeLessons(), hotfixes)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestOverlayHotfixesCancelsOneLesson(t *testing.T) {
	hotfixes := []models.LessonHotfix{
		{ID: 1, LessonID: int64Ptr(2), ForDate: hotfixDay, IsExisting: false},
	}

	result := OverlayHotfixes(threeLessons(), hotfixes)

	require.Len(t, result, 2)
	assert.Equal(t, threeLessons()[0], result[0])
	assert.Equal(t, threeLessons()[2], result[1])
}

func TestOverlayHotfixesPatchesNonNullFields(t *testing.T) {
	hotfixes := []models.LessonHotfix{
		{ID: 1, LessonID: int64Ptr(1), ForDate: hotfixDay, IsExisting: true, Room: stringPtr("31"), StartTime: &models.TimeOfDay{Hour: 9, Minute: 5}},
	}

	result := OverlayHotfixes(threeLessons(), hotfixes)

	require.Len(t, result, 3)
	assert.Equal(t, "31", result[0].Room)
	assert.Equal(t, models.NewTimeOfDay(9, 5), result[0].StartTime)
	assert.Equal(t, models.NewTimeOfDay(9, 40), result[0].EndTime)
	assert.Equal(t, "Math", result[0].Name)
	assert.Equal(t, threeLessons()[1:], result[1:])
}

func TestOverlayHotfixesLastExistingWins(t *testing.T) {
	hotfixes := []models.LessonHotfix{
		{ID: 1, LessonID: int64Ptr(3), ForDate: hotfixDay, IsExisting: false},
		{ID: 2, LessonID: int64Ptr(3), ForDate: hotfixDay, IsExisting: true, Name: stringPtr("Chess")},
	}

	result := OverlayHotfixes(threeLessons(), hotfixes)

	require.Len(t, result, 3)
	assert.Equal(t, "Chess", result[2].Name)
}

func TestHotfixServiceApplyUntouched(t *testing.T) {
	metrics := &mockOverlayMetrics{}
	svc := NewHotfixService(&mockHotfixRepo{}, nil, &mockTeacherLookup{}, metrics, nil, nil)

	result, err := svc.Apply(context.Background(), 1, threeLessons(), hotfixDay)
	require.NoError(t, err)
	assert.Equal(t, threeLessons(), result)
	assert.Equal(t, []string{"untouched"}, metrics.outcomes)
}

func TestHotfixServiceApplyResolvesReplacementTeacher(t *testing.T) {
	repo := &mockHotfixRepo{hotfixes: []models.LessonHotfix{
		{ID: 1, LessonID: int64Ptr(1), ForDate: hotfixDay, IsExisting: true, TeacherID: int64Ptr(7)},
		{ID: 2, LessonID: int64Ptr(2), ForDate: hotfixDay, IsExisting: true, TeacherID: int64Ptr(7)},
		{ID: 3, LessonID: int64Ptr(3), ForDate: hotfixDay, IsExisting: true, TeacherID: int64Ptr(9)},
	}}
	teachers := &mockTeacherLookup{teachers: map[int64]models.Teacher{7: {ID: 7, Name: "Ivanova"}}}
	metrics := &mockOverlayMetrics{}
	svc := NewHotfixService(repo, nil, teachers, metrics, nil, nil)

	result, err := svc.Apply(context.Background(), 1, threeLessons(), hotfixDay)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, models.Teacher{ID: 7, Name: "Ivanova"}, result[0].Teacher)
	assert.Equal(t, models.Teacher{ID: 7, Name: "Ivanova"}, result[1].Teacher)
	assert.Equal(t, models.Teacher{ID: 9}, result[2].Teacher)
	assert.Equal(t, 2, teachers.calls)
	assert.Equal(t, []string{"patched"}, metrics.outcomes)
}

func TestHotfixServiceApplyCancelledDay(t *testing.T) {
	repo := &mockHotfixRepo{hotfixes: []models.LessonHotfix{
		{ID: 1, SchoolID: int64Ptr(1), ForDate: hotfixDay, IsExisting: false},
	}}
	metrics := &mockOverlayMetrics{}
	svc := NewHotfixService(repo, nil, &mockTeacherLookup{}, metrics, nil, nil)

	result, err := svc.Apply(context.Background(), 1, threeLessons(), hotfixDay)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, []string{"cancelled_day"}, metrics.outcomes)
}

func TestHotfixServiceApplyRepositoryError(t *testing.T) {
	svc := NewHotfixService(&mockHotfixRepo{listErr: errors.New("db down")}, nil, &mockTeacherLookup{}, nil, nil, nil)

	_, err := svc.Apply(context.Background(), 1, threeLessons(), hotfixDay)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestHotfixServiceCreate(t *testing.T) {
	lessons := &mockLessonLookup{lessons: map[int64]models.LessonDetail{2: threeLessons()[1]}}
	teachers := &mockTeacherLookup{teachers: map[int64]models.Teacher{7: {ID: 7, Name: "Ivanova"}}}

	t.Run("lesson override inherits school", func(t *testing.T) {
		repo := &mockHotfixRepo{}
		svc := NewHotfixService(repo, lessons, teachers, nil, nil, nil)

		hotfix, err := svc.Create(context.Background(), CreateHotfixRequest{LessonID: int64Ptr(2), ForDate: hotfixDay, TeacherID: int64Ptr(7)})
		require.NoError(t, err)
		assert.True(t, hotfix.IsExisting)
		require.NotNil(t, hotfix.SchoolID)
		assert.Equal(t, int64(1), *hotfix.SchoolID)
		assert.Len(t, repo.created, 1)
	})

	t.Run("whole day needs school", func(t *testing.T) {
		svc := NewHotfixService(&mockHotfixRepo{}, lessons, teachers, nil, nil, nil)

		_, err := svc.Create(context.Background(), CreateHotfixRequest{ForDate: hotfixDay, IsExisting: boolPtr(false)})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrUnprocessable.Status, appErrors.FromError(err).Status)
	})

	t.Run("whole day cancel", func(t *testing.T) {
		repo := &mockHotfixRepo{}
		svc := NewHotfixService(repo, lessons, teachers, nil, nil, nil)

		hotfix, err := svc.Create(context.Background(), CreateHotfixRequest{SchoolID: int64Ptr(1), ForDate: hotfixDay, IsExisting: boolPtr(false)})
		require.NoError(t, err)
		assert.True(t, hotfix.CancelsDay())
	})

	t.Run("existing without lesson", func(t *testing.T) {
		svc := NewHotfixService(&mockHotfixRepo{}, lessons, teachers, nil, nil, nil)

		_, err := svc.Create(context.Background(), CreateHotfixRequest{SchoolID: int64Ptr(1), ForDate: hotfixDay})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	})

	t.Run("missing date", func(t *testing.T) {
		svc := NewHotfixService(&mockHotfixRepo{}, lessons, teachers, nil, nil, nil)

		_, err := svc.Create(context.Background(), CreateHotfixRequest{LessonID: int64Ptr(2)})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		svc := NewHotfixService(&mockHotfixRepo{}, lessons, teachers, nil, nil, nil)

		_, err := svc.Create(context.Background(), CreateHotfixRequest{LessonID: int64Ptr(42), ForDate: hotfixDay})
		require.Error(t, err)
		assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	})

	t.Run("unknown teacher", func(t *testing.T) {
		svc := NewHotfixService(&mockHotfixRepo{}, lessons, teachers, nil, nil, nil)

		_, err := svc.Create(context.Background(), CreateHotfixRequest{LessonID: int64Ptr(2), ForDate: hotfixDay, TeacherID: int64Ptr(8)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	})
}

func TestHotfixServiceDeleteMissing(t *testing.T) {
	svc := NewHotfixService(&mockHotfixRepo{}, nil, nil, nil, nil, nil)

	err := svc.Delete(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
