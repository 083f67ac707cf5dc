package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
)

func lessonAt(id int64, name string, start, end models.TimeOfDay, teacherID int64, room string) models.LessonDetail {
	return models.LessonDetail{
		Lesson: models.Lesson{
			ID:        id,
			SchoolID:  1,
			Name:      name,
			StartTime: start,
			EndTime:   end,
			Weekday:   2,
			Room:      room,
			TeacherID: teacherID,
		},
		Teacher: models.Teacher{ID: teacherID, Name: "teacher"},
	}
}

func TestMergeDoublesPairsIdenticalLessons(t *testing.T) {
	lessons := []models.LessonDetail{
		lessonAt(1, "Math", models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 40), 1, "12"),
		lessonAt(2, "Math", models.NewTimeOfDay(9, 45), models.NewTimeOfDay(10, 25), 1, "12"),
		lessonAt(3, "PE", models.NewTimeOfDay(10, 30), models.NewTimeOfDay(11, 10), 2, "gym"),
	}

	merged := MergeDoubles(lessons)

	require.Len(t, merged, 2)
	assert.True(t, merged[0].IsDouble())
	assert.Equal(t, []int64{1, 2}, merged[0].LessonIDs)
	assert.Equal(t, []models.TimeOfDay{models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 45)}, merged[0].StartTimes)
	assert.Equal(t, []models.TimeOfDay{models.NewTimeOfDay(9, 40), models.NewTimeOfDay(10, 25)}, merged[0].EndTimes)
	assert.Equal(t, "Math", merged[0].Name)
	assert.False(t, merged[1].IsDouble())
	assert.Equal(t, "PE", merged[1].Name)
	assert.Equal(t, []int64{3}, merged[1].LessonIDs)
}

func TestMergeDoublesNeverMergesThree(t *testing.T) {
	lessons := []models.LessonDetail{
		lessonAt(1, "Math", models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 40), 1, "12"),
		lessonAt(2, "Math", models.NewTimeOfDay(9, 45), models.NewTimeOfDay(10, 25), 1, "12"),
		lessonAt(3, "Math", models.NewTimeOfDay(10, 30), models.NewTimeOfDay(11, 10), 1, "12"),
	}

	merged := MergeDoubles(lessons)

	require.Len(t, merged, 2)
	assert.Equal(t, []int64{1, 2}, merged[0].LessonIDs)
	assert.Equal(t, []int64{3}, merged[1].LessonIDs)
}

func TestMergeDoublesRequiresSameRoomAndTeacher(t *testing.T) {
	lessons := []models.LessonDetail{
		lessonAt(1, "Math", models.NewTimeOfDay(9, 0), models.NewTimeOfDay(9, 40), 1, "12"),
		lessonAt(2, "Math", models.NewTimeOfDay(9, 45), models.NewTimeOfDay(10, 25), 1, "14"),
		lessonAt(3, "Math", models.NewTimeOfDay(10, 30), models.NewTimeOfDay(11, 10), 3, "14"),
	}

	merged := MergeDoubles(lessons)

	require.Len(t, merged, 3)
	for _, block := range merged {
		assert.False(t, block.IsDouble())
	}
}

func TestMergeDoublesEmpty(t *testing.T) {
	assert.Empty(t, MergeDoubles(nil))
}
