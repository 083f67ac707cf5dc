package service

import "github.com/noah-isme/timetable-api/internal/models"

// MergeDoubles folds chronologically adjacent lessons sharing name, teacher and
// room into a single block. Only pairs merge: a third identical lesson starts a
// new block. Input must already be ordered by start time.
func MergeDoubles(lessons []models.LessonDetail) []models.DoubleLesson {
	merged := make([]models.DoubleLesson, 0, len(lessons))
	for i := 0; i < len(lessons); i++ {
		block := singleBlock(lessons[i])
		if i+1 < len(lessons) && sameOccurrence(lessons[i], lessons[i+1]) {
			next := lessons[i+1]
			block.LessonIDs = append(block.LessonIDs, next.ID)
			block.StartTimes = append(block.StartTimes, next.StartTime)
			block.EndTimes = append(block.EndTimes, next.EndTime)
			i++
		}
		merged = append(merged, block)
	}
	return merged
}

func sameOccurrence(a, b models.LessonDetail) bool {
	return a.Name == b.Name && a.TeacherID == b.TeacherID && a.Room == b.Room
}

func singleBlock(l models.LessonDetail) models.DoubleLesson {
	return models.DoubleLesson{
		LessonIDs:  []int64{l.ID},
		StartTimes: []models.TimeOfDay{l.StartTime},
		EndTimes:   []models.TimeOfDay{l.EndTime},
		SchoolID:   l.SchoolID,
		Name:       l.Name,
		Weekday:    l.Weekday,
		IsOddWeek:  l.IsOddWeek,
		Room:       l.Room,
		Teacher:    l.Teacher,
	}
}
