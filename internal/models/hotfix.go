package models

// LessonHotfix overrides a lesson occurrence on one date. With LessonID nil and
// IsExisting false it cancels the whole school day of SchoolID.
type LessonHotfix struct {
	ID         int64      `db:"hotfix_id" json:"hotfix_id"`
	LessonID   *int64     `db:"lesson_id" json:"lesson_id"`
	SchoolID   *int64     `db:"school_id" json:"school_id"`
	ForDate    Date       `db:"for_date" json:"for_date"`
	IsExisting bool       `db:"is_existing" json:"is_existing"`
	Name       *string    `db:"name" json:"name,omitempty"`
	StartTime  *TimeOfDay `db:"start_time" json:"start_time,omitempty"`
	EndTime    *TimeOfDay `db:"end_time" json:"end_time,omitempty"`
	Room       *string    `db:"room" json:"room,omitempty"`
	TeacherID  *int64     `db:"teacher_id" json:"teacher_id,omitempty"`
}

// CancelsDay reports whether the hotfix cancels every lesson of its date.
func (h LessonHotfix) CancelsDay() bool {
	return h.LessonID == nil && !h.IsExisting
}

// Targets reports whether the hotfix overrides the given lesson.
func (h LessonHotfix) Targets(lessonID int64) bool {
	return h.LessonID != nil && *h.LessonID == lessonID
}

// Patch copies every non-nil override onto l.
func (h LessonHotfix) Patch(l *Lesson) {
	if h.Name != nil {
		l.Name = *h.Name
	}
	if h.StartTime != nil {
		l.StartTime = *h.StartTime
	}
	if h.EndTime != nil {
		l.EndTime = *h.EndTime
	}
	if h.Room != nil {
		l.Room = *h.Room
	}
	if h.TeacherID != nil {
		l.TeacherID = *h.TeacherID
	}
}
