package models

// Lesson is a recurring timetable occurrence. IsOddWeek nil means the lesson runs every week.
type Lesson struct {
	ID        int64     `db:"lesson_id" json:"lesson_id"`
	SchoolID  int64     `db:"school_id" json:"school_id"`
	Name      string    `db:"name" json:"name"`
	StartTime TimeOfDay `db:"start_time" json:"start_time"`
	EndTime   TimeOfDay `db:"end_time" json:"end_time"`
	Weekday   int       `db:"weekday" json:"weekday"`
	IsOddWeek *bool     `db:"is_odd_week" json:"is_odd_week"`
	Room      string    `db:"room" json:"room"`
	TeacherID int64     `db:"teacher_id" json:"teacher_id"`
}

// RunsInWeek reports whether the lesson is active in a week of the given parity.
func (l Lesson) RunsInWeek(isOdd bool) bool {
	return l.IsOddWeek == nil || *l.IsOddWeek == isOdd
}

// LessonDetail is a lesson joined with its teacher.
type LessonDetail struct {
	Lesson
	Teacher Teacher `db:"teacher" json:"teacher"`
}

// LessonFilter narrows lesson queries. Nil fields are not applied.
type LessonFilter struct {
	ClassID    *int64
	SubgroupID *int64
	TeacherID  *int64
	Weekday    *int
	IsOddWeek  *bool
}

// LessonSubgroup links a lesson to one of the subgroups attending it.
type LessonSubgroup struct {
	LessonID   int64 `db:"lesson_id" json:"lesson_id"`
	SubgroupID int64 `db:"subgroup_id" json:"subgroup_id"`
}

// DoubleLesson presents one lesson, or two back-to-back identical lessons, as a single block.
// The per-occurrence fields hold one element for a single lesson and two for a merged pair.
type DoubleLesson struct {
	LessonIDs  []int64     `json:"lesson_id"`
	StartTimes []TimeOfDay `json:"start_time"`
	EndTimes   []TimeOfDay `json:"end_time"`
	SchoolID   int64       `json:"school_id"`
	Name       string      `json:"name"`
	Weekday    int         `json:"weekday"`
	IsOddWeek  *bool       `json:"is_odd_week"`
	Room       string      `json:"room"`
	Teacher    Teacher     `json:"teacher"`
}

// IsDouble reports whether the block spans two lessons.
func (d DoubleLesson) IsDouble() bool {
	return len(d.LessonIDs) > 1
}

// DayLessons is the resolved timetable of one calendar day.
type DayLessons struct {
	Date          Date           `json:"date"`
	Weekday       int            `json:"weekday"`
	IsOddWeek     *bool          `json:"is_odd_week"`
	Lessons       []LessonDetail `json:"lessons,omitempty"`
	DoubleLessons []DoubleLesson `json:"double_lessons,omitempty"`
}
