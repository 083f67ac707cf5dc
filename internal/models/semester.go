package models

// Semester is the span between holidays. WeekReverse is nil when the school does
// not alternate odd/even weeks.
type Semester struct {
	ID          int64 `db:"semester_id" json:"semester_id"`
	SchoolID    int64 `db:"school_id" json:"school_id"`
	StartDate   Date  `db:"start_date" json:"start_date"`
	EndDate     Date  `db:"end_date" json:"end_date"`
	WeekReverse *bool `db:"week_reverse" json:"week_reverse"`
}

// Contains reports whether d falls inside the semester, bounds included.
func (s Semester) Contains(d Date) bool {
	return d.DaysSince(s.StartDate) >= 0 && s.EndDate.DaysSince(d) >= 0
}

// UsesDoubleWeek reports whether lessons must be filtered by week parity.
func (s Semester) UsesDoubleWeek() bool {
	return s.WeekReverse != nil
}

// CurrentSemester pairs the active semester with the parity of the current week.
type CurrentSemester struct {
	Semester  Semester `json:"semester"`
	IsOddWeek *bool    `json:"is_odd_week"`
}
