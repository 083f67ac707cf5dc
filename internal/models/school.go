package models

// School is an educational institution owning classes, lessons and semesters.
type School struct {
	ID                int64  `db:"school_id" json:"school_id"`
	Name              string `db:"name" json:"name"`
	Address           string `db:"address" json:"address"`
	IsUsingDoubleWeek bool   `db:"is_using_double_week" json:"is_using_double_week"`
}
