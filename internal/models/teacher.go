package models

// Teacher represents an instructor referenced by lessons.
type Teacher struct {
	ID   int64  `db:"teacher_id" json:"teacher_id"`
	Name string `db:"name" json:"name"`
}
