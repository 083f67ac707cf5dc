package models

// Class is a numbered and lettered group of pupils inside a school, e.g. 10 "Б".
type Class struct {
	ID       int64  `db:"class_id" json:"class_id"`
	SchoolID int64  `db:"school_id" json:"school_id"`
	Number   int    `db:"number" json:"number"`
	Letter   string `db:"letter" json:"letter"`
}

// Subgroup is a subdivision of a class sharing some but not all lessons.
type Subgroup struct {
	ID      int64  `db:"subgroup_id" json:"subgroup_id"`
	ClassID int64  `db:"class_id" json:"class_id"`
	Name    string `db:"name" json:"name"`
}
