package models

// AccessLevel orders the privileges of API callers.
type AccessLevel int

const (
	AccessUnauthorized   AccessLevel = 0
	AccessClassPresident AccessLevel = 1
	AccessTeacher        AccessLevel = 2
	AccessAdmin          AccessLevel = 3
)

// Valid reports whether the level is one of the known values.
func (a AccessLevel) Valid() bool {
	return a >= AccessUnauthorized && a <= AccessAdmin
}

func (a AccessLevel) String() string {
	switch a {
	case AccessClassPresident:
		return "class_president"
	case AccessTeacher:
		return "teacher"
	case AccessAdmin:
		return "admin"
	default:
		return "unauthorized"
	}
}

// User is an account allowed to mutate the timetable.
type User struct {
	ID           int64       `db:"user_id" json:"user_id"`
	Name         string      `db:"name" json:"name"`
	PasswordHash string      `db:"password" json:"-"`
	AccessLevel  AccessLevel `db:"access_level" json:"access_level"`
}
