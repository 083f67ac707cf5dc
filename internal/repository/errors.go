package repository

import (
	"errors"
	"fmt"

	"github.com/noah-isme/timetable-api/pkg/database"
)

// ErrDuplicate is returned by Create methods when a unique constraint rejected the row.
var ErrDuplicate = errors.New("duplicate record")

func insertError(op string, err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
