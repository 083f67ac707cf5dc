package service

import (
	"errors"

	"github.com/noah-isme/timetable-api/internal/repository"
)

// insertOrFetch runs insert and, when a unique constraint rejected the row, returns
// the stored row read back by fetch. The boolean reports whether insert created it.
func insertOrFetch[T any](entity *T, insert func() error, fetch func() (*T, error)) (*T, bool, error) {
	err := insert()
	if err == nil {
		return entity, true, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, false, err
	}
	existing, err := fetch()
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
