package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	ResourceEvent     = "event"
	ResourceEntryType = "entry_type"
)

var ErrNotFound = errors.New("not found")

// NotFoundError reports a lookup by id that matched no record.
// errors.Is(err, ErrNotFound) holds for every NotFoundError.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// lookupErr turns a missing row into a NotFoundError and wraps anything else.
func lookupErr(resource string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return fmt.Errorf("find %s %d: %w", resource, id, err)
}
