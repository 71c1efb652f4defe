package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ServiceError is a typed error with an HTTP status code. Controllers pass
// the status through unchanged, so services decide how failures surface.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate matches unique-constraint violations from Postgres.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

// isForeignKeyViolation matches restrict-delete and missing-parent errors.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "foreign key") || strings.Contains(msg, "violates")
}
