package repos

import (
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrEmailTaken = errors.New("email already in use")
)

// isUniqueViolation recognizes the sqlite unique-index error for the cases
// where a duplicate slips past the pre-insert existence check.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
