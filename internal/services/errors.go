package services

import (
	"errors"
	"fmt"
)

// Not-found sentinels, one per hierarchy level. Lookups fail closed: a
// missing course makes every path below it unresolvable with the course
// sentinel, not the child's.
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrModuleNotFound   = errors.New("module not found")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// IsNotFound reports whether err is (or wraps) any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrModuleNotFound) ||
		errors.Is(err, ErrTopicNotFound) ||
		errors.Is(err, ErrQuestionNotFound)
}

// ValidationError signals missing or malformed required input. Operations
// validate all inputs before touching the store, so a validation failure
// never leaves a partial mutation behind.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validationErrorf builds a ValidationError with a formatted message.
func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
