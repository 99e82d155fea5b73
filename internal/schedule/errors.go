package schedule

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when task text is blank after trimming.
var ErrEmptyContent = errors.New("task content is empty")

// ValidationError rejects input before any task is created.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
