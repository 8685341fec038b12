package records

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnreadable   = errors.New("document unreadable")
	ErrCorruptLog   = errors.New("corrupt record log")
	ErrAppend       = errors.New("append record")
)

// CorruptLogError reports the first malformed entry of a record log.
type CorruptLogError struct {
	Line int
	Err  error
}

func (e *CorruptLogError) Error() string {
	return fmt.Sprintf("corrupt record log at line %d: %v", e.Line, e.Err)
}

func (e *CorruptLogError) Unwrap() []error {
	return []error{ErrCorruptLog, e.Err}
}
