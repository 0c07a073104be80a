package extraction

import "fmt"

// Error is the single failure type for extraction operations. Transport
// failures, non-2xx API responses and unparseable model output all surface
// as *Error; callers are not expected to distinguish between them.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
