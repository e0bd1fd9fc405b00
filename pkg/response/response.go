package response

import (
	"errors"
)

// Error is a sentinel error carrying the HTTP status it should be served
// with. Feature packages declare their domain errors with NewError and the
// handler layer maps Code straight onto the response status.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Is matches two sentinels by code and message so errors.Is works across
// values rather than pointer identity.
func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
