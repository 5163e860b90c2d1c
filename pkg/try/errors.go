package try

import (
	"errors"

	"github.com/zeebo/errs"
)

var (
	// ErrPanic classifies causes recovered from a panic whose value was not an error.
	ErrPanic = errs.Class("panic")

	// ErrNilCause replaces a nil cause handed to Failure.
	ErrNilCause = errors.New("try: failure without a cause")
)

type sentinel struct {
	target error
}

func (s sentinel) Has(err error) bool {
	return errors.Is(err, s.target)
}

// Is returns a Category matching every cause for which errors.Is(cause, target) holds.
func Is(target error) Category {
	return sentinel{target: target}
}
