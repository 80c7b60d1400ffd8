package results

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of errors produced by this package itself, as opposed to the errors it
	// carries on behalf of the functions it evaluates.
	Error = errs.Class("results")

	// ErrNilThenable is carried by the Result of an evaluation whose function returned a nil Thenable.
	ErrNilThenable = Error.New("thenable is nil")
)

// CauseError is the error EnsureError builds around a value that is not an error.
type CauseError struct {
	// Cause is the original value, kept for diagnostics.
	Cause any
}

func (e *CauseError) Error() string {
	return fmt.Sprint(e.Cause)
}

// EnsureError returns x unchanged if it is already an error. Any other value, nil included, is
// wrapped in a *CauseError whose message is the default string form of x.
func EnsureError(x any) error {
	if err, ok := x.(error); ok {
		return err
	}
	return &CauseError{Cause: x}
}

// CauseOf returns the non-error value err was built around by EnsureError, if any.
func CauseOf(err error) (any, bool) {
	var ce *CauseError
	if errors.As(err, &ce) {
		return ce.Cause, true
	}
	return nil, false
}
