package internal

import "github.com/pkg/errors"

// The engine functions have no error returns: their only failure mode is being
// handed a polygon that did not come out of Validate, which is a programming
// error. Those cases panic, and the public API recovers to convert to an error.

// Wraps errors raised by fatalf, so that runtime panics (which are also errors)
// are not mistaken for ours.
type ClipError struct {
	error
}

func (e ClipError) Unwrap() error {
	return e.error
}

// Panic with a ClipError.
func fatalf(format string, args ...interface{}) {
	panic(ClipError{errors.Errorf(format, args...)})
}

// Panic with a ClipError wrapping a sentinel.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(ClipError{errors.Wrapf(err, format, args...)})
}

func HandleClipPanicRecover(r interface{}) error {
	if r != nil {
		if clipError, ok := r.(ClipError); ok {
			return clipError.error
		}
		panic(r)
	}
	return nil
}
