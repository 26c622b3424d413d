package roundui

import (
	"fmt"
)

// errorHandler returns a check function that aborts the calling function by panicking on error, and a handle function to defer that recovers such panics and hands the error to fn.
// Panics not raised by check are passed on.
func errorHandler(fn func(xerr error)) (func(error, string), func()) {
	type localError struct {
		err error
	}

	check := func(err error, msg string) {
		if err != nil {
			panic(&localError{fmt.Errorf("%s: %w", msg, err)})
		}
	}
	handle := func() {
		e := recover()
		if e == nil {
			return
		}
		if le, ok := e.(*localError); ok {
			fn(le.err)
		} else {
			panic(e)
		}
	}
	return check, handle
}
