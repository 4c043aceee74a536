package errs

import "fmt"

const (
	CodeFailure = 1 // evaluation failed
	CodeUsage   = 2 // bad command line
)

type ErrorWithCode struct {
	err  error
	Code int // process exit code
}

func NewErrorWithCode(err string, code int) error {
	return ErrorWithCode{fmt.Errorf("%s", err), code}
}

func NewErrorfWithCode(code int, f string, args ...interface{}) error {
	return ErrorWithCode{fmt.Errorf(f, args...), code}
}

// WithCode attaches code to err, nil stays nil
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return ErrorWithCode{err, code}
}

func (e ErrorWithCode) Error() string { return e.err.Error() }

func (e ErrorWithCode) Unwrap() error { return e.err }

// Code returns the exit code carried by err, CodeFailure for other errors and 0 for nil
func Code(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(ErrorWithCode); ok {
		return e.Code
	}
	return CodeFailure
}
