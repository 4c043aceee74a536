package almost

import "github.com/pkg/errors"

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidEpsilon           = &kindError{"invalid epsilon", ErrInvalidConfig}
	ErrInvalidSignificantDigits = &kindError{"invalid significant digits", ErrInvalidConfig}
	ErrInvalidMinValue          = &kindError{"invalid min value", ErrInvalidConfig}

	ErrNaN = &kindError{"not a number", ErrInvalidArgument}
)

// kindError is a sentinel error that also matches its kind with errors.Is
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }
