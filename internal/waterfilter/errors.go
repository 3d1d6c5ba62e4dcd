package waterfilter

import "errors"

// Error classes returned by filters. Use [errors.Is] to classify a returned
// error.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivideByZero    = errors.New("divide by zero")
)

// Error is a classified filter error. Its message is reported verbatim,
// while Kind carries the class for [errors.Is].
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func invalidArgument(msg string) error {
	return &Error{Kind: ErrInvalidArgument, Msg: msg}
}
