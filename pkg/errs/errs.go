// Package errs holds the error taxonomy shared by the formkit utilities.
// Every validation failure is an *ArgumentError that unwraps to one of the
// sentinels below, so callers branch with errors.Is and can still read the
// offending operation and parameter through errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals a parameter of the wrong type or range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyInput signals a string that is empty once trimmed.
	ErrEmptyInput = errors.New("empty input")
	// ErrIndexOutOfRange signals an index that is not below its bound.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ArgumentError describes a rejected parameter.
type ArgumentError struct {
	Op     string
	Param  string
	Reason string
	Kind   error
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// Invalid builds an ErrInvalidArgument failure.
func Invalid(op, param, reason string) error {
	return &ArgumentError{Op: op, Param: param, Reason: reason, Kind: ErrInvalidArgument}
}

// Empty builds an ErrEmptyInput failure.
func Empty(op, param, reason string) error {
	return &ArgumentError{Op: op, Param: param, Reason: reason, Kind: ErrEmptyInput}
}

// OutOfRange builds an ErrIndexOutOfRange failure.
func OutOfRange(op, param, reason string) error {
	return &ArgumentError{Op: op, Param: param, Reason: reason, Kind: ErrIndexOutOfRange}
}

// Param reports the parameter named by an *ArgumentError in err's chain.
func Param(err error) (string, bool) {
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		return "", false
	}
	return argErr.Param, true
}
