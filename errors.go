package spg

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every validation error returned by this
// package, via errors.Is.
var ErrInvalidArgument = errors.New("spg: invalid argument")

// InvalidArgumentError is the error type returned when an argument or a
// config field has the wrong type or value.
type InvalidArgumentError struct {
	// Param is the parameter at fault, for example "length" or "config.safe".
	Param string

	// Reason is the human readable description.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "spg: " + e.Reason
}

// Is makes errors.Is(err, ErrInvalidArgument) work.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func missingParam(param string) error {
	return &InvalidArgumentError{
		Param:  param,
		Reason: "missing parameter: " + param,
	}
}

func wrongType(param, want string, got interface{}) error {
	return &InvalidArgumentError{
		Param:  param,
		Reason: fmt.Sprintf("expected %s to be %s, but got %s", param, want, typeName(got)),
	}
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
