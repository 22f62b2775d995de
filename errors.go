package decochain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The concrete error types below match them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCycleViolation  = errors.New("duplicate wrapper kind")
)

// InvalidArgumentError is returned when a constructor receives an absent or
// unusable argument. No node is created when it is returned.
type InvalidArgumentError struct {
	Argument string // Name of the offending argument
	Message  string // What was wrong with it
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Message)
	}
	return fmt.Sprintf("invalid argument %q", e.Argument)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// CycleViolationError is returned by a strict CyclePolicy when a wrapper kind
// is already present in the history it is checked against.
type CycleViolationError struct {
	Tag     Tag     // Kind that was repeated
	History History // History the tag was checked against
}

// Error implements the error interface.
func (e *CycleViolationError) Error() string {
	return fmt.Sprintf("duplicate wrapper kind %q in chain %s", e.Tag, e.History)
}

// Is reports whether target is ErrCycleViolation.
func (e *CycleViolationError) Is(target error) bool {
	return target == ErrCycleViolation
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(argument, message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Argument: argument,
		Message:  message,
	}
}

// NewCycleViolationError creates a new CycleViolationError. The history is
// copied so the error does not alias a node's state.
func NewCycleViolationError(tag Tag, history History) *CycleViolationError {
	return &CycleViolationError{
		Tag:     tag,
		History: history.Clone(),
	}
}
