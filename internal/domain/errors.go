package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyCommand    = errors.New(`please provide a valid value for option "command"`)
	ErrCommandFailed   = errors.New("command execution failed")
	ErrUnexpected      = errors.New("an unexpected error occurred")
	ErrInvalidArgs     = errors.New("invalid module arguments")
	ErrConfigExists    = errors.New("config file already exists")
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrProgramNotFound = errors.New("program not configured")
)

// CommandFailedError reports a TSO command that ran but exited non-zero.
// The captured output stays attached so callers can diagnose the failure.
type CommandFailedError struct {
	Command    string
	ReturnCode int
}

// Error implements error.
func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("the TSO command %q execution failed", e.Command)
}

// Unwrap allows errors.Is(err, ErrCommandFailed).
func (e *CommandFailedError) Unwrap() error {
	return ErrCommandFailed
}
