package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the vastcheck CLI. These support scripted use and CI
// integration: 0 means the request validated cleanly, 1 means validation
// produced at least one error, 2 means the invocation itself was bad.
const (
	ExitSuccess          = 0
	ExitValidationFailed = 1
	ExitUsageError       = 2
)

// exitError is a custom error type that carries an exit code. When err is
// nil the failure has already been reported to the user and Execute stays
// silent about it.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewExitError creates a silent exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// WrapExitError attaches an exit code to an error that still needs to be
// reported.
func WrapExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code for an error returned by Execute.
// Errors without an explicit code are treated as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitUsageError
}
