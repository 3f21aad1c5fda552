package main

import (
	"errors"
	"fmt"

	"github.com/davetashner/parkheat/internal/parks"
)

// Exit codes for the parkheat CLI.
const (
	ExitOK          = 0 // Success.
	ExitInvalidArgs = 1 // Invalid arguments, bad config or an I/O failure.
	ExitSchema      = 2 // The CSV lacks a required column.
	ExitData        = 3 // A CSV cell could not be interpreted.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitSchema:
			msg = "parkheat: dataset failed schema validation"
		case ExitData:
			msg = "parkheat: dataset contains invalid values"
		default:
			msg = "parkheat: failed"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}

// loadExitCode classifies a dataset load error.
func loadExitCode(err error) int {
	var se *parks.SchemaError
	var ve *parks.ValueError
	switch {
	case errors.As(err, &se):
		return ExitSchema
	case errors.As(err, &ve):
		return ExitData
	default:
		return ExitInvalidArgs
	}
}
