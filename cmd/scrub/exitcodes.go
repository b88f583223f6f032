package main

import "fmt"

// Exit codes for scrub CLI.
const (
	ExitOK           = 0 // Sanitization succeeded.
	ExitInvalidArgs  = 1 // Invalid arguments or no subcommand given.
	ExitPartialRead  = 2 // Some inputs could not be read, partial output printed.
	ExitTotalFailure = 3 // No input could be read.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the process exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError with a formatted message. An empty
// format produces a silent error: the exit code is set but nothing extra
// is printed.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := ""
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &exitCodeError{code: code, msg: msg}
}
