package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shipledger/shipledger/internal/ledger"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Negative result (failed login, rejected input)
	ExitCommandError = 2 // Command error (bad flags, unreadable database)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Formatter renders command results as human text or JSON.
type Formatter struct {
	Format string
	Writer io.Writer
}

// response is the stable JSON envelope for command output.
type response struct {
	Status string `json:"status"` // "ok" or "error"
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Emit writes data: as JSON in json mode, via the text function otherwise.
func (f *Formatter) Emit(data any, text func(w io.Writer) error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(response{Status: "ok", Data: data})
	}
	return text(f.Writer)
}

// Fail writes the error in the configured format and converts it to an
// ExitError. Validation and referential errors are a negative result (exit 1)
// the operator can fix; anything already carrying an exit code keeps it;
// the rest is a command error.
func (f *Formatter) Fail(err error) error {
	if f.Format == "json" {
		json.NewEncoder(f.Writer).Encode(response{Status: "error", Error: err.Error()})
	} else {
		fmt.Fprintf(f.Writer, "Error: %v\n", err)
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if ledger.IsValidation(err) || ledger.IsReference(err) {
		return WrapExitError(ExitFailure, "rejected", err)
	}
	return WrapExitError(ExitCommandError, "command failed", err)
}

// newFormatter builds a Formatter for one command invocation.
func newFormatter(opts *RootOptions, w io.Writer) *Formatter {
	return &Formatter{Format: opts.Format, Writer: w}
}
