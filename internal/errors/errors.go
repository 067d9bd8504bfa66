package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error kinds. Concrete errors are marked with one of these so callers can
// classify them with errors.Is regardless of wrapping.
var (
	ErrMissingArgument    = new(ErrCodeMissingArgument, "missing argument")
	ErrInvalidNumber      = new(ErrCodeInvalidNumber, "invalid number")
	ErrUnsupportedCommand = new(ErrCodeUnsupportedCommand, "unsupported command")
	ErrParse              = new(ErrCodeParse, "parse error")
	ErrMissingTask        = new(ErrCodeMissingTask, "missing task")
	ErrIO                 = new(ErrCodeIO, "io error")
	ErrConfig             = new(ErrCodeConfig, "config error")

	// kinds raised while parsing the command line, before any execution
	commandErrors = []error{
		ErrMissingArgument,
		ErrInvalidNumber,
		ErrUnsupportedCommand,
	}
)

const (
	ErrCodeMissingArgument    = "missing_argument"
	ErrCodeInvalidNumber      = "invalid_number"
	ErrCodeUnsupportedCommand = "unsupported_command"
	ErrCodeParse              = "parse_error"
	ErrCodeMissingTask        = "missing_task"
	ErrCodeIO                 = "io_error"
	ErrCodeConfig             = "config_error"
)

// InternalError represents a domain error kind
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

// IsMissingArgument checks if an error is a missing argument error
func IsMissingArgument(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}

// IsInvalidNumber checks if an error is an invalid number error
func IsInvalidNumber(err error) bool {
	return errors.Is(err, ErrInvalidNumber)
}

// IsUnsupportedCommand checks if an error is an unsupported command error
func IsUnsupportedCommand(err error) bool {
	return errors.Is(err, ErrUnsupportedCommand)
}

// IsParse checks if an error is a task file parse error
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsMissingTask checks if an error is a missing task error
func IsMissingTask(err error) bool {
	return errors.Is(err, ErrMissingTask)
}

// IsIO checks if an error is an io error
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsConfig checks if an error is a config error
func IsConfig(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsCommandError reports whether err came from parsing the command line rather
// than from executing a command.
func IsCommandError(err error) bool {
	for _, kind := range commandErrors {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// Hints returns the user-facing hints attached to err, outermost first.
func Hints(err error) []string {
	return errors.GetAllHints(err)
}
