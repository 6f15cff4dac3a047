// Package errors provides the error taxonomy for web-distributor.
//
// Every failure the tool can hit is one of two kinds:
//
//   - expected absence: a backup or live directory that does not exist yet
//     during rotation. Callers detect it with IsNotExist and carry on.
//   - fatal: malformed configuration, or any rename, create, or write that
//     failed for another reason. These are wrapped in a GenError carrying a
//     Code and the path involved, and propagate to the CLI which aborts.
//
// # Usage
//
//	if err := os.Rename(from, to); err != nil && !errors.IsNotExist(err) {
//	    return errors.WrapPath(errors.ErrCodeRotate, "archive backup", from, err)
//	}
//
// Use errors.Is with the sentinel values to check the category:
//
//	if errors.Is(err, errors.ErrConfigInvalid) {
//	    // operator must fix the config file
//	}
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeConfig   ErrorCode = "CONFIG"   // Configuration missing fields or malformed
	ErrCodeRotate   ErrorCode = "ROTATE"   // Backup rotation rename/create failed
	ErrCodeRender   ErrorCode = "RENDER"   // Template execution failed
	ErrCodeWrite    ErrorCode = "WRITE"    // Writing a generated file failed
	ErrCodeInternal ErrorCode = "INTERNAL" // Internal/unexpected error
)

// GenError is a structured error with context about the failed operation.
type GenError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // Filesystem path involved (if any)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *GenError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain traversal.
func (e *GenError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *GenError) Is(target error) bool {
	t, ok := target.(*GenError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors. Use these with errors.Is() for category checks.
var (
	// ErrConfigInvalid indicates the configuration file could not be read or parsed.
	ErrConfigInvalid = &GenError{Code: ErrCodeConfig, Message: "invalid configuration"}

	// ErrRotateFailed indicates a rotation step left the filesystem in an unexpected state.
	ErrRotateFailed = &GenError{Code: ErrCodeRotate, Message: "rotation failed"}

	// ErrWriteFailed indicates a generated file could not be written.
	ErrWriteFailed = &GenError{Code: ErrCodeWrite, Message: "write failed"}
)

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &GenError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapPath creates an error with path context and underlying error.
func WrapPath(code ErrorCode, msg, path string, err error) error {
	return &GenError{
		Code:    code,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// Config creates a configuration error with a custom message.
func Config(msg string) error {
	return &GenError{
		Code:    ErrCodeConfig,
		Message: msg,
	}
}

// IsNotExist reports whether err means the file or directory is absent.
// It is the only failure rotation treats as "nothing to do".
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// CodeOf returns the code of the first GenError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var ge *GenError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ErrCodeInternal
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
