package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError defines errors that carry an HTTP status code.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrValidation    = errors.New("validation failed")
	ErrUnknownOption = errors.New("unknown option")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrInvalidValue  = errors.New("invalid value")
	ErrAPI           = errors.New("api error")
)

// Validation error types. Each matches ErrValidation and its own sentinel.
type (
	// UnknownOptionError indicates a parameter name outside the option schema
	UnknownOptionError struct {
		Name    string
		Defined []string
	}

	// TypeMismatchError indicates a value of the wrong kind for a known option
	TypeMismatchError struct {
		Name     string
		Expected string
		Actual   string
	}

	// InvalidValueError indicates a value outside the option's allowed set
	InvalidValueError struct {
		Name    string
		Value   string
		Allowed []string
	}
)

func (e *UnknownOptionError) Error() string {
	if len(e.Defined) == 0 {
		return fmt.Sprintf("the option %q does not exist", e.Name)
	}
	return fmt.Sprintf("the option %q does not exist, defined options are: %s",
		e.Name, strings.Join(e.Defined, ", "))
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("the option %q is expected to be of type %s, but is of type %s",
		e.Name, e.Expected, e.Actual)
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("the option %q with value %q is invalid, accepted values are: %s",
		e.Name, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrValidation || target == ErrUnknownOption
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrValidation || target == ErrTypeMismatch
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrValidation || target == ErrInvalidValue
}

// APIError is returned by the HTTP collaborator for non-2xx responses.
// Implements HTTPError.
type APIError struct {
	Status int    // HTTP status code
	Body   string // Raw response body, possibly truncated
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Body)
}

// StatusCode implements the HTTPError interface
func (e *APIError) StatusCode() int {
	return e.Status
}

// Is allows errors.Is() to match against ErrAPI
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}
