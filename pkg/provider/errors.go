package provider

import (
	"errors"
	"fmt"
)

// ConfigurationError marks missing or rejected credentials and malformed
// settings. The generation pipeline reports these as a structured outcome
// instead of failing the caller.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{
		Message: fmt.Sprintf(format, args...),
	}
}

func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// UnsupportedOperationError marks a request shape incompatible with every
// ability the selected model advertises.
type UnsupportedOperationError struct {
	Message string
}

func (e *UnsupportedOperationError) Error() string {
	return e.Message
}

func NewUnsupportedOperationError(format string, args ...any) error {
	return &UnsupportedOperationError{
		Message: fmt.Sprintf(format, args...),
	}
}

func IsUnsupportedOperationError(err error) bool {
	var e *UnsupportedOperationError
	return errors.As(err, &e)
}

// BackendError carries the transport-level detail of a failed backend call.
type BackendError struct {
	Status     int
	StatusText string

	Body string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %s: %s", e.StatusText, e.Body)
}

func IsBackendError(err error) bool {
	var e *BackendError
	return errors.As(err, &e)
}
