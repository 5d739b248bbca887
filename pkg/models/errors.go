package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fault taxonomy. Handlers map these to HTTP
// statuses with a pure errors.Is lookup; adapters never pick statuses.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrUpstream      = errors.New("upstream service failed")
	ErrConfiguration = errors.New("configuration error")
)

// ValidationError is a caller fault: bad input, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// UpstreamError is a fault in an external collaborator, distinct from
// caller faults.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed", e.Service)
	}
	return fmt.Sprintf("%s failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

func NewUpstreamError(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}

// ConfigurationError indicates a missing local dependency (a pretrained
// model, a credential). Fatal at first use; not recoverable by retry.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func NewConfigurationError(message string, err error) error {
	return &ConfigurationError{Message: message, Err: err}
}
