// Package errors defines the error taxonomy shared by the wrap notifier layers.
package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedPayload is returned when a webhook body cannot be decoded at all
	ErrMalformedPayload = errors.New("malformed webhook payload")

	// ErrUnknownEventType is returned for an event type outside upgrade/downgrade
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrNotConfigured is returned when a collaborator is missing its endpoint or credentials
	ErrNotConfigured = errors.New("not configured")

	// ErrQuery is returned when the indexed-data service rejects or fails a query
	ErrQuery = errors.New("query failed")
)

// ValidationError represents a validation error with field-specific errors
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d fields", len(e.Fields))
}

// Is lets callers match validation failures against ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AddFieldError adds a field-specific error
func (e *ValidationError) AddFieldError(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if there are any field errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// QueryError represents a failed subgraph query
type QueryError struct {
	Operation    string
	TokenAddress string
	BlockNumber  uint64
	Err          error
}

// Error implements the error interface
func (e *QueryError) Error() string {
	if e.TokenAddress == "" {
		return fmt.Sprintf("query error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("query error during %s for token %s from block %d: %v",
		e.Operation, e.TokenAddress, e.BlockNumber, e.Err)
}

// Is matches ErrQuery
func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// Unwrap implements errors.Unwrap interface
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NotifierError represents a failed delivery to a chat channel
type NotifierError struct {
	Channel    string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *NotifierError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s notifier returned status %d: %v", e.Channel, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s notifier error: %v", e.Channel, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *NotifierError) Unwrap() error {
	return e.Err
}

// RepositoryError represents a repository-specific error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s on %s: %v",
		e.Operation, e.Entity, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *RepositoryError) Unwrap() error {
	return e.Err
}
