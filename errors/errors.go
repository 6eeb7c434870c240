// Package errors provides the classification-based error type used across
// the jsonapi-client core. Every operation failure is a *Error carrying a
// class.Class drawn from the kinds enumerated by the owning package
// (client.Class*, jsonapi.Class*, mapping.Class*, resource.Class*) so caller code can dispatch
// on classification rather than string-matching messages.
package errors

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/neuronlabs/jsonapi-client/errors/class"
)

// ClassError is implemented by every error produced by this module.
type ClassError interface {
	error
	Class() class.Class
}

// Error is the concrete, classification-carrying error implementation.
type Error struct {
	// ID uniquely identifies this error occurrence, useful for correlating
	// a logged error with one reported back to a caller.
	ID uuid.UUID
	// Classification is the error's class.Class.
	Classification class.Class
	// Detail is a human readable explanation specific to this occurrence.
	Detail string
	// Operation names the operation (e.g. "SaveOperation", "Deserialize")
	// that raised the error, for logging.
	Operation string
}

// Class implements ClassError.
func (e *Error) Class() class.Class {
	return e.Classification
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Classification.String()
	}
	return fmt.Sprintf("%s: %s", e.Classification, e.Detail)
}

// SetDetail sets the error's detail message and returns the error, for
// chaining at the call site.
func (e *Error) SetDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// SetDetailf sets the error's formatted detail message.
func (e *Error) SetDetailf(format string, args ...interface{}) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// SetOperation sets the operation name the error occurred in.
func (e *Error) SetOperation(operation string) *Error {
	e.Operation = operation
	return e
}

// New creates a new Error of the given class with a detail message.
func New(c class.Class, detail string) *Error {
	return &Error{ID: uuid.New(), Classification: c, Detail: detail}
}

// Newf creates a new Error of the given class with a formatted detail
// message.
func Newf(c class.Class, format string, args ...interface{}) *Error {
	return &Error{ID: uuid.New(), Classification: c, Detail: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a ClassError of the given class.
func Is(err error, c class.Class) bool {
	classErr, ok := err.(ClassError)
	if !ok {
		return false
	}
	return classErr.Class() == c
}

// As extracts the *Error from err, if it is one.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}
