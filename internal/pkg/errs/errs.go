package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel behind every ObjectNotFoundError.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsRequired is the sentinel behind every ValueIsRequiredError.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel behind every ValueIsInvalidError.
	ErrValueIsInvalid = errors.New("value is invalid")
)

// Kind classifies an error for the client.
type Kind int

const (
	// KindInternal is anything not produced by a guard or a lookup.
	KindInternal Kind = iota

	// KindNotFound means the referenced id is absent from its collection.
	KindNotFound

	// KindBadRequest means a structural or lifecycle rule was violated.
	KindBadRequest
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindBadRequest:
		return "BadRequest"
	default:
		return "Internal"
	}
}

// KindOf reports the client-facing kind of err.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired), errors.Is(err, ErrValueIsInvalid):
		return KindBadRequest
	default:
		return KindInternal
	}
}

// MessageOf returns the client-facing message of err: the text of the first
// errs type in its chain, without causes. Other errors return err.Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var m messager
	if errors.As(err, &m) {
		return m.clientMessage()
	}
	return err.Error()
}

type messager interface {
	clientMessage() string
}

// ObjectNotFoundError reports a record that could not be found by id.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given entity
// kind (e.g. "dish") and id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(e.clientMessage(), e.Cause)
}

func (e *ObjectNotFoundError) clientMessage() string {
	return fmt.Sprintf("Could not find %s ID: %s", e.ParamName, sanitize(fmt.Sprintf("%v", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError reports a missing payload field.
// Message is the text shown to the client.
type ValueIsRequiredError struct {
	ParamName string
	Message   string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for paramName.
// An empty message falls back to "<paramName> is required".
func NewValueIsRequiredError(paramName, message string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Message:   message,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping cause.
func NewValueIsRequiredErrorWithCause(paramName, message string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Message:   message,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(e.clientMessage(), e.Cause)
}

func (e *ValueIsRequiredError) clientMessage() string {
	if e.Message == "" {
		return e.ParamName + " is required"
	}
	return e.Message
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a payload field, or a record state, that breaks a rule.
// Message is the text shown to the client.
type ValueIsInvalidError struct {
	ParamName string
	Message   string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for paramName.
// An empty message falls back to "<paramName> is invalid".
func NewValueIsInvalidError(paramName, message string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Message:   message,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping cause.
func NewValueIsInvalidErrorWithCause(paramName, message string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Message:   message,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(e.clientMessage(), e.Cause)
}

func (e *ValueIsInvalidError) clientMessage() string {
	if e.Message == "" {
		return e.ParamName + " is invalid"
	}
	return e.Message
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// sanitize keeps client-supplied values on a single line.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
