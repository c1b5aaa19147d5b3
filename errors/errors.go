// Package errors provides the error taxonomy shared by the profile store,
// the command runner and the screen dispatcher.
package errors

import (
	"errors"
	"fmt"
)

// Standard library helpers re-exported so callers only import one errors package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
)

// Kind classifies an application error.
type Kind int

const (
	Unknown Kind = iota
	NotFound
	MalformedRecord
	IOError
	RemoteCommandFailure
	Validation
	InvalidName
)

// String returns a short label for the kind
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case MalformedRecord:
		return "malformed record"
	case IOError:
		return "i/o error"
	case RemoteCommandFailure:
		return "remote command failed"
	case Validation:
		return "validation failed"
	case InvalidName:
		return "invalid name"
	default:
		return "unknown"
	}
}

// Error is the application error type. Subject names the profile or path the
// error refers to and may be empty.
type Error struct {
	kind    Kind
	msg     string
	subject string
	err     error
}

// E creates an error of the given kind.
func E(kind Kind, msg, subject string, err error) *Error {
	return &Error{kind: kind, msg: msg, subject: subject, err: err}
}

// Error returns the error message
func (e *Error) Error() string {
	msg := e.msg
	if e.subject != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.subject)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *Error) Kind() Kind {
	return e.kind
}

// Subject returns the profile name or path the error is about
func (e *Error) Subject() string {
	return e.subject
}

// Is matches another *Error by kind, so sentinel values such as ErrNotFound
// can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind && t.msg == "" && t.subject == "" && t.err == nil
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound             = &Error{kind: NotFound}
	ErrMalformedRecord      = &Error{kind: MalformedRecord}
	ErrIO                   = &Error{kind: IOError}
	ErrRemoteCommandFailure = &Error{kind: RemoteCommandFailure}
	ErrValidation           = &Error{kind: Validation}
	ErrInvalidName          = &Error{kind: InvalidName}
)

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Unknown
}
