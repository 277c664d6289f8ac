// Package errs defines the closed taxonomy of error kinds a worker can
// report, and wraps them with stack-carrying causes.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the fatal/non-fatal categories a job can fail with.
type Kind string

const (
	InputOpen        Kind = "InputOpen"
	OutputOpen       Kind = "OutputOpen"
	UTF8Invalid      Kind = "UTF8Invalid"
	CodeOverflow     Kind = "CodeOverflow"
	HeapUnderflow    Kind = "HeapUnderflow"
	ArchiveTruncated Kind = "ArchiveTruncated"
)

// Error wraps a Kind, the operation in which it occurred, and the cause.
type Error struct {
	Kind Kind
	Op   string
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// New wraps err with a Kind and the operation name, attaching a stack trace
// via pkg/errors so the cause can still be inspected upstream.
func New(kind Kind, op string, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	} else {
		err = errors.WithStack(err)
	}
	return &Error{Kind: kind, Op: op, err: err}
}

// As reports whether err (or something it wraps) is an *Error, and returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}
