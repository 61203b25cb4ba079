package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Error captures a recoverable conversion error with location context.
type Error struct {
	Message string
	Offset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse: %s at offset %d", e.Message, e.Offset)
}

// Errors is an append-only accumulator of recoverable conversion errors.
// Converters collect into it and callers consult it once conversion finishes.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Err returns es as an error, or nil when no errors were accumulated.
func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// Unsupported marks a construct the converter recognizes but cannot
// represent in the tree.
type Unsupported struct {
	Message string
}

func (e *Unsupported) Error() string {
	return "parse: unsupported construct: " + e.Message
}

// Unsupportedf constructs an Unsupported error from a format string.
func Unsupportedf(format string, args ...any) error {
	return &Unsupported{Message: fmt.Sprintf(format, args...)}
}

// IsUnsupported reports whether err wraps an Unsupported error.
func IsUnsupported(err error) bool {
	var u *Unsupported
	return errors.As(err, &u)
}
