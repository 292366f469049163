package redaction

import "fmt"

// Error is the scrubbed failure re-signaled by the pipeline. It keeps the
// general shape of the original failure (still an error, still has a stack
// trace) while carrying only redacted content.
type Error struct {
	// TypeName is the dynamic type of the original failure, e.g.
	// "*errors.errorString". Type names are compile-time identifiers and
	// never hold payload data.
	TypeName string
	// Stack is the redacted trace captured at the failure site.
	Stack Stack

	cause error
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return fmt.Sprintf("redaction: scrubbed failure (%s)", e.TypeName)
}

// Unwrap exposes the redacted replacement error so errors.Is/As keep working
// against whatever the redactor produced.
func (e *Error) Unwrap() error {
	return e.cause
}

// panicValue adapts a non-error panic payload so redactors receive a plain
// error. Its message renders the original value; only custom redactors ever
// see it, and the default drop strategy keeps the type name alone.
type panicValue struct {
	value any
}

func (p panicValue) Error() string {
	return fmt.Sprint(p.value)
}
