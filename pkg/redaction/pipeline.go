// Package redaction scrubs failures raised while handling sensitive data.
// Errors and stack traces pass through configurable redaction strategies
// before being re-signaled; a custom strategy that itself fails is logged
// and superseded by the default, so scrubbing can never leak or block.
package redaction

import (
	"errors"
	"fmt"

	"github.com/davidsulc/sensitive-data/pkg/interfaces/logger"
)

// ErrorRedactor transforms a failure into a safe replacement. It receives
// the original error, including anything sensitive its message may hold, and
// must return an error safe to render.
type ErrorRedactor func(err error) error

// StackRedactor transforms a captured stack before re-signaling.
type StackRedactor func(stack Stack) Stack

// DropError is the default error strategy: it discards the entire failure
// and keeps only the name of its dynamic type.
func DropError(err error) error {
	return fmt.Errorf("redaction: scrubbed failure (%T)", err)
}

// PruneStack is the default stack strategy: frame identity (function, file,
// line) survives, nothing else. Captured frames already carry no values, so
// pruning is a pass-through that normalizes nil to an empty stack.
func PruneStack(stack Stack) Stack {
	if stack == nil {
		return Stack{}
	}
	return stack
}

// Pipeline applies the bound strategies to failures. The zero value is not
// usable; construct with NewPipeline.
type Pipeline struct {
	log     logger.Logger
	onError ErrorRedactor
	onStack StackRedactor
}

// NewPipeline builds a pipeline. A nil redactor selects the corresponding
// default strategy; a nil logger selects the no-op logger.
func NewPipeline(log logger.Logger, onError ErrorRedactor, onStack StackRedactor) Pipeline {
	if log == nil {
		log = &logger.Nop{}
	}
	return Pipeline{log: log, onError: onError, onStack: onStack}
}

// WithOverrides returns a copy of the pipeline with per-call strategy
// overrides applied. Nil arguments keep the pipeline's own strategies.
func (p Pipeline) WithOverrides(onError ErrorRedactor, onStack StackRedactor) Pipeline {
	out := p
	if onError != nil {
		out.onError = onError
	}
	if onStack != nil {
		out.onStack = onStack
	}
	return out
}

// Redact scrubs err and stack and returns the failure to re-signal. The
// original error never travels past this point.
func (p Pipeline) Redact(err error, stack Stack) *Error {
	return &Error{
		TypeName: fmt.Sprintf("%T", err),
		Stack:    p.redactStack(stack),
		cause:    p.redactError(err),
	}
}

// Recover scrubs a recovered panic value. Error panics go through Redact;
// anything else is adapted so redactors still receive an error.
func (p Pipeline) Recover(v any, stack Stack) *Error {
	if err, ok := v.(error); ok {
		return p.Redact(err, stack)
	}
	out := p.Redact(panicValue{value: v}, stack)
	out.TypeName = fmt.Sprintf("%T", v)
	return out
}

func (p Pipeline) redactError(err error) (out error) {
	red := p.onError
	if red == nil {
		red = DropError
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("error redactor failed, using default strategy",
				logger.Field{Key: "redactor_failure", Value: fmt.Sprintf("%T", r)})
			out = DropError(err)
		}
	}()
	out = red(err)
	if out == nil {
		p.log.Warn("error redactor returned nil, using default strategy")
		out = DropError(err)
	}
	return out
}

func (p Pipeline) redactStack(stack Stack) (out Stack) {
	red := p.onStack
	if red == nil {
		red = PruneStack
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("stack redactor failed, using default strategy",
				logger.Field{Key: "redactor_failure", Value: fmt.Sprintf("%T", r)})
			out = PruneStack(stack)
		}
	}()
	return red(stack)
}

// AsError reports whether err is (or wraps) a pipeline-produced failure.
func AsError(err error) (*Error, bool) {
	var red *Error
	if errors.As(err, &red) {
		return red, true
	}
	return nil, false
}
