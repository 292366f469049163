package sensitive

import (
	"github.com/davidsulc/sensitive-data/pkg/interfaces/logger"
	"github.com/davidsulc/sensitive-data/pkg/redaction"
)

// Option adjusts a single From/Map/Exec call.
type Option func(*callOpts)

type callOpts struct {
	label    any
	labelSet bool
	onError  redaction.ErrorRedactor
	onStack  redaction.StackRedactor
}

// WithLabel attaches a caller-supplied context tag to the resulting wrapper.
// The label must not be derived from sensitive data; it travels in clear
// through logs and renderings. Kinds that do not allow labels drop the
// option with a logged warning.
func WithLabel(label any) Option {
	return func(o *callOpts) {
		o.label = label
		o.labelSet = true
	}
}

// WithCallErrorRedactor overrides the kind's failure-scrubbing strategy for
// this call only.
func WithCallErrorRedactor(r redaction.ErrorRedactor) Option {
	return func(o *callOpts) { o.onError = r }
}

// WithCallStackRedactor overrides the kind's stack-scrubbing strategy for
// this call only.
func WithCallStackRedactor(r redaction.StackRedactor) Option {
	return func(o *callOpts) { o.onStack = r }
}

// resolveOpts folds the per-call options, enforcing the kind's label policy.
// Warnings go through log so calls on an existing wrapper carry its
// correlation id.
func resolveOpts(log logger.Logger, k *Kind, opts []Option) callOpts {
	var o callOpts
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.labelSet && !k.allowLabel {
		log.Warn("label not allowed for wrapper kind, dropping option")
		o.label = nil
		o.labelSet = false
	}
	return o
}

// resolveExecOpts folds the per-call options for a call that produces no
// wrapper. Labels are ignored here; they only apply where a wrapper is
// created, and ExecInto forwards them to the target kind's From.
func resolveExecOpts(opts []Option) callOpts {
	var o callOpts
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.label = nil
	o.labelSet = false
	return o
}
