package sensitive

import (
	"fmt"
	"strings"

	"github.com/davidsulc/sensitive-data/pkg/interfaces/logger"
	"github.com/davidsulc/sensitive-data/pkg/redaction"
)

// Redactor derives a safe-to-display stand-in from a raw payload. It runs
// with the payload in hand, so implementations must not store or forward it.
type Redactor func(value any) any

// Kind is the configuration a family of wrappers shares: whether labels and
// the raw-value entry points are available, which redactor computes the
// displayable derivative, and which strategies scrub failures. A Kind is
// resolved once at definition time and never mutated afterward, which makes
// it safe to share across goroutines.
type Kind struct {
	name        string
	allowLabel  bool
	allowWrap   bool
	allowUnwrap bool
	redactor    Redactor
	pipeline    redaction.Pipeline
	log         logger.Logger
}

// KindOption configures a Kind at definition time.
type KindOption func(*kindConfig)

type kindConfig struct {
	allowLabel  bool
	allowWrap   bool
	allowUnwrap bool
	redactor    Redactor
	onError     redaction.ErrorRedactor
	onStack     redaction.StackRedactor
	log         logger.Logger
}

// WithLabelAllowed permits callers to attach a label to wrappers of this
// kind. Labels are intended for non-sensitive context tags only.
func WithLabelAllowed() KindOption {
	return func(c *kindConfig) { c.allowLabel = true }
}

// WithWrapEnabled exposes the raw-value-in entry point Wrap. Off by default:
// obtaining a secret before wrapping it leaks it to whatever code ran first,
// so From is the preferred construction path.
func WithWrapEnabled() KindOption {
	return func(c *kindConfig) { c.allowWrap = true }
}

// WithUnwrapEnabled exposes the raw-value-out exit point Unwrap. Off by
// default; Exec is the sanctioned observation path because it keeps the
// failure-redaction net around the caller's closure.
func WithUnwrapEnabled() KindOption {
	return func(c *kindConfig) { c.allowUnwrap = true }
}

// WithRedactor binds the function used to compute a wrapper's displayable
// derivative. Without one, Redacted reports nil.
func WithRedactor(r Redactor) KindOption {
	return func(c *kindConfig) {
		if r != nil {
			c.redactor = r
		}
	}
}

// WithErrorRedactor overrides the default failure-scrubbing strategy for
// this kind.
func WithErrorRedactor(r redaction.ErrorRedactor) KindOption {
	return func(c *kindConfig) {
		if r != nil {
			c.onError = r
		}
	}
}

// WithStackRedactor overrides the default stack-scrubbing strategy for this
// kind.
func WithStackRedactor(r redaction.StackRedactor) KindOption {
	return func(c *kindConfig) {
		if r != nil {
			c.onStack = r
		}
	}
}

// WithLogger sets the logger warnings are emitted through.
func WithLogger(l logger.Logger) KindOption {
	return func(c *kindConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// NewKind defines a wrapper kind. The name identifies the kind in log events
// and anti-leak renderings and is required.
func NewKind(name string, opts ...KindOption) (*Kind, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidKind)
	}
	cfg := kindConfig{log: logger.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	log := cfg.log.With(logger.Field{Key: "kind", Value: name})
	return &Kind{
		name:        name,
		allowLabel:  cfg.allowLabel,
		allowWrap:   cfg.allowWrap,
		allowUnwrap: cfg.allowUnwrap,
		redactor:    cfg.redactor,
		pipeline:    redaction.NewPipeline(log, cfg.onError, cfg.onStack),
		log:         log,
	}, nil
}

// MustKind is NewKind for package-level kind definitions; it panics on an
// invalid configuration.
func MustKind(name string, opts ...KindOption) *Kind {
	k, err := NewKind(name, opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the kind's identifying name.
func (k *Kind) Name() string {
	return k.name
}

// redactValue computes the displayable derivative for a payload. A redactor
// that panics is contained: the failure is logged and the fixed placeholder
// is used for that single redaction.
func (k *Kind) redactValue(value any) (out any) {
	if k.redactor == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			k.log.Warn("value redactor failed, using placeholder",
				logger.Field{Key: "redactor_failure", Value: fmt.Sprintf("%T", r)})
			out = Placeholder
		}
	}()
	return k.redactor(value)
}
