package sensitive

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/davidsulc/sensitive-data/internal/typetag"
	"github.com/davidsulc/sensitive-data/pkg/interfaces/logger"
	"github.com/davidsulc/sensitive-data/pkg/redaction"
)

// Placeholder stands in for sensitive content in renderings and as the
// fallback output of a failed value redactor.
const Placeholder = "[REDACTED]"

// Wrapper holds a sensitive payload behind a provider closure. The closure
// is the only path to the raw value; everything else the wrapper exposes
// (type tag, label, redacted derivative) is safe to display. Wrappers are
// not safe for concurrent mutation: callers sharing one across goroutines
// must serialize Map/ExecInto themselves.
type Wrapper[T any] struct {
	kind     *Kind
	id       uuid.UUID
	label    any
	redacted any

	provider func() T
	tag      typetag.Tag
}

// From builds a wrapper by invoking producer inside the protected-execution
// context. On failure the scrubbed error is returned and no wrapper is
// produced; the raw failure never leaves the core.
func From[T any](k *Kind, producer func() (T, error), opts ...Option) (*Wrapper[T], error) {
	if k == nil {
		return nil, ErrInvalidKind
	}
	if producer == nil {
		return nil, ErrNilFunc
	}
	o := resolveOpts(k.log, k, opts)
	value, err := runProtected(k, o, producer)
	if err != nil {
		return nil, err
	}
	w := &Wrapper[T]{kind: k, id: uuid.New()}
	w.replace(value, o)
	return w, nil
}

// Wrap builds a wrapper from a value the caller already holds. Discouraged:
// by the time Wrap runs, the value has existed unprotected in the calling
// code. Gated by WithWrapEnabled.
func Wrap[T any](k *Kind, value T, opts ...Option) (*Wrapper[T], error) {
	if k == nil {
		return nil, ErrInvalidKind
	}
	if !k.allowWrap {
		return nil, ErrWrapDisabled
	}
	return From(k, func() (T, error) { return value, nil }, opts...)
}

// Map replaces the payload by running transform inside the protected
// context. The provider, type tag, and redacted derivative are replaced
// together: on failure the wrapper is left untouched and the scrubbed error
// is returned. The label is retained unless WithLabel re-supplies it.
func Map[T any](w *Wrapper[T], transform func(T) (T, error), opts ...Option) error {
	if w == nil || w.provider == nil {
		return ErrNilWrapper
	}
	if transform == nil {
		return ErrNilFunc
	}
	o := resolveOpts(w.log(), w.kind, opts)
	value, err := runProtected(w.kind, o, func() (T, error) {
		return transform(w.provider())
	})
	if err != nil {
		return err
	}
	w.replace(value, o)
	w.log().Debug("payload replaced")
	return nil
}

// Exec runs fn against the raw payload inside the protected context and
// returns its result unwrapped. This is the sanctioned way to observe the
// payload: any failure inside fn is scrubbed before it reaches the caller.
func Exec[T, R any](w *Wrapper[T], fn func(T) (R, error), opts ...Option) (R, error) {
	var zero R
	if w == nil || w.provider == nil {
		return zero, ErrNilWrapper
	}
	if fn == nil {
		return zero, ErrNilFunc
	}
	o := resolveExecOpts(opts)
	return runProtected(w.kind, o, func() (R, error) {
		return fn(w.provider())
	})
}

// ExecInto runs fn like Exec but re-wraps the result under the target kind,
// so derived sensitive values never surface raw. A nil target is a
// configuration error, reported fixed and unredacted.
func ExecInto[T, R any](w *Wrapper[T], fn func(T) (R, error), into *Kind, opts ...Option) (*Wrapper[R], error) {
	if into == nil {
		return nil, ErrInvalidTarget
	}
	value, err := Exec(w, fn, opts...)
	if err != nil {
		return nil, err
	}
	return From(into, func() (R, error) { return value, nil }, opts...)
}

// Unwrap returns the raw payload with no protection around the return path.
// Weaker than Exec with an identity closure, and gated by WithUnwrapEnabled.
func Unwrap[T any](w *Wrapper[T]) (T, error) {
	var zero T
	if w == nil || w.provider == nil {
		return zero, ErrNilWrapper
	}
	if !w.kind.allowUnwrap {
		return zero, ErrUnwrapDisabled
	}
	return w.provider(), nil
}

// Kind returns the wrapper's kind.
func (w *Wrapper[T]) Kind() *Kind {
	return w.kind
}

// ID returns the wrapper's correlation id, safe for log events.
func (w *Wrapper[T]) ID() uuid.UUID {
	return w.id
}

// Label returns the caller-supplied context tag, or nil.
func (w *Wrapper[T]) Label() any {
	return w.label
}

// Redacted returns the precomputed displayable derivative. Pure read: it
// never invokes the provider. Nil when the kind binds no value redactor.
func (w *Wrapper[T]) Redacted() any {
	return w.redacted
}

// replace swaps the private triple as a unit so the tag and redacted
// derivative always describe the payload the provider returns.
func (w *Wrapper[T]) replace(value T, o callOpts) {
	w.provider = func() T { return value }
	w.tag = typetag.Classify(value)
	w.redacted = w.kind.redactValue(value)
	if o.labelSet {
		w.label = o.label
	}
}

// log returns the kind's logger with the wrapper's correlation id bound, so
// events emitted while an existing wrapper is touched can be traced back to
// it without ever naming its payload.
func (w *Wrapper[T]) log() logger.Logger {
	return w.kind.log.With(logger.Field{Key: "wrapper_id", Value: w.id})
}

// typeTag is the guard layer's read path; see guards.go.
func (w *Wrapper[T]) typeTag() (typetag.Tag, *Kind, bool) {
	if w == nil || w.provider == nil {
		return typetag.Tag{}, nil, false
	}
	return w.tag, w.kind, true
}

// String renders the wrapper without the payload: kind name plus label and
// redacted derivative when present.
func (w *Wrapper[T]) String() string {
	if w == nil || w.kind == nil {
		return "sensitive<" + Placeholder + ">"
	}
	var parts []string
	if w.label != nil {
		parts = append(parts, fmt.Sprintf("label=%v", w.label))
	}
	if w.redacted != nil {
		parts = append(parts, fmt.Sprintf("redacted=%v", w.redacted))
	}
	if len(parts) == 0 {
		parts = append(parts, Placeholder)
	}
	return w.kind.name + "<" + strings.Join(parts, " ") + ">"
}

// GoString keeps %#v output as safe as %v output.
func (w *Wrapper[T]) GoString() string {
	return w.String()
}

// MarshalJSON serializes the redacted derivative (or the placeholder), never
// the payload.
func (w *Wrapper[T]) MarshalJSON() ([]byte, error) {
	if w != nil && w.redacted != nil {
		return json.Marshal(w.redacted)
	}
	return json.Marshal(Placeholder)
}

// runProtected is the protected-execution context: every entry and exit
// point to the raw value funnels through it, so redaction coverage is total
// by construction. Failures are scrubbed by the pipeline and re-signaled;
// the core's own usage errors pass through fixed and untouched.
func runProtected[T any](k *Kind, o callOpts, fn func() (T, error)) (out T, err error) {
	pipeline := k.pipeline.WithOverrides(o.onError, o.onStack)
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = pipeline.Recover(r, redaction.CaptureStack(2))
		}
	}()
	value, ferr := fn()
	if ferr != nil {
		if isUsageError(ferr) {
			return out, ferr
		}
		return out, pipeline.Redact(ferr, redaction.CaptureStack(1))
	}
	return value, nil
}
