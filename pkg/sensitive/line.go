package sensitive

// LineReader is the collaborator that reads a line of input without echoing
// it back to the terminal. The core consumes it; pkg/prompt provides the
// terminal-backed implementation.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// FromLine reads a line through r and wraps it before it touches any other
// code. Read failures are scrubbed like any other producer failure.
func FromLine(k *Kind, r LineReader, prompt string, opts ...Option) (*Wrapper[string], error) {
	if r == nil {
		return nil, ErrNilFunc
	}
	return From(k, func() (string, error) {
		return r.ReadLine(prompt)
	}, opts...)
}
