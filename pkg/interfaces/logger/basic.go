package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Basic prints log lines using fmt.Fprintf. It is the default logger bound
// to wrapper kinds when no other implementation is injected.
type Basic struct {
	mu     *sync.Mutex
	out    io.Writer
	fields []Field
}

var _ Logger = (*Basic)(nil)

// New returns a basic logger that writes to stderr.
func New() *Basic {
	return &Basic{mu: &sync.Mutex{}, out: os.Stderr}
}

// NewWriter returns a basic logger that writes to w.
func NewWriter(w io.Writer) *Basic {
	return &Basic{mu: &sync.Mutex{}, out: w}
}

// Default returns the default logger implementation.
func Default() Logger {
	return New()
}

// With returns a logger that includes the given fields on each log line.
func (l *Basic) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	next := &Basic{mu: l.mu, out: l.out}
	next.fields = append(append(next.fields, l.fields...), fields...)
	return next
}

func (l *Basic) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *Basic) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *Basic) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *Basic) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

func (l *Basic) log(level, msg string, fields []Field) {
	line := fmt.Sprintf("[%s] %s", level, msg)
	if rendered := formatFields(append(append([]Field(nil), l.fields...), fields...)); rendered != "" {
		line += " " + rendered
	}
	l.mu.Lock()
	fmt.Fprintf(l.out, "%s\n", line)
	l.mu.Unlock()
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", f.Key, fmt.Sprint(f.Value)))
	}
	return strings.Join(parts, " ")
}
