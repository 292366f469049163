package redaction

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame identifies a single call site. It carries no argument or local
// values; function, file, and line are the only things a redacted trace is
// allowed to keep.
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Stack is an ordered list of frames, innermost first.
type Stack []Frame

// String renders the stack one frame per line.
func (s Stack) String() string {
	if len(s) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s))
	for _, f := range s {
		lines = append(lines, "\t"+f.String())
	}
	return strings.Join(lines, "\n")
}

const maxDepth = 64

// CaptureStack records the calling goroutine's stack, skipping the given
// number of frames on top of CaptureStack itself. When invoked from a
// deferred recover the trace still includes the frames beneath the panic
// site, so failure origin is preserved.
func CaptureStack(skip int) Stack {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	stack := make(Stack, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}
