// Package prompt reads lines from a terminal with echo suppressed, for
// collecting secrets interactively. The wrapper core consumes it through the
// sensitive.LineReader interface via sensitive.FromLine.
package prompt

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal reads from a file descriptor with echo disabled. The prompt text
// is written to Out before reading.
type Terminal struct {
	In  *os.File
	Out io.Writer
}

// NewTerminal reads from stdin and prompts on stderr, so prompts stay
// visible when stdout is redirected.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr}
}

// ReadLine prints the prompt and reads a line without echoing it.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	in := t.In
	if in == nil {
		in = os.Stdin
	}
	if t.Out != nil && prompt != "" {
		fmt.Fprint(t.Out, prompt)
	}
	line, err := term.ReadPassword(int(in.Fd()))
	if t.Out != nil {
		fmt.Fprintln(t.Out)
	}
	if err != nil {
		return "", fmt.Errorf("prompt: read failed: %w", err)
	}
	return string(line), nil
}

// Static replays canned lines; it stands in for a terminal in tests.
type Static struct {
	Lines   []string
	Prompts []string
	next    int
}

// ReadLine records the prompt and returns the next canned line.
func (s *Static) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.Lines) {
		return "", io.EOF
	}
	line := s.Lines[s.next]
	s.next++
	return line, nil
}
