package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestBasicWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf).With(Field{Key: "kind", Value: "secret"})

	l.Warn("label dropped", Field{Key: "reason", Value: "not allowed"})

	line := buf.String()
	for _, want := range []string{"[WARN]", "label dropped", "kind=secret", "reason=not allowed"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in output, got %q", want, line)
		}
	}
}

func TestCaptureRecordsBoundFields(t *testing.T) {
	c := NewCapture()
	bound := c.With(Field{Key: "kind", Value: "secret"})

	bound.Warn("dropped option")
	c.Info("unrelated")

	warns := c.EventsAt("warn")
	if len(warns) != 1 {
		t.Fatalf("expected one warn event, got %d", len(warns))
	}
	if warns[0].Message != "dropped option" {
		t.Fatalf("unexpected message %q", warns[0].Message)
	}
	if len(warns[0].Fields) != 1 || warns[0].Fields[0].Key != "kind" {
		t.Fatalf("expected bound field on event, got %v", warns[0].Fields)
	}
	if len(c.Events()) != 2 {
		t.Fatalf("expected shared sink to record both events, got %d", len(c.Events()))
	}
}

func TestNopDiscardsEverything(t *testing.T) {
	var l Logger = &Nop{}
	l = l.With(Field{Key: "kind", Value: "secret"})
	l.Debug("a")
	l.Error("b")
}
