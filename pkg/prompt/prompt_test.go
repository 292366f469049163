package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/davidsulc/sensitive-data/pkg/interfaces/logger"
	"github.com/davidsulc/sensitive-data/pkg/sensitive"
)

func TestStaticReplaysLines(t *testing.T) {
	r := &Static{Lines: []string{"hunter2"}}

	line, err := r.ReadLine("Password: ")
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if line != "hunter2" {
		t.Fatalf("expected canned line, got %q", line)
	}
	if len(r.Prompts) != 1 || r.Prompts[0] != "Password: " {
		t.Fatalf("expected prompt recorded, got %v", r.Prompts)
	}

	if _, err := r.ReadLine("again: "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF when lines run out, got %v", err)
	}
}

func TestFromLineWrapsBeforeAnythingElseSeesIt(t *testing.T) {
	k, err := sensitive.NewKind("password",
		sensitive.WithLogger(&logger.Nop{}),
		sensitive.WithRedactor(sensitive.MaskAllButLast(0)))
	if err != nil {
		t.Fatalf("NewKind: %v", err)
	}

	w, err := sensitive.FromLine(k, &Static{Lines: []string{"hunter2"}}, "Password: ")
	if err != nil {
		t.Fatalf("FromLine: %v", err)
	}
	if !sensitive.IsSensitiveBinary(w) {
		t.Fatalf("expected the read line to classify as binary")
	}
	if n, ok := sensitive.SensitiveLength(w); !ok || n != 7 {
		t.Fatalf("expected length 7, got %d (%v)", n, ok)
	}
	if strings.Contains(w.String(), "hunter2") {
		t.Fatalf("rendering leaked the line: %s", w.String())
	}
}

func TestFromLineFailureIsScrubbed(t *testing.T) {
	k, err := sensitive.NewKind("password", sensitive.WithLogger(&logger.Nop{}))
	if err != nil {
		t.Fatalf("NewKind: %v", err)
	}

	if _, err := sensitive.FromLine(k, &Static{}, "Password: "); err == nil {
		t.Fatalf("expected read failure to surface")
	}
}
