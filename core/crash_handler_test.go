package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/abyss/terminal"
)

type finiTerminal struct {
	terminal.Terminal
	finis int
}

func (f *finiTerminal) Fini() { f.finis++ }

func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var out bytes.Buffer
	codes := make(chan int, 1)

	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &out
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashTerminal(nil)
	})
	return &out, codes
}

func TestHandleCrashRestoresTerminal(t *testing.T) {
	out, codes := captureCrash(t)
	term := &finiTerminal{}
	SetCrashTerminal(term)

	HandleCrash("boom")

	if term.finis != 1 {
		t.Errorf("Expected terminal Fini once, got %d", term.finis)
	}
	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "ABYSS CRASHED: boom") {
		t.Errorf("Expected crash banner, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Stack Trace:") {
		t.Errorf("Expected stack trace in report")
	}
}

func TestHandleCrashNil(t *testing.T) {
	out, codes := captureCrash(t)
	HandleCrash(nil)
	if out.Len() != 0 {
		t.Errorf("Expected no output for nil, got %q", out.String())
	}
	select {
	case code := <-codes:
		t.Errorf("Expected no exit, got %d", code)
	default:
	}
}

func TestGoRecovers(t *testing.T) {
	_, codes := captureCrash(t)
	term := &finiTerminal{}
	SetCrashTerminal(term)

	Go(func() { panic("worker") })

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}
