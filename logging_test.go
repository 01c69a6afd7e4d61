package regionviz

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger("regionviz", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("hello %s", "world")
	l.Warnf("careful")
	l.Errorf("broken")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug line written while debug is off: %q", out.String())
	}
	if !strings.Contains(out.String(), "[regionviz] INFO: hello world") {
		t.Errorf("missing info line, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[regionviz] WARN: careful") {
		t.Errorf("missing warn line, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "[regionviz] ERROR: broken") {
		t.Errorf("missing error line, got %q", errOut.String())
	}

	l.SetDebug(true)
	l.Debugf("shown")
	if !l.DebugEnabled() || !strings.Contains(out.String(), "DEBUG: shown") {
		t.Errorf("expected debug line, got %q", out.String())
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	if l.DebugEnabled() {
		t.Errorf("nop logger should never report debug")
	}
	l.Errorf("ignored %v", 1)
}
