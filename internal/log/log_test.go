package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitVerbose(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Verbose: true, Stderr: &buf})

	Debug("debug message", "key", "value")
	Warn("warn message")

	out := buf.String()
	if !strings.Contains(out, "debug message") {
		t.Errorf("verbose output missing debug message: %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("verbose output missing warn message: %q", out)
	}
}

func TestInitQuiet(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Stderr: &buf})

	Debug("debug message")
	Info("info message")
	Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("quiet output should suppress debug/info: %q", out)
	}
	if !strings.Contains(out, "error message") {
		t.Errorf("quiet output missing error message: %q", out)
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("captured debug", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "captured debug") {
		t.Errorf("SetOutput writer missing debug message: %q", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("SetOutput writer missing attribute: %q", out)
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{JSONFormat: true, Stderr: &buf})

	Warn("json warning", "code", 7)

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Errorf("JSON output should start with {: %q", out)
	}
	if !strings.Contains(out, `"code":7`) {
		t.Errorf("JSON output missing attribute: %q", out)
	}
}
