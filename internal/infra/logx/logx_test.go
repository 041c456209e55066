package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRedactionInStdlogWriter(t *testing.T) {
	var buf bytes.Buffer
	w := StdlogWriter(LevelDebug, &buf)
	SetMinLevel(LevelDebug)
	SetVerbose(false)
	RegisterSecret("secret123")

	_, err := w.Write([]byte("this contains secret123 and should be redacted\n"))
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "secret123") {
		t.Fatalf("expected secret to be redacted, got: %s", got)
	}
	if !strings.Contains(got, "[REDACTED]") {
		t.Fatalf("expected [REDACTED] marker, got: %s", got)
	}
}

func TestTruncationWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	w := StdlogWriter(LevelDebug, &buf)
	SetMinLevel(LevelDebug)
	SetVerbose(false)

	long := strings.Repeat("a", 6000)
	if _, err := w.Write([]byte(long + "\n")); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if !strings.Contains(buf.String(), "truncated") {
		t.Fatalf("expected truncation indicator, got: %s", buf.String())
	}
}

func TestNoTruncationWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	w := StdlogWriter(LevelDebug, &buf)
	SetMinLevel(LevelDebug)
	SetVerbose(true)
	defer SetVerbose(false)

	long := strings.Repeat("b", 4000)
	if _, err := w.Write([]byte(long + "\n")); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if strings.Contains(buf.String(), "truncated") {
		t.Fatalf("did not expect truncation, got: %s", buf.String())
	}
}

func TestMinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})
	SetMinLevel(LevelWarn)
	defer SetMinLevel(LevelDebug)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want one line, got %q", buf.String())
	}
	var e struct {
		Level string `json:"level"`
		Msg   string `json:"msg"`
		TS    string `json:"ts"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &e); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if e.Level != "warn" || e.Msg != "shown 2" || e.TS == "" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestStructuredFieldsRedacted(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})
	SetMinLevel(LevelDebug)
	RegisterSecret("hunter2")

	Info("login", zap.String("password", "hunter2"), zap.Int("attempt", 1))
	if strings.Contains(buf.String(), "hunter2") {
		t.Fatalf("field not redacted: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"attempt":1`) {
		t.Fatalf("int field missing: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, "error": LevelError} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
