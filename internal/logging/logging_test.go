package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelWarn)
	log.SetOutput(&buf)

	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	log.Warn("shown %s", "warning")
	log.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level lines leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown warning") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR] shown error") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARN":    LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"garbage": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	var buf bytes.Buffer
	log := Discard()
	log.SetOutput(&buf)
	log.Error("still dropped")
	if buf.Len() != 0 {
		t.Errorf("Discard wrote output: %q", buf.String())
	}
}
