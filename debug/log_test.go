package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogWriter(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	if !Enabled() {
		t.Fatal("EnableWriter should enable logging")
	}
	Log("compose", "scale: %s", "C major")
	if out := buf.String(); !strings.Contains(out, "scale: C major") || !strings.Contains(out, "cat=compose") {
		t.Errorf("unexpected log line %q", out)
	}
}

func TestLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	Disable()

	Log("compose", "hidden")
	if buf.Len() != 0 {
		t.Errorf("disabled log wrote %q", buf.String())
	}
}

func TestLogEvery(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	for i := 0; i < 10; i++ {
		LogEvery(5, "http", "request")
	}
	if n := strings.Count(buf.String(), "request"); n != 2 {
		t.Errorf("logged %d times, want 2", n)
	}
}
