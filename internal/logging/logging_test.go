package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":       LevelInfo,
		"info":   LevelInfo,
		"DEBUG":  LevelDebug,
		" error": LevelError,
		"trace":  LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	prev := CurrentLevel()
	t.Cleanup(func() { SetLevel(prev) })

	var buf bytes.Buffer
	lg := New("report").WithOutput(log.New(&buf, "", 0))

	SetLevel(LevelError)
	lg.Debugf("debug %d", 1)
	lg.Infof("info %d", 2)
	lg.Errorf("error %d", 3)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("output %q contains suppressed lines", out)
	}
	if !strings.Contains(out, "[report] error 3") {
		t.Fatalf("output %q missing prefixed error line", out)
	}

	buf.Reset()
	SetLevel(LevelDebug)
	lg.Debugf("now visible")
	if !strings.Contains(buf.String(), "[report] now visible") {
		t.Fatalf("output %q missing debug line", buf.String())
	}
}
