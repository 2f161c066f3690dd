package obs

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelString(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warn, "WARN"},
		{Error, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Fatalf("String(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", Debug, true},
		{"INFO", Info, true},
		{" warn ", Warn, true},
		{"warning", Warn, true},
		{"Error", Error, true},
		{"verbose", Info, false},
		{"", Info, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseLevel(%q) err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStdLoggerMinLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := StdLogger{L: log.New(&buf, "", 0), Min: Warn}

	lg.Logf(Debug, "dropped %d", 1)
	lg.Logf(Info, "dropped %d", 2)
	lg.Logf(Warn, "kept %d", 3)
	lg.Logf(Error, "kept %d", 4)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("low levels leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] kept 3") || !strings.Contains(out, "[ERROR] kept 4") {
		t.Fatalf("out = %q", out)
	}
}

func TestStdLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	lg := StdLogger{L: log.New(&buf, "", 0), Prefix: "picohttpd "}
	lg.Logf(Info, "up")
	if got := buf.String(); got != "picohttpd [INFO] up\n" {
		t.Fatalf("out = %q", got)
	}
}

func TestStdLoggerNilSink(t *testing.T) {
	// Must not panic.
	StdLogger{}.Logf(Error, "nowhere")
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	lg := ZerologLogger{L: zerolog.New(&buf), Min: Info}

	lg.Logf(Debug, "hidden")
	lg.Logf(Error, "read %s: %v", "127.0.0.1:9", "timeout")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug leaked: %q", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("out = %q", out)
	}
	if !strings.Contains(out, "read 127.0.0.1:9: timeout") {
		t.Fatalf("out = %q", out)
	}
}

func TestNopLogger(t *testing.T) {
	NopLogger{}.Logf(Error, "discarded %d", 1)
}
