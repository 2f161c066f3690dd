package obs

import (
	"fmt"
	"log"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	}
	return Info, fmt.Errorf("obs: unknown level %q", s)
}

// Logger is a minimal logging interface for observability.
type Logger interface {
	Logf(level Level, format string, args ...any)
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...any) {}

// StdLogger adapts the standard library logger.
type StdLogger struct {
	L      *log.Logger
	Min    Level
	Prefix string // optional prefix per log line
}

func (s StdLogger) Logf(level Level, format string, args ...any) {
	if s.L == nil {
		return
	}
	if level < s.Min {
		return
	}
	if s.Prefix != "" {
		s.L.Printf("%s[%s] "+format, append([]any{s.Prefix, level.String()}, args...)...)
	} else {
		s.L.Printf("[%s] "+format, append([]any{level.String()}, args...)...)
	}
}
