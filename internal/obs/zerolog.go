package obs

import "github.com/rs/zerolog"

// ZerologLogger bridges Logger to a zerolog.Logger.
type ZerologLogger struct {
	L   zerolog.Logger
	Min Level
}

func (z ZerologLogger) Logf(level Level, format string, args ...any) {
	if level < z.Min {
		return
	}
	z.event(level).Msgf(format, args...)
}

func (z ZerologLogger) event(level Level) *zerolog.Event {
	switch level {
	case Debug:
		return z.L.Debug()
	case Info:
		return z.L.Info()
	case Warn:
		return z.L.Warn()
	default:
		return z.L.Error()
	}
}
