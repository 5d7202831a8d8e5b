package schedule

import "github.com/charmbracelet/log"

// Sink receives diagnostic events from a render: skipped notes, analysis
// fallbacks, cancellation. level is one of "debug", "info", "warn", "error".
// fields are alternating key/value pairs, matching the structured-logging
// convention of the adapter below.
type Sink interface {
	Log(level, msg string, fields ...any)
}

// nopSink discards everything; it is the default when no Sink is configured.
type nopSink struct{}

func (nopSink) Log(string, string, ...any) {}

// charmSink adapts a *log.Logger from github.com/charmbracelet/log to Sink.
type charmSink struct {
	logger *log.Logger
}

// NewCharmSink wraps logger as a Sink. A nil logger falls back to
// log.Default().
func NewCharmSink(logger *log.Logger) Sink {
	if logger == nil {
		logger = log.Default()
	}

	return &charmSink{logger: logger}
}

func (s *charmSink) Log(level, msg string, fields ...any) {
	switch level {
	case "debug":
		s.logger.Debug(msg, fields...)
	case "warn":
		s.logger.Warn(msg, fields...)
	case "error":
		s.logger.Error(msg, fields...)
	default:
		s.logger.Info(msg, fields...)
	}
}
