package http

import (
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LeveledLogger forwards retryablehttp's log lines to zerolog.
type LeveledLogger struct {
	logger *zerolog.Logger
}

// NewLeveledLogger returns a retryablehttp.LeveledLogger backed by the
// global zerolog logger.
func NewLeveledLogger() retryablehttp.LeveledLogger {
	return &LeveledLogger{logger: &log.Logger}
}

func fields(keysAndValues ...interface{}) map[string]interface{} {
	f := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i < len(keysAndValues)-1; i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return f
}

// Error is logged at debug level: failed requests are returned to, and
// reported by, the caller.
func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(fields(keysAndValues...)).Msg(msg)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(fields(keysAndValues...)).Msg(msg)
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(fields(keysAndValues...)).Msg(msg)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(fields(keysAndValues...)).Msg(msg)
}
