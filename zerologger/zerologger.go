package zerologger

import (
	"errors"
	"sync/atomic"

	"github.com/iif-sadaf/simplelogger"
	"github.com/rs/zerolog"
)

var (
	// ErrNilLogger is returned when Config.Logger is nil.
	ErrNilLogger = errors.New("zerolog logger cannot be nil")
)

// Config controls how a Logger wraps a zerolog.Logger.
type Config struct {
	// Logger receives every record that passes the threshold. It is copied.
	Logger *zerolog.Logger

	// Level is the starting threshold. The zero value is LevelInfo.
	Level simplelogger.Level
}

// Logger adapts a zerolog.Logger to simplelogger.Logger. The threshold is
// applied first; zerolog's own level filtering still applies afterwards.
type Logger struct {
	logger zerolog.Logger
	level  atomic.Uint32
}

// Ensure Logger satisfies both interfaces at compile time.
var (
	_ simplelogger.Logger           = (*Logger)(nil)
	_ simplelogger.ActivityReporter = (*Logger)(nil)
)

// New creates a Logger backed by cfg.Logger.
func New(cfg Config) (*Logger, error) {
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if !cfg.Level.Valid() {
		return nil, simplelogger.ErrInvalidLevel
	}

	l := &Logger{logger: *cfg.Logger}
	l.level.Store(uint32(cfg.Level))
	return l, nil
}

// LogLevel returns the current threshold.
func (l *Logger) LogLevel() simplelogger.Level {
	return simplelogger.Level(l.level.Load())
}

// SetLogLevel replaces the threshold. Invalid levels are ignored.
func (l *Logger) SetLogLevel(level simplelogger.Level) {
	if !level.Valid() {
		return
	}
	l.level.Store(uint32(level))
}

// Log writes message through zerolog when the threshold includes level.
func (l *Logger) Log(level simplelogger.Level, message string) {
	if !l.LogLevel().Includes(level) {
		return
	}

	var e *zerolog.Event
	switch level {
	case simplelogger.LevelInfo:
		e = l.logger.Info()
	case simplelogger.LevelDebug:
		e = l.logger.Debug()
	case simplelogger.LevelTrace:
		e = l.logger.Trace()
	default:
		return
	}
	e.Msg(message)
}

// IsActive reports whether zerolog would write an Info record, the least
// verbose level a simplelogger.Logger can receive.
func (l *Logger) IsActive() bool {
	effective := l.logger.GetLevel()
	if g := zerolog.GlobalLevel(); g > effective {
		effective = g
	}
	return effective <= zerolog.InfoLevel
}
