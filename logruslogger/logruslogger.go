package logruslogger

import (
	"errors"
	"sync/atomic"

	"github.com/iif-sadaf/simplelogger"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNilLogger is returned when Config.Logger is nil.
	ErrNilLogger = errors.New("logrus logger cannot be nil")
)

// levels maps simplelogger levels onto their logrus counterparts.
var levels = [...]logrus.Level{
	simplelogger.LevelInfo:  logrus.InfoLevel,
	simplelogger.LevelDebug: logrus.DebugLevel,
	simplelogger.LevelTrace: logrus.TraceLevel,
}

// Config controls how a Logger wraps a logrus.Logger.
type Config struct {
	// Logger receives every record that passes the threshold.
	Logger *logrus.Logger

	// Level is the starting threshold. The zero value is LevelInfo.
	Level simplelogger.Level
}

// Logger adapts a logrus.Logger to simplelogger.Logger. The wrapped logger
// is shared, not copied, so its own level and hooks keep applying.
type Logger struct {
	logger *logrus.Logger
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

	l := &Logger{logger: cfg.Logger}
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

// Log writes message through logrus when the threshold includes level.
func (l *Logger) Log(level simplelogger.Level, message string) {
	if !level.Valid() || !l.LogLevel().Includes(level) {
		return
	}
	l.logger.Log(levels[level], message)
}

// IsActive reports whether logrus would write an Info record.
func (l *Logger) IsActive() bool {
	return l.logger.IsLevelEnabled(logrus.InfoLevel)
}
