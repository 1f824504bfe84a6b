package simplelogger

import "reflect"

// Logger is implemented by anything that can receive leveled log records.
// Filtering, formatting and delivery are entirely up to the implementation.
type Logger interface {
	// LogLevel returns the current threshold.
	LogLevel() Level

	// SetLogLevel asks the logger to adopt a new threshold.
	SetLogLevel(level Level)

	// Log receives a single record. The message must not be retained past the call.
	Log(level Level, message string)
}

// ActivityReporter is an optional interface for loggers that know when every
// record would be discarded.
type ActivityReporter interface {
	// IsActive returns false only when logging is certainly a no-op.
	IsActive() bool
}

// Info logs message at the Info level.
func Info(l Logger, message string) { l.Log(LevelInfo, message) }

// Debug logs message at the Debug level.
func Debug(l Logger, message string) { l.Log(LevelDebug, message) }

// Trace logs message at the Trace level.
func Trace(l Logger, message string) { l.Log(LevelTrace, message) }

// IsActive is a hint for skipping expensive message construction. It returns
// the logger's own answer when it implements ActivityReporter and true
// otherwise. A true result does not promise that anything will be written.
func IsActive(l Logger) bool {
	if r, ok := l.(ActivityReporter); ok {
		return r.IsActive()
	}
	return true
}

// nullLogger discards every record. It holds no state, so the shared
// instance is safe for concurrent use.
type nullLogger struct{}

func (nullLogger) LogLevel() Level   { return LevelInfo }
func (nullLogger) SetLogLevel(Level) {}
func (nullLogger) Log(Level, string) {}
func (nullLogger) IsActive() bool    { return false }

// null is the process-wide null logger returned by Null and Normalize.
var null Logger = nullLogger{}

// Ensure nullLogger satisfies both interfaces at compile time.
var (
	_ Logger           = nullLogger{}
	_ ActivityReporter = nullLogger{}
)

// Null returns the shared logger that discards everything and always
// reports LevelInfo as its level.
func Null() Logger { return null }

// Normalize returns l unchanged when a logger was supplied, and the shared
// null logger when l is nil. An interface holding a nil pointer counts as nil.
func Normalize(l Logger) Logger {
	if isNil(l) {
		return null
	}
	return l
}

func isNil(l Logger) bool {
	if l == nil {
		return true
	}
	switch v := reflect.ValueOf(l); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return v.IsNil()
	}
	return false
}
