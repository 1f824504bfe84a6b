package hostlog

import (
	"sync/atomic"

	"github.com/iif-sadaf/simplelogger"
	"github.com/iif-sadaf/simplelogger/internal/hostmetrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "tarmac"

const capabilityName = "logging"

// functionNames maps each level to the host logging function that receives it.
var functionNames = [...]string{
	simplelogger.LevelInfo:  "Info",
	simplelogger.LevelDebug: "Debug",
	simplelogger.LevelTrace: "Trace",
}

// HostCall defines the waPC host function signature used for logging operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a Logger interacts with the host runtime.
type Config struct {
	// Namespace scopes host calls. If empty, DefaultNamespace is used.
	Namespace string

	// Level is the starting threshold. The zero value is LevelInfo.
	Level simplelogger.Level

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall

	// FailureCounter names a host counter incremented each time a record
	// could not be delivered. Empty disables it.
	FailureCounter string
}

// Logger forwards records that pass its threshold to the host logging
// capability. It is safe for concurrent use.
type Logger struct {
	namespace string
	hostCall  HostCall
	level     atomic.Uint32
	failures  *hostmetrics.Counter
}

// Ensure Logger satisfies the simplelogger.Logger interface at compile time.
var _ simplelogger.Logger = (*Logger)(nil)

// New creates a Logger that emits records through the configured host capability.
func New(cfg Config) (*Logger, error) {
	if !cfg.Level.Valid() {
		return nil, simplelogger.ErrInvalidLevel
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	l := &Logger{namespace: namespace, hostCall: hostCall}
	if cfg.FailureCounter != "" {
		c, err := hostmetrics.NewCounter(namespace, cfg.FailureCounter, hostmetrics.HostCall(hostCall))
		if err != nil {
			return nil, err
		}
		l.failures = c
	}
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

// Log sends message to the host when the threshold includes level. Delivery
// is best-effort: host failures are only counted, never returned.
func (l *Logger) Log(level simplelogger.Level, message string) {
	if !level.Valid() || !l.LogLevel().Includes(level) {
		return
	}
	_, err := l.hostCall(l.namespace, capabilityName, functionNames[level], []byte(message))
	if err != nil && l.failures != nil {
		l.failures.Inc()
	}
}

// IsActive always reports true; the host decides what is finally written.
func (l *Logger) IsActive() bool { return true }
