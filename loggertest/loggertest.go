package loggertest

import (
	"sync"

	"github.com/iif-sadaf/simplelogger"
)

// Entry is a single record accepted by a Recorder.
type Entry struct {
	// Level is the level the record was logged at.
	Level simplelogger.Level

	// Message is a copy of the logged message.
	Message string
}

// Config controls the initial state of a Recorder.
type Config struct {
	// Level is the starting threshold. The zero value is LevelInfo.
	Level simplelogger.Level

	// Inactive makes the Recorder report IsActive() == false from the start.
	Inactive bool
}

// Recorder is a threshold-filtering Logger that keeps accepted records in
// memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	level   simplelogger.Level
	active  bool
	entries []Entry
}

// Ensure Recorder satisfies both interfaces at compile time.
var (
	_ simplelogger.Logger           = (*Recorder)(nil)
	_ simplelogger.ActivityReporter = (*Recorder)(nil)
)

// New creates a Recorder from cfg.
func New(cfg Config) (*Recorder, error) {
	if !cfg.Level.Valid() {
		return nil, simplelogger.ErrInvalidLevel
	}
	return &Recorder{level: cfg.Level, active: !cfg.Inactive}, nil
}

// LogLevel returns the current threshold.
func (r *Recorder) LogLevel() simplelogger.Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.level
}

// SetLogLevel replaces the threshold used by subsequent Log calls.
func (r *Recorder) SetLogLevel(level simplelogger.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.level = level
}

// Log stores the record when the threshold includes level.
func (r *Recorder) Log(level simplelogger.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.level.Includes(level) {
		return
	}
	r.entries = append(r.entries, Entry{Level: level, Message: message})
}

// IsActive reports the value last given to SetActive.
func (r *Recorder) IsActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// SetActive changes the activity hint. It does not affect recording.
func (r *Recorder) SetActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = active
}

// Entries returns a copy of the recorded entries in call order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the recorded messages in call order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Message)
	}
	return out
}

// Reset discards all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
