package simplelogger

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level classifies a log record by verbosity. Levels are ordered so that
// LevelInfo < LevelDebug < LevelTrace.
type Level uint8

const (
	// LevelInfo is the least verbose level.
	LevelInfo Level = iota

	// LevelDebug adds diagnostic detail on top of LevelInfo.
	LevelDebug

	// LevelTrace is the most verbose level.
	LevelTrace
)

var levelNames = [...]string{"info", "debug", "trace"}

// String returns the lower-case level name, or "unknown" for values outside the defined set.
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "unknown"
}

// Valid reports whether l is one of LevelInfo, LevelDebug or LevelTrace.
func (l Level) Valid() bool { return l <= LevelTrace }

// Includes reports whether a record at the given level passes when l is the
// configured threshold. A LevelDebug threshold includes Info and Debug but not Trace.
func (l Level) Includes(record Level) bool { return record <= l }

// ParseLevel converts a level name into a Level. Matching ignores case and
// surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, uint8(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalYAML lets a Level be decoded straight from a YAML scalar such as
// "level: debug".
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	return l.UnmarshalText([]byte(s))
}
