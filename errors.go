package simplelogger

import "errors"

var (
	// ErrInvalidLevel indicates a level value or name outside LevelInfo, LevelDebug and LevelTrace.
	ErrInvalidLevel = errors.New("log level is invalid")
)
