// Package zerologger adapts github.com/rs/zerolog to simplelogger.Logger.
package zerologger
