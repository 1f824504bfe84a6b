/*
Package logruslogger adapts github.com/sirupsen/logrus to simplelogger.Logger.

Records are emitted with Logger.Log at the matching logrus level, so logrus
formatters, hooks and output settings all apply unchanged.
*/
package logruslogger
