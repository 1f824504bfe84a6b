/*
Package loggertest provides an in-memory simplelogger.Logger for tests.

A Recorder applies the usual threshold rule (a record passes when the
threshold includes its level) and keeps every accepted record so tests can
assert exactly what a library logged, and in which order.
*/
package loggertest
